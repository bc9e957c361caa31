package config

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// timeRangeDoc JSONB-представление диапазона работы
type timeRangeDoc struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// openingHoursDoc JSONB-документ расписания: день недели -> диапазоны
type openingHoursDoc map[int][]timeRangeDoc

// areaDoc JSONB-представление зоны ресторана
type areaDoc struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Enabled        bool   `json:"enabled"`
	CapacityPeople int    `json:"capacityPeople"`
	MinPartySize   int    `json:"minPartySize"`
	MaxPartySize   int    `json:"maxPartySize"`
}

func openingHoursToDoc(hours map[int][]domain.TimeRange) openingHoursDoc {
	doc := make(openingHoursDoc, len(hours))
	for day, ranges := range hours {
		docRanges := make([]timeRangeDoc, 0, len(ranges))
		for _, r := range ranges {
			docRanges = append(docRanges, timeRangeDoc{Open: string(r.Open), Close: string(r.Close)})
		}
		doc[day] = docRanges
	}
	return doc
}

func openingHoursFromDoc(doc openingHoursDoc) map[int][]domain.TimeRange {
	hours := make(map[int][]domain.TimeRange, len(doc))
	for day, docRanges := range doc {
		ranges := make([]domain.TimeRange, 0, len(docRanges))
		for _, r := range docRanges {
			ranges = append(ranges, domain.TimeRange{
				Open:  types.TimeString(r.Open),
				Close: types.TimeString(r.Close),
			})
		}
		hours[day] = ranges
	}
	return hours
}

func areasToDoc(areas []domain.SeatingArea) []areaDoc {
	doc := make([]areaDoc, 0, len(areas))
	for _, a := range areas {
		doc = append(doc, areaDoc{
			ID:             a.ID,
			Name:           a.Name,
			Enabled:        a.Enabled,
			CapacityPeople: a.CapacityPeople,
			MinPartySize:   a.MinPartySize,
			MaxPartySize:   a.MaxPartySize,
		})
	}
	return doc
}

func areasFromDoc(doc []areaDoc) []domain.SeatingArea {
	areas := make([]domain.SeatingArea, 0, len(doc))
	for _, a := range doc {
		areas = append(areas, domain.SeatingArea{
			ID:             a.ID,
			Name:           a.Name,
			Enabled:        a.Enabled,
			CapacityPeople: a.CapacityPeople,
			MinPartySize:   a.MinPartySize,
			MaxPartySize:   a.MaxPartySize,
		})
	}
	return areas
}
