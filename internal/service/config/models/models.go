package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeRangeDTO диапазон работы в рамках дня
type TimeRangeDTO struct {
	Open  string `json:"open"`  // "12:00"
	Close string `json:"close"` // "15:00"
}

// AreaDTO зона ресторана
type AreaDTO struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Enabled        bool   `json:"enabled"`
	CapacityPeople int    `json:"capacityPeople"`
	MinPartySize   int    `json:"minPartySize"`
	MaxPartySize   int    `json:"maxPartySize"`
}

// RulesDTO параметры слотов
type RulesDTO struct {
	DurationMinutes         int `json:"durationMinutes"`
	BufferMinutes           int `json:"bufferMinutes"`
	MaxPeoplePerReservation int `json:"maxPeoplePerReservation"`
	MinAdvanceHours         int `json:"minAdvanceHours"`
}

// UpdateConfigRequest запрос на полную замену конфигурации ресторана
type UpdateConfigRequest struct {
	ReservationsEnabled bool                   `json:"reservationsEnabled"`
	ReservationsPaused  bool                   `json:"reservationsPaused"`
	WizardCompleted     bool                   `json:"wizardCompleted"`
	OpeningHours        map[int][]TimeRangeDTO `json:"openingHours"`
	Areas               []AreaDTO              `json:"areas"`
	Rules               RulesDTO               `json:"rules"`
	ConfirmationMode    string                 `json:"confirmationMode"`
}

// ConfigResponse ответ с конфигурацией ресторана
type ConfigResponse struct {
	RestaurantID        string                 `json:"restaurantId"`
	ReservationsEnabled bool                   `json:"reservationsEnabled"`
	ReservationsPaused  bool                   `json:"reservationsPaused"`
	WizardCompleted     bool                   `json:"wizardCompleted"`
	OpeningHours        map[int][]TimeRangeDTO `json:"openingHours"`
	Areas               []AreaDTO              `json:"areas"`
	Rules               RulesDTO               `json:"rules"`
	ConfirmationMode    string                 `json:"confirmationMode"`
	CreatedAt           time.Time              `json:"createdAt"`
	UpdatedAt           time.Time              `json:"updatedAt"`
}

// ToDomainConfig конвертирует запрос в domain модель.
// Зонам без идентификатора присваивается новый.
func (r *UpdateConfigRequest) ToDomainConfig(restaurantID string) *domain.ReservationConfig {
	hours := make(map[int][]domain.TimeRange, len(r.OpeningHours))
	for day, ranges := range r.OpeningHours {
		domainRanges := make([]domain.TimeRange, 0, len(ranges))
		for _, tr := range ranges {
			domainRanges = append(domainRanges, domain.TimeRange{
				Open:  types.TimeString(tr.Open),
				Close: types.TimeString(tr.Close),
			})
		}
		hours[day] = domainRanges
	}

	areas := make([]domain.SeatingArea, 0, len(r.Areas))
	for _, a := range r.Areas {
		area := domain.SeatingArea{
			ID:             a.ID,
			Name:           a.Name,
			Enabled:        a.Enabled,
			CapacityPeople: a.CapacityPeople,
			MinPartySize:   a.MinPartySize,
			MaxPartySize:   a.MaxPartySize,
		}
		if area.ID == "" {
			area.ID = domain.NewArea(a.Name, a.CapacityPeople).ID
		}
		areas = append(areas, area)
	}

	return &domain.ReservationConfig{
		RestaurantID:        restaurantID,
		ReservationsEnabled: r.ReservationsEnabled,
		ReservationsPaused:  r.ReservationsPaused,
		WizardCompleted:     r.WizardCompleted,
		OpeningHours:        hours,
		Areas:               areas,
		Rules: domain.ReservationRules{
			DurationMinutes:         r.Rules.DurationMinutes,
			BufferMinutes:           r.Rules.BufferMinutes,
			MaxPeoplePerReservation: r.Rules.MaxPeoplePerReservation,
			MinAdvanceHours:         r.Rules.MinAdvanceHours,
		},
		ConfirmationMode: domain.ConfirmationMode(r.ConfirmationMode),
	}
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.ReservationConfig) *ConfigResponse {
	if cfg == nil {
		return nil
	}

	hours := make(map[int][]TimeRangeDTO, len(cfg.OpeningHours))
	for day, ranges := range cfg.OpeningHours {
		dtoRanges := make([]TimeRangeDTO, 0, len(ranges))
		for _, tr := range ranges {
			dtoRanges = append(dtoRanges, TimeRangeDTO{Open: string(tr.Open), Close: string(tr.Close)})
		}
		hours[day] = dtoRanges
	}

	areas := make([]AreaDTO, 0, len(cfg.Areas))
	for _, a := range cfg.Areas {
		areas = append(areas, AreaDTO{
			ID:             a.ID,
			Name:           a.Name,
			Enabled:        a.Enabled,
			CapacityPeople: a.CapacityPeople,
			MinPartySize:   a.MinPartySize,
			MaxPartySize:   a.MaxPartySize,
		})
	}

	return &ConfigResponse{
		RestaurantID:        cfg.RestaurantID,
		ReservationsEnabled: cfg.ReservationsEnabled,
		ReservationsPaused:  cfg.ReservationsPaused,
		WizardCompleted:     cfg.WizardCompleted,
		OpeningHours:        hours,
		Areas:               areas,
		Rules: RulesDTO{
			DurationMinutes:         cfg.Rules.DurationMinutes,
			BufferMinutes:           cfg.Rules.BufferMinutes,
			MaxPeoplePerReservation: cfg.Rules.MaxPeoplePerReservation,
			MinAdvanceHours:         cfg.Rules.MinAdvanceHours,
		},
		ConfirmationMode: string(cfg.ConfirmationMode),
		CreatedAt:        cfg.CreatedAt,
		UpdatedAt:        cfg.UpdatedAt,
	}
}
