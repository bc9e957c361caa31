package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

// ReservationStore потокобезопасное in-memory хранилище бронирований
type ReservationStore struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
}

// NewReservationStore создает новое in-memory хранилище бронирований
func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		reservations: make(map[string]*domain.Reservation),
	}
}

// Create создает новое бронирование
func (s *ReservationStore) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := cloneReservation(res)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.reservations[stored.ID] = stored

	res.CreatedAt = now
	res.UpdatedAt = now
	return res, nil
}

// GetByID получает бронирование по ID
func (s *ReservationStore) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return cloneReservation(res), nil
}

// GetByUserID получает список бронирований пользователя,
// опционально фильтруя по статусу
func (s *ReservationStore) GetByUserID(_ context.Context, userID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Reservation, 0)
	for _, res := range s.reservations {
		if res.UserID == nil || *res.UserID != userID {
			continue
		}
		if status != nil && res.Status != *status {
			continue
		}
		out = append(out, cloneReservation(res))
	}

	sortNewestFirst(out)
	return out, nil
}

// GetByRestaurantWithFilter получает бронирования ресторана по фильтру.
// Семантика фильтра и сортировки совпадает с Postgres-репозиторием.
func (s *ReservationStore) GetByRestaurantWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Reservation, 0)
	for _, res := range s.reservations {
		if res.RestaurantID != filter.RestaurantID {
			continue
		}
		if filter.Date != nil && !sameDate(res.Date, *filter.Date) {
			continue
		}
		if filter.Status != nil {
			if res.Status != *filter.Status {
				continue
			}
		} else if filter.OnlyBlocking && !res.IsBlocking() {
			continue
		}
		out = append(out, cloneReservation(res))
	}

	if filter.Date != nil {
		sort.Slice(out, func(i, j int) bool {
			return out[i].Time.Minutes() < out[j].Time.Minutes()
		})
	} else {
		sortNewestFirst(out)
	}

	return out, nil
}

// UpdateStatus обновляет статус бронирования и признак доступности отзыва.
// Ненулевой notes заменяет пожелания гостя, nil оставляет их без изменений.
func (s *ReservationStore) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus, reviewEnabled bool, notes *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}

	res.Status = status
	res.ReviewEnabled = reviewEnabled
	if notes != nil {
		n := *notes
		res.Notes = &n
	}
	res.UpdatedAt = time.Now()
	return nil
}

// SetAppliedBenefit привязывает списанный бенефит к бронированию
func (s *ReservationStore) SetAppliedBenefit(_ context.Context, id string, benefitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}

	res.AppliedBenefitID = &benefitID
	res.UpdatedAt = time.Now()
	return nil
}

func sortNewestFirst(reservations []*domain.Reservation) {
	sort.Slice(reservations, func(i, j int) bool {
		if !reservations[i].Date.Equal(reservations[j].Date) {
			return reservations[i].Date.After(reservations[j].Date)
		}
		return reservations[i].Time.Minutes() > reservations[j].Time.Minutes()
	})
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func cloneReservation(res *domain.Reservation) *domain.Reservation {
	out := *res
	if res.Notes != nil {
		notes := *res.Notes
		out.Notes = &notes
	}
	if res.UserID != nil {
		userID := *res.UserID
		out.UserID = &userID
	}
	if res.AppliedBenefitID != nil {
		benefitID := *res.AppliedBenefitID
		out.AppliedBenefitID = &benefitID
	}
	return &out
}
