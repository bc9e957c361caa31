package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID *string `json:"userId,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования.
// Ресторан может попутно скорректировать доступность отзыва и пожелания.
type UpdateStatusRequest struct {
	Status        string  `json:"status"`
	ReviewEnabled *bool   `json:"reviewEnabled,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetRestaurantReservationsRequest запрос на получение бронирований ресторана
type GetRestaurantReservationsRequest struct {
	RestaurantID string     `json:"restaurantId"`
	Date         *time.Time `json:"date,omitempty"`   // Фильтр по дате (опционально)
	Status       *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRestaurantReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		RestaurantID: r.RestaurantID,
		Date:         r.Date,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	UserID       *string `json:"userId,omitempty"`
	Date         string  `json:"date"` // "2026-09-07"
	Time         string  `json:"time"` // "19:00"
	Guests       int     `json:"guests"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`

	ReviewEnabled    bool    `json:"reviewEnabled"`
	Reviewed         bool    `json:"reviewed"`
	AppliedBenefitID *string `json:"appliedBenefitId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:               r.ID,
		RestaurantID:     r.RestaurantID,
		UserID:           r.UserID,
		Date:             r.Date.Format(domain.DateFormat),
		Time:             r.Time.String(),
		Guests:           r.Guests,
		Notes:            r.Notes,
		Status:           string(r.Status),
		ReviewEnabled:    r.ReviewEnabled,
		Reviewed:         r.Reviewed,
		AppliedBenefitID: r.AppliedBenefitID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations[i] = *r
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.ReservationStatus(status), nil
}
