package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RestaurantID  string  `json:"restaurantId"`
	Date          string  `json:"date"` // "2026-09-07"
	Time          string  `json:"time"` // "19:00"
	Guests        int     `json:"guests"`
	Notes         *string `json:"notes,omitempty"`
	AutoConfirmed bool    `json:"autoConfirmed"`
	BenefitID     *string `json:"benefitId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в use case request.
// UserID приходит из контекста (middleware), а не из тела запроса.
func (r *CreateReservationRequest) ToUseCaseRequest(userID *string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", r.Time, err)
	}

	return &createReservation.Request{
		RestaurantID:  r.RestaurantID,
		UserID:        userID,
		Date:          date,
		Time:          startTime,
		Guests:        r.Guests,
		Notes:         r.Notes,
		AutoConfirmed: r.AutoConfirmed,
		BenefitID:     r.BenefitID,
	}, nil
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	UserID       *string `json:"userId,omitempty"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Guests       int     `json:"guests"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`

	ReviewEnabled    bool    `json:"reviewEnabled"`
	Reviewed         bool    `json:"reviewed"`
	AppliedBenefitID *string `json:"appliedBenefitId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:               resp.ID,
		RestaurantID:     resp.RestaurantID,
		UserID:           resp.UserID,
		Date:             resp.Date.Format(domain.DateFormat),
		Time:             resp.Time.String(),
		Guests:           resp.Guests,
		Notes:            resp.Notes,
		Status:           resp.Status,
		ReviewEnabled:    resp.ReviewEnabled,
		Reviewed:         resp.Reviewed,
		AppliedBenefitID: resp.AppliedBenefitID,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
	}
}
