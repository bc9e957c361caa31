package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RestaurantID string           `validate:"required"` // ID ресторана
	UserID       *string          // ID пользователя (опционально, анонимные брони разрешены)
	Date         time.Time        `validate:"required"`       // Дата бронирования (без времени)
	Time         types.TimeString `validate:"required"`       // Время начала (например, "19:00")
	Guests       int              `validate:"required,min=1"` // Размер компании
	Notes        *string          `validate:"omitempty,max=500"` // Пожелания гостя (опционально)

	// AutoConfirmed сигнал клиента о немедленном подтверждении;
	// применяется только при confirmationMode=auto и включённых бронированиях
	AutoConfirmed bool

	// BenefitID бенефит программы лояльности для применения (опционально)
	BenefitID *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string           // ID созданного бронирования
	RestaurantID string           // ID ресторана
	UserID       *string          // ID пользователя
	Date         time.Time        // Дата бронирования
	Time         types.TimeString // Время начала
	Guests       int              // Размер компании
	Notes        *string          // Пожелания гостя
	Status       string           // Статус бронирования

	ReviewEnabled    bool    // Доступен ли отзыв
	Reviewed         bool    // Оставлен ли отзыв
	AppliedBenefitID *string // Применённый бенефит

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
