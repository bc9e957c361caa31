package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	RestaurantID string    // ID ресторана
	Date         time.Time // Дата для расчёта слотов (без времени)
	Guests       int       // Размер компании
}

// Response модель ответа со списком доступных слотов
type Response struct {
	RestaurantID string             // ID ресторана
	Date         time.Time          // Дата, на которую запрашивались слоты
	Guests       int                // Размер компании
	Slots        []types.TimeString // Отсортированный список доступных слотов

	// MinTimeToday минимальное доступное время начала на сегодня
	// (now + minAdvanceHours); nil для дат, отличных от сегодняшней
	MinTimeToday *types.TimeString
}
