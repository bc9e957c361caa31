package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSlotUnavailable возвращается, когда запрошенный слот недоступен:
	// слот был занят конкурентным бронированием, ресторан закрыт в эту дату,
	// бронирования выключены или нарушен минимальный заблаговременный интервал.
	// Отличается от ErrInvalidInput: клиенту нужно выбрать другой слот,
	// а не исправлять запрос.
	ErrSlotUnavailable = errors.New("create_reservation: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
