package domain

// Default configuration values
const (
	DefaultDurationMinutes         = 90
	DefaultBufferMinutes           = 10
	DefaultMaxPeoplePerReservation = 12
	DefaultMinAdvanceHours         = 1
	DefaultMaxPartySize            = 8
	DefaultInteriorCapacity        = 40
	DefaultExteriorCapacity        = 20
)

// Business validation constants
const (
	MinDurationMinutes = 15
	MinBufferMinutes   = 0
	MinAdvanceHours    = 0

	// Hard ceiling for the guests parameter on availability queries
	MaxGuestsPerQuery = 20

	MaxNotesLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:mm
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses список статусов, занимающих время на таймлайне ресторана.
// Используется при фильтрации бронирований для расчёта доступности.
var BlockingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusPendingConfirmation,
	StatusCompleted,
}

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []ReservationStatus{
	StatusPendingConfirmation,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
	StatusCanceled,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, st := range AllStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}
