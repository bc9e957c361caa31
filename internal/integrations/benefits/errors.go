package benefits

import "errors"

var (
	// ErrBenefitNotFound возвращается, когда бенефит не найден или уже использован
	ErrBenefitNotFound = errors.New("benefit not found or already consumed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("benefits client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("benefits client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что сервис лояльности недоступен: бронирование продолжается
	// без применения бенефита
	ErrServiceDegraded = errors.New("benefits service unavailable: graceful degradation applied")
)
