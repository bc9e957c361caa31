package config

import (
	"errors"
	"strings"
)

var (
	// ErrConfigNotFound возвращается, когда конфигурация не найдена
	ErrConfigNotFound = errors.New("config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// InvalidConfigError несёт постатейный список нарушений конфигурации:
// клиент получает все проблемы сразу, а не по одной за запрос
type InvalidConfigError struct {
	Failures []string
}

func (e *InvalidConfigError) Error() string {
	return "invalid reservation config: " + strings.Join(e.Failures, "; ")
}
