package config

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация не найдена
	ErrConfigNotFound = errors.New("config.repository: config not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("config.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("config.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("config.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("config.repository: failed to scan row")

	// ErrMarshalDocument возвращается при ошибке сериализации JSONB-документа
	ErrMarshalDocument = errors.New("config.repository: failed to marshal document")

	// ErrUnmarshalDocument возвращается при ошибке десериализации JSONB-документа
	ErrUnmarshalDocument = errors.New("config.repository: failed to unmarshal document")
)
