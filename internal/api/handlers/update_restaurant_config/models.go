package update_restaurant_config

// ValidationErrorResponse ответ с перечнем нарушений конфигурации.
// Клиент мастера настройки показывает их все разом.
type ValidationErrorResponse struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Failures []string `json:"failures"`
}
