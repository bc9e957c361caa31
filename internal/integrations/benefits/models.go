package benefits

// Benefit модель бенефита программы лояльности.
// RestaurantID пустой для бенефитов, действующих в любом ресторане.
type Benefit struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Consumed     bool   `json:"consumed"`
}

// consumeRequest тело запроса на списание бенефита
type consumeRequest struct {
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id"`
}

// ErrorResponse модель ошибки от сервиса лояльности
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
