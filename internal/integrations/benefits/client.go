package benefits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с сервисом лояльности
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса лояльности
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBenefit получает бенефит пользователя
func (c *Client) GetBenefit(ctx context.Context, benefitID string) (*Benefit, error) {
	url := fmt.Sprintf("%s/internal/benefits/%s", c.baseURL, benefitID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBenefitNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var benefit Benefit
	if err := json.NewDecoder(resp.Body).Decode(&benefit); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &benefit, nil
}

// Consume списывает бенефит пользователя в рамках конкретного ресторана
func (c *Client) Consume(ctx context.Context, benefitID, userID, restaurantID string) error {
	url := fmt.Sprintf("%s/internal/benefits/%s/consume", c.baseURL, benefitID)

	payload, err := json.Marshal(consumeRequest{UserID: userID, RestaurantID: restaurantID})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound, http.StatusConflict:
		return ErrBenefitNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// Validate проверяет бенефит без списания: существование, принадлежность
// пользователю, привязку к ресторану и неиспользованность. Списание выполняется
// отдельным вызовом Consume после того, как бронирование фактически создано,
// чтобы отклонённая заявка не оставляла бенефит списанным.
func (c *Client) Validate(ctx context.Context, benefitID, userID, restaurantID string) error {
	c.log.Info("Validating benefit id=%s for user=%s, restaurant=%s", benefitID, userID, restaurantID)

	benefit, err := c.GetBenefit(ctx, benefitID)
	if err != nil {
		if errors.Is(err, ErrBenefitNotFound) {
			c.log.Info("Benefit id=%s not found", benefitID)
			return err
		}
		c.log.Error("Benefits service unavailable, applying graceful degradation for benefit id=%s: %v", benefitID, err)
		return fmt.Errorf("%w: benefit_id=%s, error=%v", ErrServiceDegraded, benefitID, err)
	}

	if benefit.UserID != userID {
		c.log.Warn("Benefit id=%s does not belong to user=%s", benefitID, userID)
		return ErrBenefitNotFound
	}
	if benefit.RestaurantID != "" && benefit.RestaurantID != restaurantID {
		c.log.Warn("Benefit id=%s is not valid for restaurant=%s", benefitID, restaurantID)
		return ErrBenefitNotFound
	}
	if benefit.Consumed {
		c.log.Info("Benefit id=%s is already consumed", benefitID)
		return ErrBenefitNotFound
	}

	return nil
}
