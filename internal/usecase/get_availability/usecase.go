package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/config"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: restaurant=%s, date=%s, guests=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию ресторана
	config, err := uc.configRepo.Get(ctx, req.RestaurantID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailability: failed to get config for restaurant=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Ресторан ещё не настраивал бронирования — дефолтная конфигурация
	// (гейты закрыты, слотов не будет)
	if config == nil {
		config = domain.DefaultConfig(req.RestaurantID)
		uc.logger.Info("GetAvailability: using default config for restaurant=%s", req.RestaurantID)
	}

	// 4. Быстрый выход: бронирования не принимаются
	if !config.AcceptsReservations() {
		uc.logger.Info("GetAvailability: restaurant=%s is not accepting reservations", req.RestaurantID)
		return uc.buildResponse(req, now, config, []types.TimeString{}), nil
	}

	// 5. Получаем блокирующие бронирования на эту дату
	filter := domain.ReservationsFilter{
		RestaurantID: req.RestaurantID,
		Date:         ptr.Ptr(req.Date),
		OnlyBlocking: true,
	}

	existing, err := uc.reservationRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Конвейер расчёта доступности
	slots := AvailableSlots(config, req.Date, req.Guests, existing)

	// 7. Отсекаем слоты раньше минимального заблаговременного интервала
	slots = FilterByMinAdvance(slots, req.Date, now, config.Rules.MinAdvanceHours)

	uc.logger.Info("GetAvailability: %d slots for restaurant=%s, date=%s, guests=%d",
		len(slots), req.RestaurantID, req.Date.Format(domain.DateFormat), req.Guests)

	return uc.buildResponse(req, now, config, slots), nil
}

// buildResponse собирает ответ; minTimeToday заполняется только для сегодняшней даты
func (uc *UseCase) buildResponse(req *Request, now time.Time, config *domain.ReservationConfig, slots []types.TimeString) *Response {
	resp := &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		Guests:       req.Guests,
		Slots:        slots,
	}

	if sameDate(req.Date, now) {
		resp.MinTimeToday = ptr.Ptr(MinAvailableTimeToday(now, config.Rules.MinAdvanceHours))
	}

	return resp
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
