package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/config"
	availability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	benefitsClient  BenefitsClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	benefitsClient BenefitsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		benefitsClient:  benefitsClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Доступность слота пересчитывается в сериализуемой транзакции по текущему
// состоянию хранилища: ответ getAvailability мог устареть к моменту записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: restaurant=%s, date=%s, time=%s, guests=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.Time, req.Guests)

	// 1. Валидация формы запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date must not be in the past", ErrInvalidInput)
	}

	// 3. Проверяем бенефит до транзакции: внешний HTTP-вызов не должен
	// держать сериализуемую транзакцию. Списание откладывается до успешной
	// записи — отклонённая заявка не должна оставлять бенефит списанным.
	candidateBenefitID := uc.validateBenefit(ctx, req)

	// Переменная для хранения результата
	var result *domain.Reservation

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем конфигурацию ресторана
		config, err := uc.configRepo.Get(txCtx, req.RestaurantID)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateReservation: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// Ресторан без конфигурации бронирования не принимает:
		// дефолт с закрытыми гейтами даст пустой список слотов
		if config == nil {
			config = domain.DefaultConfig(req.RestaurantID)
			uc.logger.Info("CreateReservation: using default config for restaurant=%s", req.RestaurantID)
		}

		// 4.2. Проверки, зависящие от конфигурации
		if err := validateAgainstConfig(req, config); err != nil {
			uc.logger.Warn("CreateReservation: config validation failed: %v", err)
			return err
		}

		// 4.3. Читаем блокирующие бронирования на дату с блокировкой строк
		filter := domain.ReservationsFilter{
			RestaurantID: req.RestaurantID,
			Date:         &req.Date,
			OnlyBlocking: true,
		}

		existing, err := uc.reservationRepo.GetByRestaurantWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.4. Пересчитываем доступность по актуальному состоянию
		slots := availability.AvailableSlots(config, req.Date, req.Guests, existing)
		slots = availability.FilterByMinAdvance(slots, req.Date, now, config.Rules.MinAdvanceHours)

		// 4.5. Запрошенное время обязано быть в списке доступных слотов
		if !slotInList(req.Time, slots) {
			uc.logger.Warn("CreateReservation: slot %s not available for restaurant=%s, date=%s, guests=%d",
				req.Time, req.RestaurantID, req.Date.Format(domain.DateFormat), req.Guests)
			return ErrSlotUnavailable
		}

		// 4.6. Начальный статус по режиму подтверждения
		status := determineStatus(req, config)

		// 4.7. Создаем бронирование; бенефит привязывается после коммита
		reservation := &domain.Reservation{
			ID:            uuid.NewString(),
			RestaurantID:  req.RestaurantID,
			UserID:        req.UserID,
			Date:          req.Date,
			Time:          req.Time,
			Guests:        req.Guests,
			Notes:         req.Notes,
			Status:        status,
			ReviewEnabled: false,
			Reviewed:      false,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Списываем бенефит и привязываем его к созданному бронированию
	if candidateBenefitID != nil {
		uc.attachBenefit(ctx, result, *candidateBenefitID, *req.UserID)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s, status=%s", result.ID, result.Status)

	return &Response{
		ID:               result.ID,
		RestaurantID:     result.RestaurantID,
		UserID:           result.UserID,
		Date:             result.Date,
		Time:             result.Time,
		Guests:           result.Guests,
		Notes:            result.Notes,
		Status:           string(result.Status),
		ReviewEnabled:    result.ReviewEnabled,
		Reviewed:         result.Reviewed,
		AppliedBenefitID: result.AppliedBenefitID,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// validateBenefit проверяет бенефит пользователя без списания.
// Сервис лояльности не критичен для бронирования: при любой ошибке
// бенефит не применяется, бронирование продолжается без него.
func (uc *UseCase) validateBenefit(ctx context.Context, req *Request) *string {
	if req.BenefitID == nil || req.UserID == nil {
		return nil
	}

	benefitID := strings.TrimSpace(*req.BenefitID)
	if benefitID == "" {
		return nil
	}

	if err := uc.benefitsClient.Validate(ctx, benefitID, *req.UserID, req.RestaurantID); err != nil {
		uc.logger.Warn("CreateReservation: benefit id=%s not applied for user=%s: %v",
			benefitID, *req.UserID, err)
		return nil
	}

	return &benefitID
}

// attachBenefit списывает проверенный бенефит и привязывает его к созданному
// бронированию. Любая ошибка оставляет бронирование без бенефита: списание
// после коммита, поэтому неудача здесь ничего не отменяет.
func (uc *UseCase) attachBenefit(ctx context.Context, res *domain.Reservation, benefitID, userID string) {
	if err := uc.benefitsClient.Consume(ctx, benefitID, userID, res.RestaurantID); err != nil {
		uc.logger.Warn("CreateReservation: benefit id=%s not consumed for reservation id=%s: %v",
			benefitID, res.ID, err)
		return
	}

	if err := uc.reservationRepo.SetAppliedBenefit(ctx, res.ID, benefitID); err != nil {
		uc.logger.Error("CreateReservation: benefit id=%s consumed but not attached to reservation id=%s: %v",
			benefitID, res.ID, err)
		return
	}

	res.AppliedBenefitID = &benefitID
	uc.logger.Info("CreateReservation: benefit id=%s applied for user=%s", benefitID, userID)
}
