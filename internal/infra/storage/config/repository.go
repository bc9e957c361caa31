package config

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с конфигурацией бронирований ресторана.
// Расписание и зоны хранятся JSONB-документами: конфигурация читается и
// заменяется целиком, построчный доступ к диапазонам не нужен.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию ресторана
func (r *Repository) Get(ctx context.Context, restaurantID string) (*domain.ReservationConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"restaurant_id",
		"reservations_enabled",
		"reservations_paused",
		"wizard_completed",
		"opening_hours",
		"areas",
		"duration_minutes",
		"buffer_minutes",
		"max_people_per_reservation",
		"min_advance_hours",
		"confirmation_mode",
		"created_at",
		"updated_at",
	).
		From("reservation_configs").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.ReservationConfig
	var hoursRaw, areasRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.RestaurantID,
		&cfg.ReservationsEnabled,
		&cfg.ReservationsPaused,
		&cfg.WizardCompleted,
		&hoursRaw,
		&areasRaw,
		&cfg.Rules.DurationMinutes,
		&cfg.Rules.BufferMinutes,
		&cfg.Rules.MaxPeoplePerReservation,
		&cfg.Rules.MinAdvanceHours,
		&cfg.ConfirmationMode,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	var hoursDoc openingHoursDoc
	if err := json.Unmarshal(hoursRaw, &hoursDoc); err != nil {
		return nil, fmt.Errorf("%w: Get - opening_hours: %v", ErrUnmarshalDocument, err)
	}

	var areasDoc []areaDoc
	if err := json.Unmarshal(areasRaw, &areasDoc); err != nil {
		return nil, fmt.Errorf("%w: Get - areas: %v", ErrUnmarshalDocument, err)
	}

	cfg.OpeningHours = openingHoursFromDoc(hoursDoc)
	cfg.Areas = areasFromDoc(areasDoc)
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Set полностью заменяет конфигурацию ресторана (upsert).
// Частичных обновлений нет: валидация выполняется над целым документом
// до вызова, поэтому и запись идёт целым документом.
func (r *Repository) Set(ctx context.Context, cfg *domain.ReservationConfig) (*domain.ReservationConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursRaw, err := json.Marshal(openingHoursToDoc(cfg.OpeningHours))
	if err != nil {
		return nil, fmt.Errorf("%w: Set - opening_hours: %v", ErrMarshalDocument, err)
	}

	areasRaw, err := json.Marshal(areasToDoc(cfg.Areas))
	if err != nil {
		return nil, fmt.Errorf("%w: Set - areas: %v", ErrMarshalDocument, err)
	}

	query, args, err := psqlbuilder.Insert("reservation_configs").
		Columns(
			"restaurant_id",
			"reservations_enabled",
			"reservations_paused",
			"wizard_completed",
			"opening_hours",
			"areas",
			"duration_minutes",
			"buffer_minutes",
			"max_people_per_reservation",
			"min_advance_hours",
			"confirmation_mode",
		).
		Values(
			cfg.RestaurantID,
			cfg.ReservationsEnabled,
			cfg.ReservationsPaused,
			cfg.WizardCompleted,
			hoursRaw,
			areasRaw,
			cfg.Rules.DurationMinutes,
			cfg.Rules.BufferMinutes,
			cfg.Rules.MaxPeoplePerReservation,
			cfg.Rules.MinAdvanceHours,
			cfg.ConfirmationMode,
		).
		Suffix(`ON CONFLICT (restaurant_id) DO UPDATE SET
			reservations_enabled = EXCLUDED.reservations_enabled,
			reservations_paused = EXCLUDED.reservations_paused,
			wizard_completed = EXCLUDED.wizard_completed,
			opening_hours = EXCLUDED.opening_hours,
			areas = EXCLUDED.areas,
			duration_minutes = EXCLUDED.duration_minutes,
			buffer_minutes = EXCLUDED.buffer_minutes,
			max_people_per_reservation = EXCLUDED.max_people_per_reservation,
			min_advance_hours = EXCLUDED.min_advance_hours,
			confirmation_mode = EXCLUDED.confirmation_mode,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// Delete удаляет конфигурацию ресторана
func (r *Repository) Delete(ctx context.Context, restaurantID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservation_configs").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
