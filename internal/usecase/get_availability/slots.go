package get_availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// GenerateSlotsForDay генерирует кандидатные слоты на дату по расписанию ресторана.
// Шаг сетки = длительность + буфер; слот попадает в сетку, только если
// бронирование целиком помещается до закрытия диапазона (start + duration <= close).
// Результат: объединение по всем диапазонам дня, без дубликатов, по возрастанию.
func GenerateSlotsForDay(cfg *domain.ReservationConfig, date time.Time) []types.TimeString {
	// 1. Операционные гейты: выключено / на паузе / мастер настройки не завершён
	if !cfg.AcceptsReservations() {
		return []types.TimeString{}
	}

	// 2. День недели: 0 = воскресенье ... 6 = суббота
	weekday := int(date.Weekday())
	ranges := cfg.RangesFor(weekday)
	if len(ranges) == 0 {
		return []types.TimeString{}
	}

	duration := cfg.Rules.DurationMinutes
	buffer := cfg.Rules.BufferMinutes
	step := duration + buffer

	// 3. Генерация по каждому диапазону в минутах от полуночи
	seen := make(map[int]struct{})
	mins := make([]int, 0, 32)
	for _, r := range ranges {
		open := r.Open.Minutes()
		closeAt := r.Close.Minutes()
		for start := open; start+duration <= closeAt; start += step {
			if _, ok := seen[start]; ok {
				continue
			}
			seen[start] = struct{}{}
			mins = append(mins, start)
		}
	}

	// 4. Диапазоны могут идти в любом порядке — сортируем объединение
	sort.Ints(mins)

	slots := make([]types.TimeString, 0, len(mins))
	for _, m := range mins {
		ts, err := types.FromMinutes(m)
		if err != nil {
			continue
		}
		slots = append(slots, ts)
	}
	return slots
}

// HasEligibleArea проверяет, есть ли включённая область, способная принять
// компанию данного размера. Нет подходящей области — нет слотов вообще.
func HasEligibleArea(cfg *domain.ReservationConfig, guests int) bool {
	return len(cfg.EligibleAreas(guests)) > 0
}

// FilterConflicts убирает слоты, пересекающиеся с существующими блокирующими
// бронированиями. Интервалы полуоткрытые: слот конфликтует, если
// slotStart < resStart + duration + buffer && slotStart + duration > resStart.
// Небронирующие статусы (CANCELED, NO_SHOW) время не занимают.
func FilterConflicts(slots []types.TimeString, existing []*domain.Reservation, rules domain.ReservationRules) []types.TimeString {
	duration := rules.DurationMinutes
	buffer := rules.BufferMinutes

	blocking := make([]int, 0, len(existing))
	for _, r := range existing {
		if r.IsBlocking() {
			blocking = append(blocking, r.Time.Minutes())
		}
	}
	if len(blocking) == 0 {
		return slots
	}

	out := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		start := s.Minutes()
		conflict := false
		for _, resStart := range blocking {
			if start < resStart+duration+buffer && start+duration > resStart {
				conflict = true
				break
			}
		}
		if !conflict {
			out = append(out, s)
		}
	}
	return out
}

// FilterByMinAdvance убирает слоты сегодняшнего дня, начинающиеся раньше
// now + minAdvanceHours (порог включительно: слот ровно на пороге остаётся).
// Для любой другой даты фильтр прозрачен — минимальный заблаговременный
// интервал сравнивает минуты внутри текущего дня.
func FilterByMinAdvance(slots []types.TimeString, date time.Time, now time.Time, minAdvanceHours int) []types.TimeString {
	if !sameDate(date, now) {
		return slots
	}

	threshold := MinAvailableTimeToday(now, minAdvanceHours).Minutes()

	out := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if s.Minutes() >= threshold {
			out = append(out, s)
		}
	}
	return out
}

// MinAvailableTimeToday возвращает минимальное время начала бронирования
// на сегодня (now + minAdvanceHours) для отображения клиенту
func MinAvailableTimeToday(now time.Time, minAdvanceHours int) types.TimeString {
	return types.NewTimeString(now.Add(time.Duration(minAdvanceHours) * time.Hour))
}

// AvailableSlots полный конвейер расчёта доступности без учёта минимального
// заблаговременного интервала: гейты -> сетка слотов -> пригодность областей ->
// фильтр конфликтов. Используется и при чтении, и при повторной проверке на записи.
func AvailableSlots(cfg *domain.ReservationConfig, date time.Time, guests int, existing []*domain.Reservation) []types.TimeString {
	slots := GenerateSlotsForDay(cfg, date)
	if len(slots) == 0 {
		return slots
	}

	if !HasEligibleArea(cfg, guests) {
		return []types.TimeString{}
	}

	return FilterConflicts(slots, existing, cfg.Rules)
}
