package get_available_slots

import (
	"fmt"
	"time"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// occupiedInterval занятый интервал [Start, End) - блокировка или активная запись
type occupiedInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// collectOccupiedIntervals собирает занятые интервалы дня из блокировок и
// активных записей. Валидирует каждый интервал: start >= end - ошибка входных данных.
func collectOccupiedIntervals(blocks []*domain.BlockedTime, appointments []*domain.Appointment) ([]occupiedInterval, error) {
	intervals := make([]occupiedInterval, 0, len(blocks)+len(appointments))

	for _, block := range blocks {
		if err := validateInterval(block.StartTime, block.EndTime); err != nil {
			return nil, fmt.Errorf("%w: blocked time id=%d: %v", ErrInvalidInput, block.ID, err)
		}
		intervals = append(intervals, occupiedInterval{Start: block.StartTime, End: block.EndTime})
	}

	for _, apt := range appointments {
		// Отменённые записи не занимают время
		if !apt.IsActive() {
			continue
		}
		if err := validateInterval(apt.StartTime, apt.EndTime); err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d: %v", ErrInvalidInput, apt.ID, err)
		}
		intervals = append(intervals, occupiedInterval{Start: apt.StartTime, End: apt.EndTime})
	}

	return intervals, nil
}

func validateInterval(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return err
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("interval start %s must be before end %s", start, end)
	}
	return nil
}

// computeAvailableSlots вычисляет доступные времена начала услуги на день.
//
// Кандидаты - каждое кратное granularityMinutes время от начала рабочего окна
// до его конца (не включая). Кандидат t доступен, если:
//   - t + serviceDuration не выходит за конец рабочего окна
//     (ровно на границе окна - допустимо);
//   - интервал [t, t+serviceDuration) не пересекается ни с одним занятым
//     интервалом.
//
// Пересечение проверяется по реальным интервалам, а не по принадлежности
// границ сетке: занятый интервал с невыровненной границей (например 12:00-12:15
// при шаге 30) всё равно убирает кандидата 12:00. Строгие неравенства -
// соприкосновение границ пересечением не считается.
func computeAvailableSlots(
	day domain.DaySchedule,
	serviceDuration int,
	granularityMinutes int,
	occupied []occupiedInterval,
) ([]types.TimeString, error) {
	if serviceDuration <= 0 {
		return nil, fmt.Errorf("%w: service duration must be positive, got %d", ErrInvalidInput, serviceDuration)
	}
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot granularity must be positive, got %d", ErrInvalidInput, granularityMinutes)
	}

	// Выключенный день - пустой результат без ошибки
	if !day.Enabled {
		return []types.TimeString{}, nil
	}

	if err := validateInterval(day.StartTime, day.EndTime); err != nil {
		return nil, fmt.Errorf("%w: working window: %v", ErrInvalidInput, err)
	}

	available := make([]types.TimeString, 0)

	for candidate := day.StartTime; candidate.IsBefore(day.EndTime); {
		slotEnd, err := candidate.AddMinutes(serviceDuration)

		// Услуга должна уместиться в рабочее окно; выход за полночь
		// означает то же самое - кандидат не подходит
		fits := err == nil && !slotEnd.IsAfter(day.EndTime)

		if fits && !overlapsAny(candidate, slotEnd, occupied) {
			available = append(available, candidate)
		}

		candidate, err = candidate.AddMinutes(granularityMinutes)
		if err != nil {
			// Сетка дошла до конца суток
			break
		}
	}

	return available, nil
}

// overlapsAny возвращает true, если [start, end) пересекается хотя бы с одним
// занятым интервалом. Интервалы пересекаются, только если начало одного
// СТРОГО раньше конца другого и наоборот.
func overlapsAny(start, end types.TimeString, occupied []occupiedInterval) bool {
	for _, iv := range occupied {
		if iv.Start.IsBefore(end) && iv.End.IsAfter(start) {
			return true
		}
	}
	return false
}

// filterPastStartTimes для сегодняшней даты убирает кандидатов, начинающихся
// раньше текущего времени. Для будущих дат возвращает слоты как есть.
func filterPastStartTimes(slots []types.TimeString, requestDate, now time.Time) []types.TimeString {
	if !isSameDay(requestDate, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)
	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(currentTime) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
