package create_appointment

import (
	"fmt"
	"time"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if req.ClientPhone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	if len(req.ClientPhone) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: clientPhone is too long", ErrInvalidInput)
	}

	if req.ClientEmail != nil && len(*req.ClientEmail) > domain.MaxClientEmailLength {
		return fmt.Errorf("%w: clientEmail is too long", ErrInvalidInput)
	}

	return nil
}

// validateSlotInWindow проверяет, что запрошенный интервал лежит в рабочем окне
// и время начала попадает в сетку слотов
func validateSlotInWindow(day domain.DaySchedule, start, end types.TimeString, granularity int) error {
	if start.IsBefore(day.StartTime) || end.IsAfter(day.EndTime) {
		return fmt.Errorf("%w: %s-%s is outside working hours %s-%s",
			ErrInvalidTimeSlot, start, end, day.StartTime, day.EndTime)
	}

	// Калькулятор доступности предлагает только времена из сетки;
	// запрос с невыровненным началом создан в обход него
	startMinutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	windowStartMinutes, err := day.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if (startMinutes-windowStartMinutes)%granularity != 0 {
		return fmt.Errorf("%w: start time %s is not aligned to %d-minute grid", ErrInvalidTimeSlot, start, granularity)
	}

	return nil
}

// hasOverlap возвращает true, если [start, end) пересекается с блокировкой или
// активной записью. То же правило, что у калькулятора доступности: строгие
// неравенства, соприкосновение границ пересечением не считается.
func hasOverlap(start, end types.TimeString, blocks []*domain.BlockedTime, appointments []*domain.Appointment) bool {
	for _, block := range blocks {
		if block.StartTime.IsBefore(end) && block.EndTime.IsAfter(start) {
			return true
		}
	}

	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}
		if apt.StartTime.IsBefore(end) && apt.EndTime.IsAfter(start) {
			return true
		}
	}

	return false
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
