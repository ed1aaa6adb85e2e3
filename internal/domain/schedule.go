package domain

import (
	"time"

	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// DaySchedule рабочее окно профессионала на один день недели.
// Если Enabled=false, времена не используются и слоты не генерируются.
type DaySchedule struct {
	Enabled   bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// WeekSchedule рабочие окна профессионала по дням недели
type WeekSchedule struct {
	ProfessionalID int64

	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule

	UpdatedAt time.Time
}

// ForWeekday возвращает рабочее окно на указанный день недели
func (w *WeekSchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Enabled: false}
	}
}

// SetForWeekday заменяет рабочее окно на указанный день недели
func (w *WeekSchedule) SetForWeekday(weekday time.Weekday, day DaySchedule) {
	switch weekday {
	case time.Monday:
		w.Monday = day
	case time.Tuesday:
		w.Tuesday = day
	case time.Wednesday:
		w.Wednesday = day
	case time.Thursday:
		w.Thursday = day
	case time.Friday:
		w.Friday = day
	case time.Saturday:
		w.Saturday = day
	case time.Sunday:
		w.Sunday = day
	}
}

// DefaultWeekSchedule расписание по умолчанию для нового профессионала:
// понедельник-суббота 08:00-18:00, воскресенье выходной.
func DefaultWeekSchedule(professionalID int64) *WeekSchedule {
	workDay := DaySchedule{
		Enabled:   true,
		StartTime: types.TimeString(DefaultWorkStartTime),
		EndTime:   types.TimeString(DefaultWorkEndTime),
	}

	return &WeekSchedule{
		ProfessionalID: professionalID,
		Monday:         workDay,
		Tuesday:        workDay,
		Wednesday:      workDay,
		Thursday:       workDay,
		Friday:         workDay,
		Saturday:       workDay,
		Sunday:         DaySchedule{Enabled: false},
	}
}
