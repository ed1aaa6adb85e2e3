package models

import (
	"time"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// Request модели

// DayScheduleInput рабочее окно на один день недели
type DayScheduleInput struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// UpdateWeekScheduleRequest запрос на обновление недельного расписания.
// Все семь дней передаются целиком.
type UpdateWeekScheduleRequest struct {
	ProfessionalID int64            `json:"professionalId"`
	Monday         DayScheduleInput `json:"monday"`
	Tuesday        DayScheduleInput `json:"tuesday"`
	Wednesday      DayScheduleInput `json:"wednesday"`
	Thursday       DayScheduleInput `json:"thursday"`
	Friday         DayScheduleInput `json:"friday"`
	Saturday       DayScheduleInput `json:"saturday"`
	Sunday         DayScheduleInput `json:"sunday"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateWeekScheduleRequest) ToDomain() *domain.WeekSchedule {
	return &domain.WeekSchedule{
		ProfessionalID: r.ProfessionalID,
		Monday:         toDomainDay(r.Monday),
		Tuesday:        toDomainDay(r.Tuesday),
		Wednesday:      toDomainDay(r.Wednesday),
		Thursday:       toDomainDay(r.Thursday),
		Friday:         toDomainDay(r.Friday),
		Saturday:       toDomainDay(r.Saturday),
		Sunday:         toDomainDay(r.Sunday),
	}
}

func toDomainDay(d DayScheduleInput) domain.DaySchedule {
	return domain.DaySchedule{
		Enabled:   d.Enabled,
		StartTime: types.TimeString(d.StartTime),
		EndTime:   types.TimeString(d.EndTime),
	}
}

// CreateBlockedTimeRequest запрос на создание блокировки времени
type CreateBlockedTimeRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "12:00"
	EndTime        string  `json:"endTime"`   // "13:00"
	Reason         *string `json:"reason,omitempty"`
}

// Response модели

// DayScheduleResponse рабочее окно на один день недели
type DayScheduleResponse struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WeekScheduleResponse ответ с недельным расписанием
type WeekScheduleResponse struct {
	ProfessionalID int64               `json:"professionalId"`
	Monday         DayScheduleResponse `json:"monday"`
	Tuesday        DayScheduleResponse `json:"tuesday"`
	Wednesday      DayScheduleResponse `json:"wednesday"`
	Thursday       DayScheduleResponse `json:"thursday"`
	Friday         DayScheduleResponse `json:"friday"`
	Saturday       DayScheduleResponse `json:"saturday"`
	Sunday         DayScheduleResponse `json:"sunday"`
}

// BlockedTimeResponse ответ с данными блокировки
type BlockedTimeResponse struct {
	ID             int64   `json:"id"`
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Reason         *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BlockedTimeListResponse ответ со списком блокировок
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
}

// Методы конвертации

// FromDomainWeekSchedule конвертирует domain модель в DTO
func FromDomainWeekSchedule(w *domain.WeekSchedule) *WeekScheduleResponse {
	if w == nil {
		return nil
	}

	return &WeekScheduleResponse{
		ProfessionalID: w.ProfessionalID,
		Monday:         fromDomainDay(w.Monday),
		Tuesday:        fromDomainDay(w.Tuesday),
		Wednesday:      fromDomainDay(w.Wednesday),
		Thursday:       fromDomainDay(w.Thursday),
		Friday:         fromDomainDay(w.Friday),
		Saturday:       fromDomainDay(w.Saturday),
		Sunday:         fromDomainDay(w.Sunday),
	}
}

func fromDomainDay(d domain.DaySchedule) DayScheduleResponse {
	return DayScheduleResponse{
		Enabled:   d.Enabled,
		StartTime: d.StartTime.String(),
		EndTime:   d.EndTime.String(),
	}
}

// FromDomainBlockedTime конвертирует domain модель в DTO
func FromDomainBlockedTime(b *domain.BlockedTime) *BlockedTimeResponse {
	if b == nil {
		return nil
	}

	return &BlockedTimeResponse{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Reason:         b.Reason,
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainBlockedTimeList конвертирует список domain моделей в DTO
func FromDomainBlockedTimeList(blocks []*domain.BlockedTime) *BlockedTimeListResponse {
	result := make([]BlockedTimeResponse, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, *FromDomainBlockedTime(b))
	}
	return &BlockedTimeListResponse{BlockedTimes: result}
}
