package domain

import (
	"time"

	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a client appointment with a professional
type Appointment struct {
	ID             int64
	ProfessionalID int64
	ServiceID      int64

	ClientName  string
	ClientPhone string
	ClientEmail *string

	Date      time.Time
	StartTime types.TimeString
	// EndTime фиксируется при создании (start + длительность услуги на тот момент).
	// Последующие изменения услуги не меняют уже созданные записи.
	EndTime types.TimeString

	Status AppointmentStatus

	// Denormalized service data, frozen at creation time
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time interval
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanTransitionTo проверяет допустимость перехода статуса.
// pending -> confirmed | cancelled; confirmed -> cancelled; cancelled финален.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// ValidStatus returns true for a known appointment status
func ValidStatus(s AppointmentStatus) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// AppointmentsFilter фильтр для выборки записей профессионала
type AppointmentsFilter struct {
	ProfessionalID  int64              // Обязательный параметр
	Date            *time.Time         // Конкретная дата (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи
}
