package domain

import "time"

// Service represents a bookable service offered by a professional
type Service struct {
	ID             int64
	ProfessionalID int64
	Name           string
	Description    *string
	Price          float64
	// DurationMinutes длительность услуги. Записи денормализуют её при создании,
	// поэтому редактирование услуги не двигает время окончания существующих записей.
	DurationMinutes int
	Color           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidDuration returns true if the duration is within business limits
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes >= MinServiceDurationMinutes &&
		s.DurationMinutes <= MaxServiceDurationMinutes
}
