package domain

import (
	"time"

	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// BlockedTime represents an explicit unavailability window set by the professional.
// Интервал [StartTime, EndTime) в пределах одного календарного дня;
// пересечения между блокировками допустимы и трактуются как объединение.
type BlockedTime struct {
	ID             int64
	ProfessionalID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Reason         *string

	CreatedAt time.Time
}

// IsValidInterval returns true if the interval is well-formed (start < end)
func (b *BlockedTime) IsValidInterval() bool {
	return b.StartTime.IsBefore(b.EndTime)
}
