package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultWorkStartTime          = "08:00"
	DefaultWorkEndTime            = "18:00"
	DefaultInviteTTLDays          = 7
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxClientNameLength       = 255
	MaxClientPhoneLength      = 32
	MaxClientEmailLength      = 255
	MaxBlockReasonLength      = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы записей, которые занимают время в расписании.
// Используются при подсчёте доступных слотов и проверке пересечений.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
