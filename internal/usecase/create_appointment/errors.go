package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrProfessionalClosed возвращается, когда профессионал не работает в указанную дату
	ErrProfessionalClosed = errors.New("create_appointment: professional is closed on this date")

	// ErrInvalidDate возвращается при дате в прошлом или уже прошедшем времени начала
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTimeSlot возвращается, когда время начала не попадает в сетку слотов
	// или услуга не умещается в рабочее окно
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotConflict возвращается, когда интервал пересекается с активной записью
	// или блокировкой - слот уже занят, клиенту нужно выбрать другое время
	ErrSlotConflict = errors.New("create_appointment: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
