package invites

import "errors"

var (
	// ErrInviteNotFound возвращается, когда приглашение не найдено
	ErrInviteNotFound = errors.New("invite not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInviteNotRedeemable возвращается при попытке использовать
	// просроченное или уже использованное приглашение
	ErrInviteNotRedeemable = errors.New("invite is expired or already used")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
