package domain

import "time"

// Professional represents a tenant: a professional with a public booking page
type Professional struct {
	ID           int64
	Slug         string // Уникальная часть публичной ссылки на страницу записи
	Name         string
	BusinessName string
	Email        string
	Phone        string
	LogoURL      *string
	Address      *string

	CreatedAt time.Time
}
