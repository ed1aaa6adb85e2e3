package models

import "github.com/meuagendamento/scheduling-service/internal/domain"

// ProfileService услуга в составе публичного профиля
type ProfileService struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Color           string  `json:"color"`
}

// ProfileResponse публичный профиль профессионала для страницы записи
type ProfileResponse struct {
	ID           int64            `json:"id"`
	Slug         string           `json:"slug"`
	Name         string           `json:"name"`
	BusinessName string           `json:"businessName"`
	Phone        string           `json:"phone"`
	LogoURL      *string          `json:"logoUrl,omitempty"`
	Address      *string          `json:"address,omitempty"`
	Services     []ProfileService `json:"services"`
}

// FromDomain собирает публичный профиль из domain моделей.
// E-mail профессионала в публичный ответ не попадает.
func FromDomain(prof *domain.Professional, services []*domain.Service) *ProfileResponse {
	result := make([]ProfileService, 0, len(services))
	for _, s := range services {
		result = append(result, ProfileService{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Color:           s.Color,
		})
	}

	return &ProfileResponse{
		ID:           prof.ID,
		Slug:         prof.Slug,
		Name:         prof.Name,
		BusinessName: prof.BusinessName,
		Phone:        prof.Phone,
		LogoURL:      prof.LogoURL,
		Address:      prof.Address,
		Services:     result,
	}
}
