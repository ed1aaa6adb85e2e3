package models

import (
	"time"

	"github.com/meuagendamento/scheduling-service/internal/domain"
)

// Request модели

// CreateInviteRequest запрос на выпуск приглашения
type CreateInviteRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ClientName     *string `json:"clientName,omitempty"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
}

// Response модели

// InviteResponse ответ с данными приглашения
type InviteResponse struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	ProfessionalID int64   `json:"professionalId"`
	ClientName     *string `json:"clientName,omitempty"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	Status         string  `json:"status"` // active / used / expired

	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// InviteListResponse ответ со списком приглашений
type InviteListResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// ResolveInviteResponse ответ на разрешение кода приглашения.
// Содержит данные профессионала для страницы записи.
type ResolveInviteResponse struct {
	Code             string  `json:"code"`
	ProfessionalID   int64   `json:"professionalId"`
	ProfessionalSlug string  `json:"professionalSlug"`
	BusinessName     string  `json:"businessName"`
	ClientName       *string `json:"clientName,omitempty"`
}

// Методы конвертации

// FromDomainInvite конвертирует domain модель в DTO.
// Статус выводится на момент now.
func FromDomainInvite(inv *domain.ClientInvite, now time.Time) *InviteResponse {
	if inv == nil {
		return nil
	}

	return &InviteResponse{
		ID:             inv.ID,
		Code:           inv.Code,
		ProfessionalID: inv.ProfessionalID,
		ClientName:     inv.ClientName,
		ClientEmail:    inv.ClientEmail,
		Status:         string(inv.StatusAt(now)),
		ExpiresAt:      inv.ExpiresAt,
		UsedAt:         inv.UsedAt,
		CreatedAt:      inv.CreatedAt,
	}
}

// FromDomainInviteList конвертирует список domain моделей в DTO
func FromDomainInviteList(invites []*domain.ClientInvite, now time.Time) *InviteListResponse {
	result := make([]InviteResponse, 0, len(invites))
	for _, inv := range invites {
		result = append(result, *FromDomainInvite(inv, now))
	}
	return &InviteListResponse{Invites: result}
}
