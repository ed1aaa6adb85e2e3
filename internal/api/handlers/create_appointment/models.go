package create_appointment

import (
	"time"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	createAppointment "github.com/meuagendamento/scheduling-service/internal/usecase/create_appointment"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalSlug string  `json:"professionalSlug"`
	ServiceID        int64   `json:"serviceId"`
	Date             string  `json:"date"`      // "2025-10-15"
	StartTime        string  `json:"startTime"` // "10:00"
	ClientName       string  `json:"clientName"`
	ClientPhone      string  `json:"clientPhone"`
	ClientEmail      *string `json:"clientEmail,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	ClientName     string  `json:"clientName"`
	ClientPhone    string  `json:"clientPhone"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`

	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Slug:        r.ProfessionalSlug,
		ServiceID:   r.ServiceID,
		Date:        date,
		StartTime:   startTime,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		ClientEmail:     resp.ClientEmail,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
