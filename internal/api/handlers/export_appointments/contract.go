package export_appointments

import (
	"context"

	"github.com/meuagendamento/scheduling-service/internal/service/appointments/models"
)

type AppointmentService interface {
	ExportCSV(ctx context.Context, req *models.GetAppointmentsRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
