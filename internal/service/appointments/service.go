package appointments

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	appointmentRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/appointment"
	"github.com/meuagendamento/scheduling-service/internal/service/appointments/models"
)

// Service сервис для работы с записями из админ-панели профессионала
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Профессионал может видеть только собственные записи.
func (s *Service) GetByID(ctx context.Context, id int64, professionalID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for professional=%d", id, professionalID)

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if apt.ProfessionalID != professionalID {
		s.logger.Warn("GetByID: access denied for professional=%d to appointment id=%d", professionalID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(apt), nil
}

// GetProfessionalAppointments получает записи профессионала с фильтрацией
// по дате, статусу и включению отменённых записей
func (s *Service) GetProfessionalAppointments(ctx context.Context, req *models.GetAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProfessionalAppointments: fetching appointments for professional=%d", req.ProfessionalID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalAppointments: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalAppointments: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessionalAppointments: fetched %d appointments for professional=%d",
		len(appointments), req.ProfessionalID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus обновляет статус записи.
// Допустимые переходы: pending -> confirmed/cancelled, confirmed -> cancelled.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by professional=%d",
		id, req.Status, req.ProfessionalID)

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if apt.ProfessionalID != req.ProfessionalID {
		s.logger.Warn("UpdateStatus: access denied for professional=%d to appointment id=%d", req.ProfessionalID, id)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if !apt.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			apt.Status, newStatus, id)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, apt.Status, newStatus)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d updated to status=%s", id, newStatus)
	return nil
}

// ExportCSV выгружает записи профессионала в CSV для админ-панели.
// Колонки совпадают с выгрузкой из веб-интерфейса: Data,Hora,Cliente,Telefone,Status.
func (s *Service) ExportCSV(ctx context.Context, req *models.GetAppointmentsRequest) ([]byte, error) {
	s.logger.Info("ExportCSV: exporting appointments for professional=%d", req.ProfessionalID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ExportCSV: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ExportCSV: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"Data", "Hora", "Cliente", "Telefone", "Status"}}
	for _, a := range appointments {
		records = append(records, []string{
			a.Date.Format("02/01/2006"),
			a.StartTime.String(),
			a.ClientName,
			a.ClientPhone,
			string(a.Status),
		})
	}

	if err := w.WriteAll(records); err != nil {
		s.logger.Error("ExportCSV: failed to write csv for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: ExportCSV - failed to write csv: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d appointments for professional=%d", len(appointments), req.ProfessionalID)
	return buf.Bytes(), nil
}
