package get_available_slots

import (
	"time"

	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Slug      string    // Slug публичной страницы профессионала
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных времён начала
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	ProfessionalID  int64              // ID профессионала
	ServiceID       int64              // ID услуги
	DurationMinutes int                // Длительность услуги
	StartTimes      []types.TimeString // Доступные времена начала по возрастанию
}
