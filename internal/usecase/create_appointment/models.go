package create_appointment

import (
	"time"

	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Slug        string           // Slug публичной страницы профессионала
	ServiceID   int64            // ID услуги
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала (например, "10:00")
	ClientName  string           // Имя клиента (обязательно)
	ClientPhone string           // Телефон клиента (обязательно)
	ClientEmail *string          // E-mail клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	ClientName     string           // Имя клиента
	ClientPhone    string           // Телефон клиента
	ClientEmail    *string          // E-mail клиента
	Date           time.Time        // Дата записи
	StartTime      types.TimeString // Время начала
	EndTime        types.TimeString // Время окончания (зафиксировано при создании)
	Status         string           // Статус записи (pending)

	// Денормализованные данные услуги
	ServiceName     string  // Название услуги
	ServicePrice    float64 // Цена услуги
	DurationMinutes int     // Длительность в минутах

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
