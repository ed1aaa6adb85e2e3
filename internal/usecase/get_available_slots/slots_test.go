package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

func workDay(start, end string) domain.DaySchedule {
	return domain.DaySchedule{
		Enabled:   true,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func interval(start, end string) occupiedInterval {
	return occupiedInterval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestComputeAvailableSlots_EmptyDay(t *testing.T) {
	// Окно 08:00-18:00, услуга 30 минут, шаг 30 минут - весь день свободен
	slots, err := computeAvailableSlots(workDay("08:00", "18:00"), 30, 30, nil)
	require.NoError(t, err)

	assert.Len(t, slots, 20)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[19])
}

func TestComputeAvailableSlots_SingleAppointment(t *testing.T) {
	// Запись 13:00-13:30: из сетки выпадает только 13:00,
	// соседние 12:30 и 13:30 остаются доступными
	occupied := []occupiedInterval{interval("13:00", "13:30")}

	slots, err := computeAvailableSlots(workDay("08:00", "18:00"), 30, 30, occupied)
	require.NoError(t, err)

	assert.Len(t, slots, 19)
	assert.NotContains(t, slots, types.TimeString("13:00"))
	assert.Contains(t, slots, types.TimeString("12:30"))
	assert.Contains(t, slots, types.TimeString("13:30"))
}

func TestComputeAvailableSlots_LongerService(t *testing.T) {
	// Услуга 45 минут, блокировка 12:00-13:00.
	// 11:30 выпадает (интервал 11:30-12:15 пересекает блокировку),
	// 11:00 остаётся (11:00-11:45 заканчивается до блокировки)
	occupied := []occupiedInterval{interval("12:00", "13:00")}

	slots, err := computeAvailableSlots(workDay("08:00", "18:00"), 45, 30, occupied)
	require.NoError(t, err)

	assert.Contains(t, slots, types.TimeString("11:00"))
	assert.NotContains(t, slots, types.TimeString("11:30"))
	assert.NotContains(t, slots, types.TimeString("12:00"))
	assert.NotContains(t, slots, types.TimeString("12:30"))
	assert.Contains(t, slots, types.TimeString("13:00"))
}

func TestComputeAvailableSlots_UnalignedOccupiedBoundary(t *testing.T) {
	// Занятый интервал 12:00-12:15 не выровнен по сетке, но кандидат 12:00
	// всё равно выпадает: пересечение проверяется по реальным интервалам
	occupied := []occupiedInterval{interval("12:00", "12:15")}

	slots, err := computeAvailableSlots(workDay("08:00", "18:00"), 30, 30, occupied)
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("12:00"))
	assert.Contains(t, slots, types.TimeString("11:30"))
	assert.Contains(t, slots, types.TimeString("12:30"))
}

func TestComputeAvailableSlots_TouchingBoundariesDoNotOverlap(t *testing.T) {
	// Соприкосновение границ пересечением не считается:
	// запись 10:00-10:30 не мешает кандидатам 09:30 и 10:30
	occupied := []occupiedInterval{interval("10:00", "10:30")}

	slots, err := computeAvailableSlots(workDay("09:00", "11:00"), 30, 30, occupied)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:30"}, slots)
}

func TestComputeAvailableSlots_ServiceFitsExactlyAtWindowEnd(t *testing.T) {
	// Услуга, заканчивающаяся ровно на границе окна, допустима
	slots, err := computeAvailableSlots(workDay("17:00", "18:00"), 60, 30, nil)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"17:00"}, slots)
}

func TestComputeAvailableSlots_ServiceDoesNotFit(t *testing.T) {
	// Услуга длиннее рабочего окна - слотов нет
	slots, err := computeAvailableSlots(workDay("17:00", "18:00"), 90, 30, nil)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_DisabledDay(t *testing.T) {
	day := domain.DaySchedule{Enabled: false}

	slots, err := computeAvailableSlots(day, 30, 30, nil)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_InvalidInput(t *testing.T) {
	_, err := computeAvailableSlots(workDay("08:00", "18:00"), 0, 30, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = computeAvailableSlots(workDay("08:00", "18:00"), 30, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Окно с перепутанными границами
	_, err = computeAvailableSlots(workDay("18:00", "08:00"), 30, 30, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeAvailableSlots_Deterministic(t *testing.T) {
	// Повторный вызов с теми же входными данными даёт тот же результат
	occupied := []occupiedInterval{interval("10:00", "11:00"), interval("14:30", "15:00")}

	first, err := computeAvailableSlots(workDay("08:00", "18:00"), 30, 30, occupied)
	require.NoError(t, err)
	second, err := computeAvailableSlots(workDay("08:00", "18:00"), 30, 30, occupied)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCollectOccupiedIntervals(t *testing.T) {
	blocks := []*domain.BlockedTime{
		{ID: 1, StartTime: "12:00", EndTime: "13:00"},
	}
	appointments := []*domain.Appointment{
		{ID: 1, StartTime: "10:00", EndTime: "10:30", Status: domain.StatusConfirmed},
		{ID: 2, StartTime: "11:00", EndTime: "11:30", Status: domain.StatusCancelled},
		{ID: 3, StartTime: "15:00", EndTime: "15:30", Status: domain.StatusPending},
	}

	intervals, err := collectOccupiedIntervals(blocks, appointments)
	require.NoError(t, err)

	// Отменённая запись не занимает время
	assert.Len(t, intervals, 3)
	assert.Contains(t, intervals, interval("12:00", "13:00"))
	assert.Contains(t, intervals, interval("10:00", "10:30"))
	assert.Contains(t, intervals, interval("15:00", "15:30"))
}

func TestCollectOccupiedIntervals_InvalidInterval(t *testing.T) {
	blocks := []*domain.BlockedTime{
		{ID: 7, StartTime: "13:00", EndTime: "12:00"},
	}

	_, err := collectOccupiedIntervals(blocks, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFilterPastStartTimes(t *testing.T) {
	slots := []types.TimeString{"08:00", "10:00", "14:00", "17:30"}
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	// Сегодня в 10:00: слоты раньше текущего времени выпадают
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	filtered := filterPastStartTimes(slots, date, now)
	assert.Equal(t, []types.TimeString{"10:00", "14:00", "17:30"}, filtered)

	// Будущая дата - слоты не фильтруются
	now = time.Date(2025, 10, 14, 23, 0, 0, 0, time.UTC)
	filtered = filterPastStartTimes(slots, date, now)
	assert.Equal(t, slots, filtered)
}
