package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("10:60")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("1030")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_EndOfDay(t *testing.T) {
	// 24:00 допускается как эксклюзивная граница конца дня
	ts, err := NewTimeStringFromString("24:00")
	require.NoError(t, err)
	assert.Equal(t, "24:00", ts.String())

	_, err = NewTimeStringFromString("24:01")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	ts = TimeString("00:00")
	minutes, err = ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	result, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), result)

	// Окончание ровно в полночь допустимо
	ts = TimeString("23:30")
	result, err = ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), result)

	// Выход за пределы суток - ошибка
	_, err = ts.AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("18:00").IsAfter(TimeString("08:00")))
	// Лексикографическое сравнение корректно для формата HH:MM
	assert.True(t, TimeString("09:59").IsBefore(TimeString("10:00")))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(630)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(1441)
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres возвращает время как "HH:MM:SS"
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)
}
