package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("garbage")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(14*60 + 30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), ts)

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("09:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+15, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestMinutesUntil(t *testing.T) {
	d, err := TimeString("14:00").MinutesUntil("15:30")
	require.NoError(t, err)
	assert.Equal(t, 90, d)

	d, err = TimeString("15:30").MinutesUntil("14:00")
	require.NoError(t, err)
	assert.Equal(t, -90, d)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:00"))

	// Невалидные значения несравнимы
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("09:00").IsAfter("bad"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:05")))
	assert.Equal(t, TimeString("08:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.NoError(t, ts.Scan(time.Date(2024, 6, 10, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)
}

func TestScanKeepsInvalidValue(t *testing.T) {
	// Плохая запись не роняет чтение; некорректность проявляется позже
	var ts TimeString
	require.NoError(t, ts.Scan("oops"))
	assert.Equal(t, TimeString("oops"), ts)
	assert.Error(t, ts.Validate())
}

func TestValue(t *testing.T) {
	v, err := TimeString("14:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
