package feeclient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarFixture() *fakeFeeService {
	return &fakeFeeService{calendar: &CalendarStats{
		Year:  2026,
		Month: 3,
		Days: map[string]CalendarDayStats{
			"2026-03-10": {DueAmount: 500, DueCount: 1},
			"2026-03-15": {CollectedAmount: 300, CollectedCount: 1},
		},
	}}
}

func TestCalendarControllerLoad(t *testing.T) {
	fee := newCalendarFixture()
	c := NewCalendarController(fee, 2026, time.March)

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, [][2]int{{2026, 3}}, fee.calendarReqs)
	require.NotNil(t, c.Stats())
	assert.Equal(t, 2026, c.Year())
	assert.Equal(t, time.March, c.Month())
	assert.False(t, c.Loading())
}

func TestCalendarControllerDay(t *testing.T) {
	fee := newCalendarFixture()
	c := NewCalendarController(fee, 2026, time.March)
	require.NoError(t, c.Load(context.Background()))

	due := c.Day(time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, 500.0, due.DueAmount)
	assert.Equal(t, 1, due.DueCount)

	collected := c.Day(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 300.0, collected.CollectedAmount)

	empty := c.Day(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Zero(t, empty.DueAmount)
	assert.Zero(t, empty.DueCount)
}

func TestCalendarControllerMonthCursor(t *testing.T) {
	t.Run("advances_and_wraps_december", func(t *testing.T) {
		fee := newCalendarFixture()
		c := NewCalendarController(fee, 2026, time.December)

		require.NoError(t, c.NextMonth(context.Background()))

		assert.Equal(t, 2027, c.Year())
		assert.Equal(t, time.January, c.Month())
		assert.Equal(t, [][2]int{{2027, 1}}, fee.calendarReqs)
	})

	t.Run("rewinds_and_wraps_january", func(t *testing.T) {
		fee := newCalendarFixture()
		c := NewCalendarController(fee, 2026, time.January)

		require.NoError(t, c.PrevMonth(context.Background()))

		assert.Equal(t, 2025, c.Year())
		assert.Equal(t, time.December, c.Month())
		assert.Equal(t, [][2]int{{2025, 12}}, fee.calendarReqs)
	})

	t.Run("round_trip_restores_cursor", func(t *testing.T) {
		fee := newCalendarFixture()
		c := NewCalendarController(fee, 2026, time.March)

		require.NoError(t, c.NextMonth(context.Background()))
		require.NoError(t, c.PrevMonth(context.Background()))

		assert.Equal(t, 2026, c.Year())
		assert.Equal(t, time.March, c.Month())
	})
}

func TestCalendarControllerLoadFailure(t *testing.T) {
	fee := newCalendarFixture()
	c := NewCalendarController(fee, 2026, time.March)
	require.NoError(t, c.Load(context.Background()))

	fee.calendarErr = &APIError{StatusCode: 500, Message: "database unavailable"}
	err := c.NextMonth(context.Background())

	require.Error(t, err)
	assert.Equal(t, "database unavailable", c.ErrorMessage())
	assert.NotNil(t, c.Stats(), "previous stats kept on failure")
}
