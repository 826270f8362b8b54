package feeclient

import (
	"context"
	"time"
)

// calendarDayKey is the date format keying CalendarStats.Days
const calendarDayKey = "2006-01-02"

// CalendarController owns the fee calendar screen state: a month cursor
// and the date-keyed due/collected aggregates for it. Single-goroutine
// ownership, like FeeController.
type CalendarController struct {
	observable

	feeService FeeService

	year  int
	month int

	stats   *CalendarStats
	loading bool
	errMsg  string
}

// NewCalendarController creates a controller positioned on the given month
func NewCalendarController(feeService FeeService, year int, month time.Month) *CalendarController {
	return &CalendarController{
		feeService: feeService,
		year:       year,
		month:      int(month),
	}
}

// Load fetches the aggregates for the cursor month. On failure the
// previous stats stay as they were.
func (c *CalendarController) Load(ctx context.Context) error {
	c.loading = true
	c.errMsg = ""
	c.notify()

	stats, err := c.feeService.GetFeeCalendarStats(ctx, c.year, c.month)
	if err != nil {
		c.loading = false
		c.errMsg = userMessage(err)
		c.notify()
		return err
	}

	c.stats = stats
	c.loading = false
	c.notify()

	return nil
}

// NextMonth moves the cursor forward one month and reloads
func (c *CalendarController) NextMonth(ctx context.Context) error {
	c.month++
	if c.month > 12 {
		c.month = 1
		c.year++
	}
	return c.Load(ctx)
}

// PrevMonth moves the cursor back one month and reloads
func (c *CalendarController) PrevMonth(ctx context.Context) error {
	c.month--
	if c.month < 1 {
		c.month = 12
		c.year--
	}
	return c.Load(ctx)
}

// Day returns the aggregates recorded for one date, zero-valued when
// that day saw no activity
func (c *CalendarController) Day(date time.Time) CalendarDayStats {
	if c.stats == nil {
		return CalendarDayStats{}
	}
	return c.stats.Days[date.Format(calendarDayKey)]
}

// Year returns the cursor year
func (c *CalendarController) Year() int {
	return c.year
}

// Month returns the cursor month
func (c *CalendarController) Month() time.Month {
	return time.Month(c.month)
}

// Stats returns the loaded aggregates for the cursor month
func (c *CalendarController) Stats() *CalendarStats {
	return c.stats
}

// Loading reports whether a load is in flight
func (c *CalendarController) Loading() bool {
	return c.loading
}

// ErrorMessage returns the last surfaced error, empty when the last
// operation succeeded
func (c *CalendarController) ErrorMessage() string {
	return c.errMsg
}
