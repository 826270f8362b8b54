package feeclient

import (
	"context"
)

// DashboardController owns the admin dashboard screen state: the
// center-wide summary and the bulk reminder action. Single-goroutine
// ownership, like FeeController.
type DashboardController struct {
	observable

	feeService FeeService

	summary    *FeeSummary
	lastRemind *RemindResult

	loading bool
	errMsg  string
}

// NewDashboardController creates a controller for the admin dashboard
func NewDashboardController(feeService FeeService) *DashboardController {
	return &DashboardController{
		feeService: feeService,
	}
}

// Load fetches the center-wide fee summary. On failure the previous
// summary stays as it was.
func (d *DashboardController) Load(ctx context.Context) error {
	d.loading = true
	d.errMsg = ""
	d.notify()

	summary, err := d.feeService.GetSummary(ctx)
	if err != nil {
		d.loading = false
		d.errMsg = userMessage(err)
		d.notify()
		return err
	}

	d.summary = summary
	d.loading = false
	d.notify()

	return nil
}

// RemindOverdue sends reminders for every overdue fee, keeps the
// outcome counts for display and refreshes the summary
func (d *DashboardController) RemindOverdue(ctx context.Context) error {
	result, err := d.feeService.BulkRemind(ctx, nil)
	if err != nil {
		d.errMsg = userMessage(err)
		d.notify()
		return err
	}

	d.lastRemind = result
	d.notify()

	return d.Load(ctx)
}

// Summary returns the center-wide totals
func (d *DashboardController) Summary() *FeeSummary {
	return d.summary
}

// LastRemind returns the outcome of the most recent reminder run
func (d *DashboardController) LastRemind() *RemindResult {
	return d.lastRemind
}

// Loading reports whether a load is in flight
func (d *DashboardController) Loading() bool {
	return d.loading
}

// ErrorMessage returns the last surfaced error, empty when the last
// operation succeeded
func (d *DashboardController) ErrorMessage() string {
	return d.errMsg
}
