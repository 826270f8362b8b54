package feeclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardControllerLoad(t *testing.T) {
	fee := &fakeFeeService{summary: &FeeSummary{
		TotalDue:     800,
		TotalPaid:    400,
		TotalOverdue: 500,
		OverdueCount: 1,
		PendingCount: 1,
		PaidCount:    1,
	}}
	d := NewDashboardController(fee)

	require.NoError(t, d.Load(context.Background()))

	require.NotNil(t, d.Summary())
	assert.Equal(t, 800.0, d.Summary().TotalDue)
	assert.False(t, d.Loading())
	assert.Empty(t, d.ErrorMessage())
}

func TestDashboardControllerLoadFailure(t *testing.T) {
	fee := &fakeFeeService{summaryErr: &APIError{StatusCode: 500, Message: "database unavailable"}}
	d := NewDashboardController(fee)

	err := d.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, "database unavailable", d.ErrorMessage())
	assert.Nil(t, d.Summary())
}

func TestDashboardControllerRemindOverdue(t *testing.T) {
	t.Run("reminds_all_overdue_and_refreshes", func(t *testing.T) {
		fee := &fakeFeeService{
			summary: &FeeSummary{OverdueCount: 3},
			remind:  &RemindResult{RequestedCount: 3, SentCount: 2, FailedCount: 1},
		}
		d := NewDashboardController(fee)
		require.NoError(t, d.Load(context.Background()))

		require.NoError(t, d.RemindOverdue(context.Background()))

		require.Len(t, fee.remindIDs, 1)
		assert.Nil(t, fee.remindIDs[0], "nil ids target every overdue fee")

		require.NotNil(t, d.LastRemind())
		assert.Equal(t, 3, d.LastRemind().RequestedCount)
		assert.Equal(t, 2, d.LastRemind().SentCount)
		assert.Equal(t, 1, d.LastRemind().FailedCount)
	})

	t.Run("failure_surfaces_message", func(t *testing.T) {
		fee := &fakeFeeService{
			summary:   &FeeSummary{OverdueCount: 3},
			remindErr: &APIError{StatusCode: 502, Message: "mail relay unavailable"},
		}
		d := NewDashboardController(fee)
		require.NoError(t, d.Load(context.Background()))

		err := d.RemindOverdue(context.Background())

		require.Error(t, err)
		assert.Equal(t, "mail relay unavailable", d.ErrorMessage())
		assert.Nil(t, d.LastRemind())
	})
}
