package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeStatusPrecedence(t *testing.T) {
	ordered := []FeeStatus{
		FeeStatusOverdue,
		FeeStatusPending,
		FeeStatusPartiallyPaid,
		FeeStatusPaid,
		FeeStatusWaived,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Lessf(t, ordered[i-1].Precedence(), ordered[i].Precedence(),
			"%s must rank before %s", ordered[i-1], ordered[i])
	}

	unknown := FeeStatus("MYSTERY")
	for _, s := range ordered {
		assert.Less(t, s.Precedence(), unknown.Precedence())
	}
}

func TestFeeStatusPartition(t *testing.T) {
	tests := []struct {
		status  FeeStatus
		payable bool
	}{
		{FeeStatusPending, true},
		{FeeStatusOverdue, true},
		{FeeStatusPartiallyPaid, true},
		{FeeStatusPaid, false},
		{FeeStatusWaived, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.payable, tt.status.IsPayable())
			assert.Equal(t, !tt.payable, tt.status.IsSettled(), "every known status is exactly one of payable or settled")
		})
	}

	unknown := FeeStatus("MYSTERY")
	assert.False(t, unknown.IsPayable())
	assert.False(t, unknown.IsSettled())
}

func TestFeeRecordBalance(t *testing.T) {
	r := &FeeRecord{FinalAmount: 500, PaidAmount: 150}
	assert.Equal(t, 350.0, r.Balance())

	r = &FeeRecord{FinalAmount: 500, PaidAmount: 500}
	assert.Zero(t, r.Balance())

	// overpayment never yields a negative balance
	r = &FeeRecord{FinalAmount: 500, PaidAmount: 600}
	assert.Zero(t, r.Balance())
}
