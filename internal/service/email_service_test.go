package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrendySloth1001/tutorix-sub002/internal/config"
)

func TestReminderBody(t *testing.T) {
	body := reminderBody("Aarav Sharma", "Nalanda Coaching Center", []string{
		"March Tuition (due 10 Mar 2026): 500.00",
		"April Tuition (due 10 Apr 2026): 300.00",
	}, 800)

	assert.Contains(t, body, "Dear Aarav Sharma,")
	assert.Contains(t, body, "Nalanda Coaching Center")
	assert.Contains(t, body, "March Tuition (due 10 Mar 2026): 500.00")
	assert.Contains(t, body, "April Tuition (due 10 Apr 2026): 300.00")
	assert.Contains(t, body, "Total due: 800.00")
}

func TestConsoleEmailService(t *testing.T) {
	svc := NewEmailService(config.MailConfig{}, testLogger)

	t.Run("logs_instead_of_sending", func(t *testing.T) {
		err := svc.SendFeeReminder("aarav@example.com", "Aarav Sharma", "Nalanda Coaching Center", []string{"March Tuition: 500.00"}, 500)
		require.NoError(t, err)
	})

	t.Run("rejects_empty_recipient", func(t *testing.T) {
		err := svc.SendFeeReminder("", "Aarav Sharma", "Nalanda Coaching Center", nil, 0)
		require.Error(t, err)
	})
}
