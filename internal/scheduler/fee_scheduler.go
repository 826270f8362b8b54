package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
	"github.com/TrendySloth1001/tutorix-sub002/internal/repository"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
)

// FeeScheduler handles scheduled fee operations
type FeeScheduler struct {
	feeRepo          repository.FeeRepository
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewFeeScheduler creates a new fee scheduler
func NewFeeScheduler(feeRepo repository.FeeRepository, schedulerLogRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *FeeScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &FeeScheduler{
		feeRepo:          feeRepo,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *FeeScheduler) Start() error {
	s.logger.Info("Starting fee scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling overdue sweep job")
	_, err := s.cron.AddFunc(s.cronExpression, s.sweepOverdueFees)
	if err != nil {
		return fmt.Errorf("failed to schedule overdue sweep job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Fee scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *FeeScheduler) Stop() {
	s.logger.Info("Stopping fee scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Fee scheduler stopped successfully")
}

// sweepOverdueFees is the scheduled job that moves pending fees past their
// due date to overdue
func (s *FeeScheduler) sweepOverdueFees() {
	jobCode := "OVERDUE_SWEEP"
	runID := uuid.New().String()
	now := time.Now()

	s.logScheduler(jobCode, runID, "Starting scheduled overdue sweep", "START", &now)

	s.logger.Info("Starting scheduled overdue sweep...")

	updated, err := s.feeRepo.MarkPendingFeesOverdue(now)
	if err != nil {
		failedMessage := fmt.Sprintf("Failed to sweep overdue fees: %v", err)
		s.logScheduler(jobCode, runID, failedMessage, "FAILED", &now)
		s.logger.WithError(err).Error("Failed to sweep overdue fees")
		return
	}

	successMessage := fmt.Sprintf("Overdue sweep marked %d fee records as overdue", updated)
	s.logScheduler(jobCode, runID, successMessage, "SUCCESS", &now)

	s.logger.WithField("updated", updated).Info("Scheduled overdue sweep completed")
}

// logScheduler creates a new log entry in the database
func (s *FeeScheduler) logScheduler(jobCode, runID, message, status string, createdAt *time.Time) {
	logEntry := &models.SchedulerLog{
		RunID:     &runID,
		JobCode:   &jobCode,
		Message:   &message,
		Status:    &status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := s.schedulerLogRepo.CreateSchedulerLog(logEntry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	} else {
		s.logger.WithField("status", status).WithField("run_id", runID).Info("Scheduler log entry created")
	}
}
