package service

import (
	"fmt"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
	"github.com/TrendySloth1001/tutorix-sub002/internal/repository"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	GetDashboardStats(month, year *int) (*response.DashboardStatsResponse, error)
	GetRecentPayments(page, limit int) ([]*response.RecentPaymentItem, int64, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetDashboardStats returns collection totals and per-status counts,
// optionally narrowed to fees due in one month
func (s *dashboardService) GetDashboardStats(month, year *int) (*response.DashboardStatsResponse, error) {
	stats, err := s.dashboardRepo.GetDashboardStats(month, year)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get dashboard stats")
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return stats, nil
}

// GetRecentPayments returns the latest recorded payments, newest first
func (s *dashboardService) GetRecentPayments(page, limit int) ([]*response.RecentPaymentItem, int64, error) {
	payments, total, err := s.dashboardRepo.GetRecentPayments(page, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get recent payments")
		return nil, 0, fmt.Errorf("failed to get recent payments: %w", err)
	}

	return payments, total, nil
}
