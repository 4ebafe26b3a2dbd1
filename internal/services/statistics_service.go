package services

import (
	"github.com/inboxpilot/warmup/internal/models"
	"github.com/inboxpilot/warmup/internal/repositories"
)

type StatisticsService struct {
	accountRepo *repositories.EmailAccountRepository
	taskRepo    *repositories.WarmupTaskRepository
}

func NewStatisticsService(accountRepo *repositories.EmailAccountRepository, taskRepo *repositories.WarmupTaskRepository) *StatisticsService {
	return &StatisticsService{
		accountRepo: accountRepo,
		taskRepo:    taskRepo,
	}
}

// GetDashboardStatistics aggregates account and task counts for the dashboard
func (s *StatisticsService) GetDashboardStatistics() (*models.DashboardStatistics, error) {
	accountCounts, err := s.accountRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	taskCounts, err := s.taskRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStatistics{
		ActiveAccounts:   accountCounts[models.AccountStatusActive],
		InactiveAccounts: accountCounts[models.AccountStatusInactive],
		PendingTasks:     taskCounts[models.TaskStatusPending],
		CompletedTasks:   taskCounts[models.TaskStatusCompleted],
	}
	for _, c := range accountCounts {
		stats.TotalAccounts += c
	}
	for _, c := range taskCounts {
		stats.TotalTasks += c
	}

	return stats, nil
}
