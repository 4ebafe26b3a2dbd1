package services

import (
	"fmt"
	"time"

	"github.com/inboxpilot/warmup/internal/models"
	"github.com/inboxpilot/warmup/internal/repositories"
)

// WarmupTaskService is a thin passthrough over task records. Scheduling and
// execution of warmup activity live outside this system.
type WarmupTaskService struct {
	taskRepo      *repositories.WarmupTaskRepository
	accountRepo   *repositories.EmailAccountRepository
	actionService *ActionService
}

func NewWarmupTaskService(taskRepo *repositories.WarmupTaskRepository, accountRepo *repositories.EmailAccountRepository, actionService *ActionService) *WarmupTaskService {
	return &WarmupTaskService{
		taskRepo:      taskRepo,
		accountRepo:   accountRepo,
		actionService: actionService,
	}
}

// CreateTask creates a pending warmup task for an existing account. The
// action must come from the catalog.
func (s *WarmupTaskService) CreateTask(accountID, action string, scheduledAt *time.Time) (*models.WarmupTask, error) {
	if !s.actionService.IsValidAction(action) {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}

	// The referenced account must be live
	if _, err := s.accountRepo.GetByID(accountID); err != nil {
		return nil, err
	}

	task := models.NewWarmupTask(accountID, action, scheduledAt)
	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

// GetAllTasks retrieves all warmup tasks
func (s *WarmupTaskService) GetAllTasks() ([]*models.WarmupTask, error) {
	return s.taskRepo.GetAll()
}

// GetTaskByID retrieves a warmup task by ID
func (s *WarmupTaskService) GetTaskByID(id string) (*models.WarmupTask, error) {
	return s.taskRepo.GetByID(id)
}

// CompleteTask marks a task as completed and returns the updated record
func (s *WarmupTaskService) CompleteTask(id string) (*models.WarmupTask, error) {
	if err := s.taskRepo.Complete(id); err != nil {
		return nil, err
	}
	return s.taskRepo.GetByID(id)
}
