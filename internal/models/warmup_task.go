package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

type WarmupTask struct {
	ID          string     `json:"id"`
	AccountID   string     `json:"account_id"`
	Action      string     `json:"action"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewWarmupTask(accountID, action string, scheduledAt *time.Time) *WarmupTask {
	return &WarmupTask{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Action:      action,
		Status:      TaskStatusPending,
		ScheduledAt: scheduledAt,
		CreatedAt:   time.Now(),
	}
}
