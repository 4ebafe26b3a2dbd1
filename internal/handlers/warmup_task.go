package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inboxpilot/warmup/internal/models"
	"github.com/inboxpilot/warmup/internal/services"
)

type WarmupTaskHandler struct {
	taskService *services.WarmupTaskService
}

func NewWarmupTaskHandler(taskService *services.WarmupTaskService) *WarmupTaskHandler {
	return &WarmupTaskHandler{
		taskService: taskService,
	}
}

type createTaskRequest struct {
	AccountID   string     `json:"account_id"`
	Action      string     `json:"action"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// ListTasks returns all warmup tasks
func (h *WarmupTaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.GetAllTasks()
	if err != nil {
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []*models.WarmupTask{}
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single warmup task by ID
func (h *WarmupTaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTaskByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a pending warmup task for an account
func (h *WarmupTaskHandler) CreateTask(c *gin.Context) {
	var request createTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account ID and action are required"})
		return
	}

	task, err := h.taskService.CreateTask(request.AccountID, request.Action, request.ScheduledAt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// CompleteTask marks a warmup task as completed
func (h *WarmupTaskHandler) CompleteTask(c *gin.Context) {
	task, err := h.taskService.CompleteTask(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}
