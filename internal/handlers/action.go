package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inboxpilot/warmup/internal/services"
)

type ActionHandler struct {
	actionService *services.ActionService
}

func NewActionHandler(actionService *services.ActionService) *ActionHandler {
	return &ActionHandler{
		actionService: actionService,
	}
}

// ListActions returns the warmup action catalog
func (h *ActionHandler) ListActions(c *gin.Context) {
	c.JSON(http.StatusOK, h.actionService.GetAvailableActions())
}

// GetAction returns a single action by its catalog position
func (h *ActionHandler) GetAction(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action not found"})
		return
	}

	action, ok := h.actionService.GetActionByIndex(index)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"action": action})
}
