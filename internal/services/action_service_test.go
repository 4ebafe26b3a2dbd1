package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionCatalog(t *testing.T) {
	service := NewActionService()

	t.Run("Catalog contents", func(t *testing.T) {
		actions := service.GetAvailableActions()
		assert.Len(t, actions, 11)
		assert.Equal(t, "Transfer from Spam to Inbox", actions[0])
		assert.Equal(t, "Add to Contact List", actions[len(actions)-1])
	})

	t.Run("Lookup by index", func(t *testing.T) {
		action, ok := service.GetActionByIndex(1)
		assert.True(t, ok)
		assert.Equal(t, "Click Link in Email", action)

		_, ok = service.GetActionByIndex(-1)
		assert.False(t, ok)

		_, ok = service.GetActionByIndex(len(service.GetAvailableActions()))
		assert.False(t, ok)
	})

	t.Run("Action validation", func(t *testing.T) {
		assert.True(t, service.IsValidAction("Reply to Email"))
		assert.False(t, service.IsValidAction("Send Newsletter"))
	})
}
