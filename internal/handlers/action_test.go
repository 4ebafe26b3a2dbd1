package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inboxpilot/warmup/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActionTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewActionHandler(services.NewActionService())
	router := gin.New()
	router.GET("/api/actions", handler.ListActions)
	router.GET("/api/actions/:id", handler.GetAction)
	return router
}

func TestActionEndpoints(t *testing.T) {
	router := newActionTestRouter()

	t.Run("List catalog", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/actions", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var actions []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actions))
		assert.Len(t, actions, 11)
	})

	t.Run("Get by index", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/actions/0", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"action": "Transfer from Spam to Inbox"}`, w.Body.String())
	})

	t.Run("Out of range", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/actions/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Non-numeric index", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/actions/abc", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
