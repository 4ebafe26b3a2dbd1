package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inboxpilot/warmup/internal/models"
	"github.com/inboxpilot/warmup/internal/repositories"
	"github.com/inboxpilot/warmup/internal/services"
	"github.com/inboxpilot/warmup/pkg/config"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE email_accounts (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'active',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	accountRepo := repositories.NewEmailAccountRepository(db)
	accountService := services.NewEmailAccountService(accountRepo, config.StoreConfig{MaxRetries: 0, RetryDelayMS: 0})
	rosterService := services.NewRosterService(accountService)
	handler := NewEmailAccountHandler(accountService, rosterService)

	router := gin.New()
	accounts := router.Group("/api/email-accounts")
	accounts.GET("", handler.ListAccounts)
	accounts.POST("", handler.CreateAccount)
	accounts.POST("/batch", handler.BatchUpsert)
	accounts.DELETE("/batch", handler.BatchDelete)
	accounts.POST("/import", handler.ImportRoster)
	accounts.GET("/export", handler.ExportRoster)
	accounts.GET("/export/xlsx", handler.ExportRosterXLSX)
	accounts.GET("/:id", handler.GetAccount)
	accounts.PATCH("/:id", handler.UpdateAccount)
	accounts.DELETE("/:id", handler.DeleteAccount)
	return router
}

func doRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
	} else {
		reader = strings.NewReader("")
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createAccount(t *testing.T, router *gin.Engine, email, password string) models.EmailAccount {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/api/email-accounts", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, w.Code)

	var account models.EmailAccount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
	return account
}

func TestCreateAccountEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Created", func(t *testing.T) {
		account := createAccount(t, router, "a@x.com", "pw1")
		assert.NotEmpty(t, account.ID)
		assert.Equal(t, "a@x.com", account.Email)
	})

	t.Run("Duplicate email conflicts", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/email-accounts", gin.H{"email": "a@x.com", "password": "other"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/email-accounts", gin.H{"email": "b@x.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAndListAccountEndpoints(t *testing.T) {
	router := newTestRouter(t)
	account := createAccount(t, router, "a@x.com", "pw1")

	t.Run("Get by ID", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/email-accounts/"+account.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched models.EmailAccount
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, account.ID, fetched.ID)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/email-accounts/no-such-id", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/email-accounts", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var accounts []models.EmailAccount
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
		assert.Len(t, accounts, 1)
	})
}

func TestUpdateAccountEndpoint(t *testing.T) {
	router := newTestRouter(t)
	account := createAccount(t, router, "a@x.com", "pw1")

	t.Run("Password updated", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, "/api/email-accounts/"+account.ID, gin.H{"password": "pw2"})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.EmailAccount
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "pw2", updated.Password)
		assert.Equal(t, "a@x.com", updated.Email)
	})

	t.Run("Empty password rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, "/api/email-accounts/"+account.ID, gin.H{"password": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, "/api/email-accounts/no-such-id", gin.H{"password": "pw"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteAccountEndpoint(t *testing.T) {
	router := newTestRouter(t)
	account := createAccount(t, router, "a@x.com", "pw1")

	w := doRequest(router, http.MethodDelete, "/api/email-accounts/"+account.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	w = doRequest(router, http.MethodDelete, "/api/email-accounts/"+account.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBatchEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Batch upsert returns applied count", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/email-accounts/batch", gin.H{
			"accounts": []gin.H{
				{"email": "a@x.com", "password": "p1"},
				{"email": "b@x.com", "password": "p2"},
				{"email": "", "password": "p3"},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count": 2}`, w.Body.String())
	})

	t.Run("Batch upsert without accounts array rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/email-accounts/batch", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Batch delete counts only existing IDs", func(t *testing.T) {
		account := createAccount(t, router, "c@x.com", "p4")

		w := doRequest(router, http.MethodDelete, "/api/email-accounts/batch", gin.H{
			"ids": []string{account.ID, "nonexistent"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count": 1}`, w.Body.String())
	})
}

func TestRosterEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Import CSV body", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/email-accounts/import", bytes.NewBufferString("a@x.com,p1\nb@x.com,p2\n"))
		req.Header.Set("Content-Type", "text/csv")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count": 2}`, w.Body.String())
	})

	t.Run("Export round-trips the import format", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/email-accounts/export", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		assert.Len(t, lines, 2)
		for _, line := range lines {
			assert.Len(t, strings.Split(line, ","), 2)
		}
	})

	t.Run("XLSX export", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/email-accounts/export/xlsx", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	})
}
