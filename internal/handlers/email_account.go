package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inboxpilot/warmup/internal/models"
	"github.com/inboxpilot/warmup/internal/services"
)

type EmailAccountHandler struct {
	accountService *services.EmailAccountService
	rosterService  *services.RosterService
}

func NewEmailAccountHandler(accountService *services.EmailAccountService, rosterService *services.RosterService) *EmailAccountHandler {
	return &EmailAccountHandler{
		accountService: accountService,
		rosterService:  rosterService,
	}
}

type updateAccountRequest struct {
	Password string `json:"password"`
}

type batchUpsertRequest struct {
	Accounts []models.AccountCredentials `json:"accounts"`
}

type batchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// ListAccounts returns all email accounts
func (h *EmailAccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.GetAllEmailAccounts()
	if err != nil {
		respondError(c, err)
		return
	}
	if accounts == nil {
		accounts = []*models.EmailAccount{}
	}

	c.JSON(http.StatusOK, accounts)
}

// GetAccount returns a single email account by ID
func (h *EmailAccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountService.GetEmailAccountByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// CreateAccount creates a new email account
func (h *EmailAccountHandler) CreateAccount(c *gin.Context) {
	var creds models.AccountCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	account, err := h.accountService.CreateEmailAccount(creds)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// UpdateAccount updates the password of an existing account
func (h *EmailAccountHandler) UpdateAccount(c *gin.Context) {
	var request updateAccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	account, err := h.accountService.UpdateEmailAccountPassword(c.Param("id"), request.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an email account
func (h *EmailAccountHandler) DeleteAccount(c *gin.Context) {
	success, err := h.accountService.DeleteEmailAccount(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

// BatchUpsert creates or updates multiple accounts keyed by email
func (h *EmailAccountHandler) BatchUpsert(c *gin.Context) {
	var request batchUpsertRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Accounts == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid accounts array is required"})
		return
	}

	count := h.accountService.BatchUpsertEmailAccounts(request.Accounts)
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// BatchDelete removes multiple accounts by ID
func (h *EmailAccountHandler) BatchDelete(c *gin.Context) {
	var request batchDeleteRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.IDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid ids array is required"})
		return
	}

	count, err := h.accountService.BatchDeleteEmailAccounts(request.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ImportRoster bulk-imports accounts from an email,password CSV body
func (h *EmailAccountHandler) ImportRoster(c *gin.Context) {
	count, err := h.rosterService.ImportRoster(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roster file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ExportRoster writes the current account set in the import format
func (h *EmailAccountHandler) ExportRoster(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="email_accounts.csv"`)
	if err := h.rosterService.WriteRoster(c.Writer); err != nil {
		respondError(c, err)
	}
}

// ExportRosterXLSX writes the current account set as an Excel workbook
func (h *EmailAccountHandler) ExportRosterXLSX(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="email_accounts.xlsx"`)
	if err := h.rosterService.WriteRosterXLSX(c.Writer); err != nil {
		respondError(c, err)
	}
}
