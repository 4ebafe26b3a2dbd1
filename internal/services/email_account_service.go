package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inboxpilot/warmup/internal/models"
	"github.com/inboxpilot/warmup/internal/repositories"
	"github.com/inboxpilot/warmup/pkg/config"
	"github.com/inboxpilot/warmup/pkg/logger"
)

// EmailAccountService owns the canonical set of email accounts used for
// warmup campaigns. Emails are unique across the store; batch operations
// apply each record independently.
type EmailAccountService struct {
	accountRepo *repositories.EmailAccountRepository
	maxRetries  int
	retryDelay  time.Duration
}

func NewEmailAccountService(accountRepo *repositories.EmailAccountRepository, storeCfg config.StoreConfig) *EmailAccountService {
	return &EmailAccountService{
		accountRepo: accountRepo,
		maxRetries:  storeCfg.MaxRetries,
		retryDelay:  time.Duration(storeCfg.RetryDelayMS) * time.Millisecond,
	}
}

// withRetry runs op, retrying store-unavailable failures with linear backoff.
func (s *EmailAccountService) withRetry(op func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = op()
		if err == nil || !errors.Is(err, repositories.ErrStoreUnavailable) || attempt >= s.maxRetries {
			return err
		}
		logger.WithError(err).Warnf("store unavailable, retrying (attempt %d of %d)", attempt+1, s.maxRetries)
		time.Sleep(s.retryDelay * time.Duration(attempt+1))
	}
}

// GetAllEmailAccounts retrieves all email accounts, newest first
func (s *EmailAccountService) GetAllEmailAccounts() ([]*models.EmailAccount, error) {
	var accounts []*models.EmailAccount
	err := s.withRetry(func() error {
		var err error
		accounts, err = s.accountRepo.GetAll()
		return err
	})
	return accounts, err
}

// GetEmailAccountByID retrieves an email account by ID
func (s *EmailAccountService) GetEmailAccountByID(id string) (*models.EmailAccount, error) {
	var account *models.EmailAccount
	err := s.withRetry(func() error {
		var err error
		account, err = s.accountRepo.GetByID(id)
		return err
	})
	return account, err
}

// CreateEmailAccount creates a new email account from the given credentials
func (s *EmailAccountService) CreateEmailAccount(creds models.AccountCredentials) (*models.EmailAccount, error) {
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	account := models.NewEmailAccount(strings.TrimSpace(creds.Email), creds.Password)
	err := s.withRetry(func() error {
		return s.accountRepo.Create(account)
	})
	if err != nil {
		return nil, err
	}

	logger.WithField("email", account.Email).Info("Email account created")
	return account, nil
}

// UpdateEmailAccountPassword updates the password of an existing account.
// Email and ID are never changed by this operation.
func (s *EmailAccountService) UpdateEmailAccountPassword(id, password string) (*models.EmailAccount, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	err := s.withRetry(func() error {
		return s.accountRepo.UpdatePassword(id, password)
	})
	if err != nil {
		return nil, err
	}

	return s.GetEmailAccountByID(id)
}

// DeleteEmailAccount removes an email account permanently
func (s *EmailAccountService) DeleteEmailAccount(id string) (bool, error) {
	err := s.withRetry(func() error {
		return s.accountRepo.Delete(id)
	})
	if err != nil {
		return false, err
	}

	logger.WithField("id", id).Info("Email account deleted")
	return true, nil
}

// BatchUpsertEmailAccounts applies each credential pair independently: an
// existing account with the same email gets its password updated, otherwise
// a new account is created. Invalid or failed rows are skipped and excluded
// from the returned count; they never abort the rest of the batch.
func (s *EmailAccountService) BatchUpsertEmailAccounts(creds []models.AccountCredentials) int {
	count := 0
	for _, c := range creds {
		if err := c.Validate(); err != nil {
			logger.WithField("email", c.Email).Warnf("Skipping invalid roster row: %v", err)
			continue
		}

		account := models.NewEmailAccount(strings.TrimSpace(c.Email), c.Password)
		err := s.withRetry(func() error {
			return s.accountRepo.Upsert(account)
		})
		if err != nil {
			logger.WithError(err).Errorf("Failed to upsert account %s", c.Email)
			continue
		}
		count++
	}

	logger.Infof("Batch upsert applied %d of %d rows", count, len(creds))
	return count
}

// BatchDeleteEmailAccounts deletes all matching accounts and returns the
// number actually removed. IDs with no matching record are silently skipped.
func (s *EmailAccountService) BatchDeleteEmailAccounts(ids []string) (int, error) {
	var count int
	err := s.withRetry(func() error {
		var err error
		count, err = s.accountRepo.DeleteMany(ids)
		return err
	})
	if err != nil {
		return 0, err
	}

	logger.Infof("Batch delete removed %d of %d requested accounts", count, len(ids))
	return count, nil
}
