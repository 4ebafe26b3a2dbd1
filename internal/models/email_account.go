package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
)

type EmailAccount struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountCredentials is a raw email/password pair, as carried by batch
// upsert requests and roster import files.
type AccountCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewEmailAccount(email, password string) *EmailAccount {
	now := time.Now()
	return &EmailAccount{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  password,
		Status:    AccountStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks that the credentials can form a usable account record.
func (c AccountCredentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return errors.New("email is malformed")
	}
	if c.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
