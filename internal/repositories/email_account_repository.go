package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inboxpilot/warmup/internal/models"
	"github.com/mattn/go-sqlite3"
)

type EmailAccountRepository struct {
	db *sql.DB
}

func NewEmailAccountRepository(db *sql.DB) *EmailAccountRepository {
	return &EmailAccountRepository{
		db: db,
	}
}

// Create inserts a new email account
func (r *EmailAccountRepository) Create(account *models.EmailAccount) error {
	query := `
		INSERT INTO email_accounts (id, email, password, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		account.ID,
		account.Email,
		account.Password,
		account.Status,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// GetByID retrieves an email account by ID
func (r *EmailAccountRepository) GetByID(id string) (*models.EmailAccount, error) {
	query := `SELECT id, email, password, status, created_at, updated_at FROM email_accounts WHERE id = ?`

	var account models.EmailAccount
	err := r.db.QueryRow(query, id).Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &account, nil
}

// GetByEmail retrieves an email account by its email address
func (r *EmailAccountRepository) GetByEmail(email string) (*models.EmailAccount, error) {
	query := `SELECT id, email, password, status, created_at, updated_at FROM email_accounts WHERE email = ?`

	var account models.EmailAccount
	err := r.db.QueryRow(query, email).Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &account, nil
}

// GetAll retrieves all email accounts, newest first
func (r *EmailAccountRepository) GetAll() ([]*models.EmailAccount, error) {
	query := `SELECT id, email, password, status, created_at, updated_at FROM email_accounts ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var accounts []*models.EmailAccount
	for rows.Next() {
		var account models.EmailAccount
		err := rows.Scan(
			&account.ID,
			&account.Email,
			&account.Password,
			&account.Status,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return accounts, nil
}

// UpdatePassword updates the password of an existing account
func (r *EmailAccountRepository) UpdatePassword(id, password string) error {
	query := `UPDATE email_accounts SET password = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.Exec(query, password, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert inserts an account keyed by email, updating the password when the
// email is already present.
func (r *EmailAccountRepository) Upsert(account *models.EmailAccount) error {
	query := `
		INSERT INTO email_accounts (id, email, password, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET password = excluded.password, updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		account.ID,
		account.Email,
		account.Password,
		account.Status,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes an email account permanently
func (r *EmailAccountRepository) Delete(id string) error {
	query := `DELETE FROM email_accounts WHERE id = ?`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes all accounts matching the given IDs and returns the
// number of rows actually deleted. Unknown IDs are skipped.
func (r *EmailAccountRepository) DeleteMany(ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf(`DELETE FROM email_accounts WHERE id IN (%s)`, placeholders)

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return int(affected), nil
}

// CountByStatus returns the number of accounts per status
func (r *EmailAccountRepository) CountByStatus() (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM email_accounts GROUP BY status`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return counts, nil
}
