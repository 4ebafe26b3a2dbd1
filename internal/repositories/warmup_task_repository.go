package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/inboxpilot/warmup/internal/models"
)

type WarmupTaskRepository struct {
	db *sql.DB
}

func NewWarmupTaskRepository(db *sql.DB) *WarmupTaskRepository {
	return &WarmupTaskRepository{
		db: db,
	}
}

// Create inserts a new warmup task
func (r *WarmupTaskRepository) Create(task *models.WarmupTask) error {
	query := `
		INSERT INTO warmup_tasks (id, account_id, action, status, scheduled_at, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		task.ID,
		task.AccountID,
		task.Action,
		task.Status,
		task.ScheduledAt,
		task.CompletedAt,
		task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// GetByID retrieves a warmup task by ID
func (r *WarmupTaskRepository) GetByID(id string) (*models.WarmupTask, error) {
	query := `SELECT id, account_id, action, status, scheduled_at, completed_at, created_at FROM warmup_tasks WHERE id = ?`

	var task models.WarmupTask
	err := r.db.QueryRow(query, id).Scan(
		&task.ID,
		&task.AccountID,
		&task.Action,
		&task.Status,
		&task.ScheduledAt,
		&task.CompletedAt,
		&task.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &task, nil
}

// GetAll retrieves all warmup tasks, newest first
func (r *WarmupTaskRepository) GetAll() ([]*models.WarmupTask, error) {
	query := `SELECT id, account_id, action, status, scheduled_at, completed_at, created_at FROM warmup_tasks ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var tasks []*models.WarmupTask
	for rows.Next() {
		var task models.WarmupTask
		err := rows.Scan(
			&task.ID,
			&task.AccountID,
			&task.Action,
			&task.Status,
			&task.ScheduledAt,
			&task.CompletedAt,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return tasks, nil
}

// Complete marks a task as completed
func (r *WarmupTaskRepository) Complete(id string) error {
	query := `UPDATE warmup_tasks SET status = ?, completed_at = ? WHERE id = ?`

	result, err := r.db.Exec(query, models.TaskStatusCompleted, time.Now(), id)
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

// CountByStatus returns the number of tasks per status
func (r *WarmupTaskRepository) CountByStatus() (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM warmup_tasks GROUP BY status`

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
