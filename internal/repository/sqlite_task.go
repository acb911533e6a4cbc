package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studyflow/internal/db"
	"github.com/alexanderramin/studyflow/internal/domain"
)

const taskColumns = `id, title, description, deadline, priority, estimated_hours, status,
	course, planned_date, source_text, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo. conn may be a *sql.DB or a
// *sql.Tx handed out by a UnitOfWork.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		nullableTimeToString(t.Deadline, domain.DateLayout),
		string(t.Priority),
		nullableFloatToValue(t.EstimatedHours),
		string(t.Status),
		t.Course,
		nullableTimeToString(t.PlannedDate, domain.DateLayout),
		t.SourceText,
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeCompleted {
		query += ` WHERE status != 'completed'`
	}
	query += ` ORDER BY deadline IS NULL, deadline, created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, deadline = ?, priority = ?,
		estimated_hours = ?, status = ?, course = ?, planned_date = ?, source_text = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		nullableTimeToString(t.Deadline, domain.DateLayout),
		string(t.Priority),
		nullableFloatToValue(t.EstimatedHours),
		string(t.Status),
		t.Course,
		nullableTimeToString(t.PlannedDate, domain.DateLayout),
		t.SourceText,
		t.UpdatedAt.UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireOneRow(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireOneRow(res, "task")
}

func requireOneRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask scans a single task from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	t, err := r.scanInto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// scanTasks scans multiple tasks from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanInto(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) scanInto(s rowScanner) (*domain.Task, error) {
	var t domain.Task
	var deadline, planned sql.NullString
	var hours sql.NullFloat64
	var priority, status, createdAtStr, updatedAtStr string

	err := s.Scan(
		&t.ID, &t.Title, &t.Description, &deadline, &priority, &hours, &status,
		&t.Course, &planned, &t.SourceText, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return r.populateTask(&t, priority, status, deadline, planned, hours, createdAtStr, updatedAtStr)
}

// populateTask fills in parsed fields on a Task after scanning raw columns.
func (r *SQLiteTaskRepo) populateTask(t *domain.Task, priority, status string, deadline, planned sql.NullString, hours sql.NullFloat64, createdAtStr, updatedAtStr string) (*domain.Task, error) {
	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	t.Deadline = parseNullableTime(deadline, domain.DateLayout)
	t.PlannedDate = parseNullableTime(planned, domain.DateLayout)
	t.EstimatedHours = nullFloatToPtr(hours)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return t, nil
}
