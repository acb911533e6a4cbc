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

// logTimeLayout has a fixed width so created_at sorts lexically.
const logTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const wellnessColumns = `id, stress, sleep_hours, energy, score, level, mode, note, created_at`

// SQLiteWellnessRepo implements WellnessRepo using a SQLite database.
type SQLiteWellnessRepo struct {
	db db.DBTX
}

// NewSQLiteWellnessRepo creates a new SQLiteWellnessRepo.
func NewSQLiteWellnessRepo(conn db.DBTX) *SQLiteWellnessRepo {
	return &SQLiteWellnessRepo{db: conn}
}

func (r *SQLiteWellnessRepo) Create(ctx context.Context, l *domain.WellnessLog) error {
	query := `INSERT INTO wellness_logs (` + wellnessColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Stress,
		l.SleepHours,
		l.Energy,
		l.Score,
		string(l.Level),
		string(l.Mode),
		l.Note,
		l.CreatedAt.UTC().Format(logTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting wellness log: %w", err)
	}
	return nil
}

// Latest returns the most recent check-in.
func (r *SQLiteWellnessRepo) Latest(ctx context.Context) (*domain.WellnessLog, error) {
	query := `SELECT ` + wellnessColumns + ` FROM wellness_logs ORDER BY created_at DESC, rowid DESC LIMIT 1`
	l, err := r.scanInto(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("wellness log: %w", ErrNotFound)
	}
	return l, err
}

// ListRecent returns up to limit check-ins, newest first.
func (r *SQLiteWellnessRepo) ListRecent(ctx context.Context, limit int) ([]*domain.WellnessLog, error) {
	query := `SELECT ` + wellnessColumns + ` FROM wellness_logs ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing wellness logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.WellnessLog
	for rows.Next() {
		l, err := r.scanInto(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wellness logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteWellnessRepo) scanInto(s rowScanner) (*domain.WellnessLog, error) {
	var l domain.WellnessLog
	var level, mode, createdAtStr string
	err := s.Scan(&l.ID, &l.Stress, &l.SleepHours, &l.Energy, &l.Score, &level, &mode, &l.Note, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning wellness log: %w", err)
	}
	l.Level = domain.WellnessLevel(level)
	l.Mode = domain.WellnessMode(mode)
	if l.CreatedAt, err = time.Parse(logTimeLayout, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &l, nil
}
