package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/repository"
	"github.com/alexanderramin/studyflow/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

type testRepos struct {
	db       *sql.DB
	tasks    *repository.SQLiteTaskRepo
	wellness *repository.SQLiteWellnessRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:       database,
		tasks:    repository.NewSQLiteTaskRepo(database),
		wellness: repository.NewSQLiteWellnessRepo(database),
	}
}

func seedTasks(t *testing.T, repo repository.TaskRepo, tasks ...*domain.Task) {
	t.Helper()
	for _, task := range tasks {
		require.NoError(t, repo.Create(context.Background(), task))
	}
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func at(t time.Time) *time.Time { return &t }
