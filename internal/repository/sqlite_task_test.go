package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Lab report",
		testutil.WithDeadline(date(2025, 3, 14)),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithHours(4),
		testutil.WithPlannedDate(date(2025, 3, 13)),
		testutil.WithCourse("BIO 101"),
		testutil.WithDescription("Chloroplast write-up"),
	)
	task.SourceText = "1. Lab report due March 14"
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskRepo_NullableFieldsRoundTrip(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Reading")
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Deadline)
	assert.Nil(t, got.PlannedDate)
	assert.Nil(t, got.EstimatedHours)
	assert.Equal(t, domain.DefaultEstimatedHours, got.Hours())
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_List_OrderAndCompletedFilter(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	late := testutil.NewTestTask("Late", testutil.WithDeadline(date(2025, 4, 1)))
	none := testutil.NewTestTask("No deadline")
	early := testutil.NewTestTask("Early", testutil.WithDeadline(date(2025, 3, 1)))
	done := testutil.NewTestTask("Done", testutil.WithStatus(domain.TaskCompleted), testutil.WithDeadline(date(2025, 2, 1)))
	for _, task := range []*domain.Task{late, none, early, done} {
		require.NoError(t, repo.Create(ctx, task))
	}

	open, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Early", "Late", "No deadline"}, titles(open))

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Done", "Early", "Late", "No deadline"}, titles(all))
}

func TestTaskRepo_Update(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Essay")
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "Final essay"
	task.MarkDone(task.UpdatedAt.Add(time.Hour))
	task.Pin(nil, task.UpdatedAt)
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final essay", got.Title)
	assert.True(t, got.IsCompleted())
	assert.Equal(t, task.UpdatedAt, got.UpdatedAt)
}

func TestTaskRepo_UpdateAndDelete_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	assert.ErrorIs(t, repo.Update(ctx, testutil.NewTestTask("Ghost")), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "ghost"), ErrNotFound)
}

func TestTaskRepo_Delete(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Quiz prep")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_CreateRejectsInvalidPriority(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	task := testutil.NewTestTask("Bad", testutil.WithPriority("urgent"))
	assert.Error(t, repo.Create(context.Background(), task))
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}
