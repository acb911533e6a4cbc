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

func TestWellnessRepo_Latest_Empty(t *testing.T) {
	repo := NewSQLiteWellnessRepo(testutil.NewTestDB(t))

	_, err := repo.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWellnessRepo_CreateAndLatest(t *testing.T) {
	repo := NewSQLiteWellnessRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

	older := testutil.NewTestWellnessLog(6.2, domain.ModeNormal, testutil.WithCreatedAt(base))
	newer := testutil.NewTestWellnessLog(2.1, domain.ModeLight,
		testutil.WithCreatedAt(base.Add(500*time.Millisecond)),
		testutil.WithNote("exam week"))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestWellnessRepo_ListRecent(t *testing.T) {
	repo := NewSQLiteWellnessRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		l := testutil.NewTestWellnessLog(float64(i), domain.ModeNormal, testutil.WithCreatedAt(base.AddDate(0, 0, i)))
		require.NoError(t, repo.Create(ctx, l))
	}

	logs, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, []float64{4, 3, 2}, []float64{logs[0].Score, logs[1].Score, logs[2].Score})
}
