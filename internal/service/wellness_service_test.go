package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWellnessService_CheckIn_PersistsResult(t *testing.T) {
	r := setupRepos(t)
	svc := NewWellnessService(r.wellness)
	ctx := context.Background()

	req := contract.NewCheckInRequest(10, 0, 0)
	req.Note = "  rough night  "
	req.Now = at(testNow)
	resp, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Result.Score)
	assert.Equal(t, domain.ModeLight, resp.Result.Mode)
	assert.NotEmpty(t, resp.Result.Tips)
	assert.Equal(t, "rough night", resp.Log.Note)

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.Log.ID, latest.ID)
	assert.Equal(t, domain.LevelLow, latest.Level)
	assert.Equal(t, testNow, latest.CreatedAt)
}

func TestWellnessService_CheckIn_RejectsOutOfRange(t *testing.T) {
	r := setupRepos(t)
	svc := NewWellnessService(r.wellness)

	_, err := svc.CheckIn(context.Background(), contract.NewCheckInRequest(11, 7, 5))
	assert.ErrorIs(t, err, contract.ErrInvalidRequest)

	_, err = svc.Latest(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound, "nothing should be stored")
}

func TestWellnessService_History(t *testing.T) {
	r := setupRepos(t)
	svc := NewWellnessService(r.wellness)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		req := contract.NewCheckInRequest(float64(i), 8, 8)
		req.Now = at(testNow.Add(time.Duration(i) * time.Hour))
		_, err := svc.CheckIn(ctx, req)
		require.NoError(t, err)
	}

	logs, err := svc.History(ctx, contract.HistoryRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 3.0, logs[0].Stress)
	assert.Equal(t, 2.0, logs[1].Stress)

	_, err = svc.History(ctx, contract.HistoryRequest{})
	assert.ErrorIs(t, err, contract.ErrInvalidRequest)
}
