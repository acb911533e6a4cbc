package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func hours(h float64) *float64 { return &h }

func TestTaskHours_DefaultsMissingAndZero(t *testing.T) {
	cases := []struct {
		name string
		est  *float64
		want float64
	}{
		{"nil", nil, DefaultEstimatedHours},
		{"zero", hours(0), DefaultEstimatedHours},
		{"explicit", hours(4), 4},
		{"fractional", hours(0.25), 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := &Task{EstimatedHours: tc.est}
			assert.Equal(t, tc.want, task.Hours())
		})
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{Title: "Essay", Priority: PriorityMedium, Status: TaskPending}
	require.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = "   "
	assert.ErrorContains(t, noTitle.Validate(), "title")

	badPriority := valid
	badPriority.Priority = "urgent"
	assert.ErrorContains(t, badPriority.Validate(), "priority")

	badStatus := valid
	badStatus.Status = "archived"
	assert.ErrorContains(t, badStatus.Validate(), "status")

	negative := valid
	negative.EstimatedHours = hours(-1)
	assert.ErrorContains(t, negative.Validate(), "negative")
}

func TestTaskMarkDone(t *testing.T) {
	task := &Task{Status: TaskPending}
	task.MarkDone(testNow)
	assert.True(t, task.IsCompleted())
	assert.Equal(t, testNow, task.UpdatedAt)

	later := testNow.Add(time.Hour)
	task.MarkDone(later)
	assert.Equal(t, testNow, task.UpdatedAt, "completing twice should not touch UpdatedAt")
}

func TestTaskPin_TruncatesToMidnight(t *testing.T) {
	task := &Task{}
	day := time.Date(2025, 6, 17, 18, 30, 0, 0, time.UTC)
	task.Pin(&day, testNow)
	require.NotNil(t, task.PlannedDate)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), *task.PlannedDate)

	task.Pin(nil, testNow)
	assert.Nil(t, task.PlannedDate)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2025", time.UTC)
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.Add(time.Minute)))
}
