package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/importer"
	"github.com/alexanderramin/studyflow/internal/scheduler"
	"github.com/alexanderramin/studyflow/internal/tutor"
	"github.com/alexanderramin/studyflow/internal/wellness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(h float64) *float64 { return &h }

func TestFormatTasks(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "0123456789abcdef", Title: "Lab report", Priority: domain.PriorityHigh, Status: domain.TaskPending,
			Deadline: date(2025, 3, 13), EstimatedHours: hours(4)},
		{ID: "fedcba9876543210", Title: "Reading", Priority: domain.PriorityLow, Status: domain.TaskCompleted,
			PlannedDate: date(2025, 3, 14)},
	}
	out := stripANSI(FormatTasks(tasks, testNow))

	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "Lab report")
	assert.Contains(t, out, "● HIGH")
	assert.Contains(t, out, "Mar 13 (Tomorrow)")
	assert.Contains(t, out, "4h")
	assert.Contains(t, out, "2025-03-14")
	assert.Contains(t, out, "✔ Done")
}

func TestFormatTasks_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatTasks(nil, testNow)), "No tasks")
}

func TestFormatDrafts(t *testing.T) {
	course := "BIO 101"
	drafts := []importer.ParsedTask{
		{Title: "Essay", Priority: domain.PriorityMedium, EstimatedHours: 4, Deadline: date(2025, 3, 20), Course: &course},
		{Title: "Bonus problems", Priority: domain.PriorityLow, EstimatedHours: 2},
	}
	out := stripANSI(FormatDrafts(drafts, true, testNow))

	assert.Contains(t, out, "PARSED 2 TASK(S) · DRY RUN, NOTHING SAVED")
	assert.Contains(t, out, "BIO 101")
	assert.Contains(t, out, "Mar 20 (In 8d)")
	assert.Contains(t, out, "Bonus problems")

	assert.Contains(t, stripANSI(FormatDrafts(nil, false, testNow)), "Nothing to import")
}

func TestFormatPlan(t *testing.T) {
	essay := &domain.Task{Title: "Essay", Priority: domain.PriorityHigh, EstimatedHours: hours(5)}
	days := scheduler.BuildDays(testNow, 4)
	days[0].Tasks = []*domain.Task{essay}
	days[0].TotalHours = 5

	out := stripANSI(FormatPlan(&contract.PlanResponse{
		Mode:           domain.ModeNormal,
		ModeSource:     "requested",
		HoursPerDay:    4,
		Days:           days,
		ScheduledCount: 1,
		ScheduledHours: 5,
		OverloadedDays: 1,
	}))

	assert.Contains(t, out, "NORMAL MODE")
	assert.Contains(t, out, "Mode source: requested · 4h per day")
	assert.Contains(t, out, "Today  2025-03-12")
	assert.Contains(t, out, "125%")
	assert.Contains(t, out, "over capacity")
	assert.Contains(t, out, "Essay (5h)")
	assert.Contains(t, out, "Free")
	assert.Contains(t, out, "Scheduled: 1 task(s), 5h")
	assert.Contains(t, out, "1 overloaded day(s)")
	assert.Equal(t, 7, strings.Count(out, "2025-03-1"))
}

func TestFormatCheckIn(t *testing.T) {
	in := wellness.Input{Stress: 8, SleepHours: 5, Energy: 3}
	res := wellness.Calculate(in)
	out := stripANSI(FormatCheckIn(&contract.CheckInResponse{
		Log:    &domain.WellnessLog{Stress: 8, SleepHours: 5, Energy: 3, Score: res.Score, Level: res.Level, Mode: res.Mode},
		Result: res,
	}))

	assert.Contains(t, out, "WELLNESS CHECK-IN")
	assert.Contains(t, out, "stress 8 · sleep 5h · energy 3")
	assert.Contains(t, out, "LIGHT MODE")
	for _, tip := range res.Tips {
		assert.Contains(t, out, tip)
	}
}

func TestFormatWellnessHistory(t *testing.T) {
	logs := []*domain.WellnessLog{
		{Score: 8.2, Level: domain.LevelGood, Mode: domain.ModeNormal, Note: "rested", CreatedAt: testNow},
		{Score: 3.1, Level: domain.LevelLow, Mode: domain.ModeLight, CreatedAt: testNow.Add(-24 * time.Hour)},
	}
	out := stripANSI(FormatWellnessHistory(logs))
	assert.Contains(t, out, "8.2")
	assert.Contains(t, out, "● GOOD")
	assert.Contains(t, out, "rested")
	assert.Contains(t, out, "light")

	assert.Contains(t, stripANSI(FormatWellnessHistory(nil)), "No check-ins yet")
}

func TestFormatTutor(t *testing.T) {
	out, err := tutor.NewEngine(nil).Generate(tutor.NewRequest("photosynthesis"), testNow)
	require.NoError(t, err)

	withAnswers := stripANSI(FormatTutor(out, true))
	assert.Contains(t, withAnswers, "Photosynthesis  EXPLAIN  high confidence")
	assert.Contains(t, withAnswers, "KEY POINTS")
	assert.Contains(t, withAnswers, "Q1.")
	assert.Contains(t, withAnswers, " 12m Concept Warm-up")
	assert.NotContains(t, withAnswers, "FROM YOUR PLANNER")
	for _, p := range out.FollowUpPrompts {
		assert.Contains(t, withAnswers, p)
	}
	assert.Equal(t, stripANSI(FormatTutor(out, false)), withAnswers, "answers differ only by color")
}
