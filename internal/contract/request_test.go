package contract

import (
	"testing"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/importer"
	"github.com/alexanderramin/studyflow/internal/scheduler"
	"github.com/alexanderramin/studyflow/internal/tutor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- constructor defaults ---

func TestNewPlanRequest_SetsDefaults(t *testing.T) {
	req := NewPlanRequest()

	assert.Equal(t, PlanModeAuto, req.Mode)
	assert.Zero(t, req.HoursPerDay)
	assert.Nil(t, req.Now)
	assert.NoError(t, req.Validate())
}

func TestNewTutorRequest_SetsDefaults(t *testing.T) {
	req := NewTutorRequest("mitosis")

	assert.Equal(t, tutor.ModeExplain, req.Mode)
	assert.True(t, req.IncludePlannerContext)
	assert.NoError(t, req.Validate())
}

func TestNewCreateTaskRequest_DefaultsToMedium(t *testing.T) {
	req := NewCreateTaskRequest("Essay")
	assert.Equal(t, domain.PriorityMedium, req.Priority)
	assert.NoError(t, req.Validate())
}

func TestNewHistoryRequest_SetsDefaults(t *testing.T) {
	assert.Equal(t, 14, NewHistoryRequest().Limit)
}

// --- validation ---

func TestValidate_ReturnsInvalidRequest(t *testing.T) {
	hours := -1.0
	cases := map[string]error{
		"plan mode":       PlanRequest{Mode: "turbo"}.Validate(),
		"plan hours":      PlanRequest{Mode: PlanModeNormal, HoursPerDay: 25}.Validate(),
		"stress":          NewCheckInRequest(11, 7, 5).Validate(),
		"energy":          NewCheckInRequest(5, 7, -1).Validate(),
		"sleep":           NewCheckInRequest(5, 30, 5).Validate(),
		"history limit":   HistoryRequest{}.Validate(),
		"blank title":     NewCreateTaskRequest("  ").Validate(),
		"bad deadline":    CreateTaskRequest{Title: "x", Priority: domain.PriorityLow, Deadline: "03/15"}.Validate(),
		"bad priority":    CreateTaskRequest{Title: "x", Priority: "urgent"}.Validate(),
		"negative hours":  CreateTaskRequest{Title: "x", Priority: domain.PriorityLow, Hours: &hours}.Validate(),
		"blank prompt":    NewTutorRequest(" \n ").Validate(),
		"oversized paste": NewParseRequest(string(make([]byte, maxParseBytes+1))).Validate(),
	}
	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestValidationError_NamesField(t *testing.T) {
	err := NewCheckInRequest(12, 7, 5).Validate()

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "stress", ve.Field)
	assert.Contains(t, err.Error(), "invalid stress")
}

func TestCheckInRequest_BoundsAreInclusive(t *testing.T) {
	assert.NoError(t, NewCheckInRequest(0, 0, 0).Validate())
	assert.NoError(t, NewCheckInRequest(10, 24, 10).Validate())
}

// --- views ---

func TestNewTaskView_FormatsDates(t *testing.T) {
	deadline := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{ID: "t1", Title: "Essay", Deadline: &deadline, Priority: domain.PriorityHigh, Status: domain.TaskPending}

	v := NewTaskView(task)
	require.NotNil(t, v.Deadline)
	assert.Equal(t, "2025-03-15", *v.Deadline)
	assert.Nil(t, v.PlannedDate)
	assert.Nil(t, v.EstimatedHours)
}

func TestNewDraftViews(t *testing.T) {
	drafts := importer.ParseAssignmentText("Read chapter 4", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	views := NewDraftViews(drafts)

	require.Len(t, views, 1)
	assert.Equal(t, "Read chapter 4", views[0].Title)
	assert.Nil(t, views[0].Deadline)
	assert.Equal(t, 1.0, views[0].EstimatedHours)
}

func TestNewPlanView_FlagsOverloadedDays(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	hours := 10.0
	plan := scheduler.GeneratePlan([]*domain.Task{{ID: "big", Title: "Big", EstimatedHours: &hours, Status: domain.TaskPending, Priority: domain.PriorityMedium}},
		domain.ModeNormal, 6, now)

	v := NewPlanView(&PlanResponse{GeneratedAt: now, Mode: plan.Mode, Days: plan.Days})
	require.Len(t, v.Days, scheduler.HorizonDays)
	assert.True(t, v.Days[0].Overloaded)
	assert.False(t, v.Days[1].Overloaded)
	assert.Equal(t, "Today", v.Days[0].Label)
}
