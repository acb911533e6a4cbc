package contract

import (
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/importer"
	"github.com/alexanderramin/studyflow/internal/scheduler"
)

// The view types below are the JSON shapes served over HTTP. Dates are
// YYYY-MM-DD strings and missing values are null.

type TaskView struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Deadline       *string  `json:"deadline"`
	Priority       string   `json:"priority"`
	EstimatedHours *float64 `json:"estimated_hours"`
	Status         string   `json:"status"`
	Course         string   `json:"course"`
	PlannedDate    *string  `json:"planned_date"`
	SourceText     string   `json:"source_text"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func NewTaskView(t *domain.Task) TaskView {
	return TaskView{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Deadline:       dateString(t.Deadline),
		Priority:       string(t.Priority),
		EstimatedHours: t.EstimatedHours,
		Status:         string(t.Status),
		Course:         t.Course,
		PlannedDate:    dateString(t.PlannedDate),
		SourceText:     t.SourceText,
		CreatedAt:      t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func NewTaskViews(tasks []*domain.Task) []TaskView {
	out := make([]TaskView, len(tasks))
	for i, t := range tasks {
		out[i] = NewTaskView(t)
	}
	return out
}

type DraftView struct {
	Title          string  `json:"title"`
	Deadline       *string `json:"deadline"`
	Priority       string  `json:"priority"`
	EstimatedHours float64 `json:"estimated_hours"`
	Course         *string `json:"course"`
	SourceText     string  `json:"source_text"`
}

func NewDraftViews(drafts []importer.ParsedTask) []DraftView {
	out := make([]DraftView, len(drafts))
	for i, d := range drafts {
		out[i] = DraftView{
			Title:          d.Title,
			Deadline:       dateString(d.Deadline),
			Priority:       string(d.Priority),
			EstimatedHours: d.EstimatedHours,
			Course:         d.Course,
			SourceText:     d.SourceText,
		}
	}
	return out
}

type DayPlanView struct {
	Date       string     `json:"date"`
	Label      string     `json:"label"`
	Tasks      []TaskView `json:"tasks"`
	TotalHours float64    `json:"total_hours"`
	MaxHours   float64    `json:"max_hours"`
	Overloaded bool       `json:"overloaded"`
}

type PlanView struct {
	GeneratedAt    string        `json:"generated_at"`
	RequestedMode  string        `json:"requested_mode"`
	Mode           string        `json:"mode"`
	ModeSource     string        `json:"mode_source"`
	HoursPerDay    float64       `json:"hours_per_day"`
	ScheduledCount int           `json:"scheduled_count"`
	ScheduledHours float64       `json:"scheduled_hours"`
	OverloadedDays int           `json:"overloaded_days"`
	Days           []DayPlanView `json:"days"`
}

func NewPlanView(resp *PlanResponse) PlanView {
	v := PlanView{
		GeneratedAt:    resp.GeneratedAt.UTC().Format(time.RFC3339),
		RequestedMode:  string(resp.RequestedMode),
		Mode:           string(resp.Mode),
		ModeSource:     resp.ModeSource,
		HoursPerDay:    resp.HoursPerDay,
		ScheduledCount: resp.ScheduledCount,
		ScheduledHours: resp.ScheduledHours,
		OverloadedDays: resp.OverloadedDays,
		Days:           make([]DayPlanView, len(resp.Days)),
	}
	for i, d := range resp.Days {
		v.Days[i] = newDayPlanView(d)
	}
	return v
}

func newDayPlanView(d scheduler.DayPlan) DayPlanView {
	return DayPlanView{
		Date:       d.Date,
		Label:      d.Label,
		Tasks:      NewTaskViews(d.Tasks),
		TotalHours: d.TotalHours,
		MaxHours:   d.MaxHours,
		Overloaded: d.Overloaded(),
	}
}

type WellnessView struct {
	ID         string   `json:"id"`
	Stress     float64  `json:"stress"`
	SleepHours float64  `json:"sleep_hours"`
	Energy     float64  `json:"energy"`
	Score      float64  `json:"score"`
	Level      string   `json:"level"`
	Mode       string   `json:"mode"`
	Note       string   `json:"note"`
	Tips       []string `json:"tips,omitempty"`
	CreatedAt  string   `json:"created_at"`
}

func NewWellnessView(l *domain.WellnessLog, tips []string) WellnessView {
	return WellnessView{
		ID:         l.ID,
		Stress:     l.Stress,
		SleepHours: l.SleepHours,
		Energy:     l.Energy,
		Score:      l.Score,
		Level:      string(l.Level),
		Mode:       string(l.Mode),
		Note:       l.Note,
		Tips:       tips,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}
