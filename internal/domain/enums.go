package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"high": true, "medium": true, "low": true,
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "in_progress": true, "completed": true,
}

// WellnessMode constrains how much the planner schedules on a given day.
type WellnessMode string

const (
	ModeNormal WellnessMode = "normal"
	ModeLight  WellnessMode = "light"
)

type WellnessLevel string

const (
	LevelGood   WellnessLevel = "good"
	LevelMedium WellnessLevel = "medium"
	LevelLow    WellnessLevel = "low"
)
