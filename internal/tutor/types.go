package tutor

import (
	"errors"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
)

// ErrEmptyPrompt is returned when the prompt is blank after trimming.
var ErrEmptyPrompt = errors.New("tutor prompt is empty")

// Mode selects how the generated content is balanced.
type Mode string

const (
	ModeExplain    Mode = "explain"
	ModeFlashcards Mode = "flashcards"
	ModeQuiz       Mode = "quiz"
	ModeExamPrep   Mode = "exam_prep"
)

// ParseMode maps a string to a Mode, falling back to ModeExplain.
func ParseMode(s string) Mode {
	switch m := Mode(s); m {
	case ModeExplain, ModeFlashcards, ModeQuiz, ModeExamPrep:
		return m
	default:
		return ModeExplain
	}
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// Request is the input to Engine.Generate. Use NewRequest for defaults.
type Request struct {
	Prompt                string
	Mode                  Mode
	IncludePlannerContext bool
	Tasks                 []*domain.Task
}

// NewRequest returns an explain-mode request with planner context enabled.
func NewRequest(prompt string) Request {
	return Request{Prompt: prompt, Mode: ModeExplain, IncludePlannerContext: true}
}

type Flashcard struct {
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back" yaml:"back"`
}

type QuizItem struct {
	Question     string   `json:"question" yaml:"question"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correctIndex" yaml:"correctIndex"`
	Rationale    string   `json:"rationale" yaml:"rationale"`
}

type StudyStep struct {
	Title        string `json:"title"`
	DurationMins int    `json:"durationMins"`
	Detail       string `json:"detail"`
}

// RelatedTask is a planner task scored for relevance to the topic.
type RelatedTask struct {
	TaskID string `json:"taskId"`
	Title  string `json:"title"`
	Score  int    `json:"score"`
}

type Output struct {
	Topic           string        `json:"topic"`
	Mode            Mode          `json:"mode"`
	Summary         string        `json:"summary"`
	Explanation     []string      `json:"explanation"`
	KeyPoints       []string      `json:"keyPoints"`
	Flashcards      []Flashcard   `json:"flashcards"`
	Quiz            []QuizItem    `json:"quiz"`
	StudyPlan       []StudyStep   `json:"studyPlan"`
	FollowUpPrompts []string      `json:"followUpPrompts"`
	ContextSignals  []string      `json:"contextSignals"`
	RelatedTasks    []RelatedTask `json:"relatedTasks"`
	Confidence      Confidence    `json:"confidence"`
	GeneratedAt     time.Time     `json:"generatedAt"`
}
