package contract

import (
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/importer"
)

// maxParseBytes caps pasted assignment text.
const maxParseBytes = 64 << 10

type CreateTaskRequest struct {
	Title       string
	Description string
	Deadline    string // YYYY-MM-DD, optional
	Priority    domain.Priority
	Hours       *float64
	Course      string
}

func NewCreateTaskRequest(title string) CreateTaskRequest {
	return CreateTaskRequest{Title: title, Priority: domain.PriorityMedium}
}

func (r CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return invalid("title", "must not be empty")
	}
	if !domain.ValidPriorities[string(r.Priority)] {
		return invalid("priority", "%q is not one of high, medium, low", r.Priority)
	}
	if r.Deadline != "" {
		if _, err := domain.ParseDate(r.Deadline, time.UTC); err != nil {
			return invalid("deadline", "%v", err)
		}
	}
	if r.Hours != nil && *r.Hours < 0 {
		return invalid("hours", "must not be negative")
	}
	return nil
}

type ParseRequest struct {
	Text   string
	DryRun bool
	Now    *time.Time
}

func NewParseRequest(text string) ParseRequest {
	return ParseRequest{Text: text}
}

func (r ParseRequest) Validate() error {
	if len(r.Text) > maxParseBytes {
		return invalid("text", "exceeds %d bytes", maxParseBytes)
	}
	return nil
}

type ImportResponse struct {
	Drafts []importer.ParsedTask
	// Tasks is empty on a dry run.
	Tasks  []*domain.Task
	DryRun bool
}
