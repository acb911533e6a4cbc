package contract

import (
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/tutor"
)

const maxPromptBytes = 8 << 10

type TutorRequest struct {
	Prompt                string
	Mode                  tutor.Mode
	IncludePlannerContext bool
	Now                   *time.Time
}

func NewTutorRequest(prompt string) TutorRequest {
	return TutorRequest{Prompt: prompt, Mode: tutor.ModeExplain, IncludePlannerContext: true}
}

func (r TutorRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return invalid("prompt", "must not be empty")
	}
	if len(r.Prompt) > maxPromptBytes {
		return invalid("prompt", "exceeds %d bytes", maxPromptBytes)
	}
	return nil
}
