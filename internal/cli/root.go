package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/studyflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Import   service.ImportService
	Wellness service.WellnessService
	Plan     service.PlanService
	Tutor    service.TutorService

	// Serve runs the HTTP API on addr until ctx is cancelled. An empty addr
	// means the configured one.
	Serve func(ctx context.Context, addr string) error

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Now is the clock for every command. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studyflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyflow",
		Short:         "Study planner with wellness-aware scheduling and a built-in tutor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTaskCmd(app),
		newImportCmd(app),
		newPlanCmd(app),
		newCheckInCmd(app),
		newWellnessCmd(app),
		newTutorCmd(app),
		newServeCmd(app),
	)

	return root
}
