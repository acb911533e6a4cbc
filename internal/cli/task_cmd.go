package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/cli/formatter"
	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage study tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskPinCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var desc, deadline, priority, course string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewCreateTaskRequest(strings.Join(args, " "))
			req.Description = desc
			req.Deadline = deadline
			req.Priority = domain.Priority(priority)
			req.Course = course
			if cmd.Flags().Changed("hours") {
				req.Hours = &hours
			}

			t, err := app.Tasks.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskLine("Added", t))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Longer description")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Var(newEnumValue(&priority, string(domain.PriorityMedium), "high", "medium", "low"), "priority", "Task priority")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours of work")
	cmd.Flags().StringVar(&course, "course", "", "Course the task belongs to")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.MarkDone(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskLine("Completed", t))
			return nil
		},
	}
}

func newTaskPinCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "pin ID [DATE]",
		Short: "Pin a task to a day of the plan, or clear the pin",
		Long: "Pin a task to a day so the planner schedules it there when it fits.\n" +
			"DATE is YYYY-MM-DD, today or tomorrow. Use --clear to remove the pin.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear == (len(args) == 2) {
				return fmt.Errorf("give either a DATE or --clear")
			}
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			var day *time.Time
			if !clear {
				d, err := parseDay(args[1], app.now())
				if err != nil {
					return err
				}
				day = &d
			}

			t, err := app.Tasks.Pin(cmd.Context(), id, day)
			if err != nil {
				return err
			}
			verb := "Unpinned"
			if day != nil {
				verb = "Pinned to " + day.Format(domain.DateLayout) + ":"
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskLine(verb, t))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the pin")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskLine("Removed", t))
			return nil
		},
	}
}
