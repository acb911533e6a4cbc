package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyflow/internal/cli/formatter"
	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/tutor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTutorCmd(app *App) *cobra.Command {
	var mode string
	var noPlanner, interactive bool

	cmd := &cobra.Command{
		Use:   "tutor PROMPT...",
		Short: "Generate study notes, flashcards and a quiz for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive && !app.interactive() {
				return fmt.Errorf("--interactive needs a terminal")
			}

			now := app.now()
			req := contract.NewTutorRequest(strings.Join(args, " "))
			req.Mode = tutor.Mode(mode)
			req.IncludePlannerContext = !noPlanner
			req.Now = &now

			out, err := app.Tutor.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTutor(out, !interactive))

			if !interactive || len(out.Quiz) == 0 {
				return nil
			}
			p := tea.NewProgram(newQuizModel(out.Topic, out.Quiz),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().Var(newEnumValue(&mode, string(tutor.ModeExplain),
		string(tutor.ModeExplain), string(tutor.ModeFlashcards), string(tutor.ModeQuiz), string(tutor.ModeExamPrep)),
		"mode", "Content balance")
	cmd.Flags().BoolVar(&noPlanner, "no-planner", false, "Do not relate the topic to planner tasks")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Take the quiz in the terminal")

	return cmd
}
