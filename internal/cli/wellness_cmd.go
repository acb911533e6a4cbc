package cli

import (
	"fmt"

	"github.com/alexanderramin/studyflow/internal/cli/formatter"
	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/spf13/cobra"
)

func newWellnessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wellness",
		Short: "Review wellness check-ins",
	}
	cmd.AddCommand(newWellnessHistoryCmd(app))
	return cmd
}

func newWellnessHistoryCmd(app *App) *cobra.Command {
	req := contract.NewHistoryRequest()

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent check-ins, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Wellness.History(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWellnessHistory(logs))
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Limit, "limit", req.Limit, "Number of check-ins to show")

	return cmd
}
