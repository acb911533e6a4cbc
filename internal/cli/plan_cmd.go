package cli

import (
	"fmt"

	"github.com/alexanderramin/studyflow/internal/cli/formatter"
	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var mode string
	var hours float64

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the seven-day study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			req := contract.NewPlanRequest()
			req.Mode = contract.PlanMode(mode)
			req.HoursPerDay = hours
			req.Now = &now

			resp, err := app.Plan.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().Var(newEnumValue(&mode, string(contract.PlanModeAuto), "auto", "normal", "light"), "mode",
		"Planning mode; auto follows the latest check-in")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Study hours per day (default from config)")

	return cmd
}
