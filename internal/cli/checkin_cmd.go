package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyflow/internal/cli/formatter"
	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// checkInValues holds form input as text until it is submitted.
type checkInValues struct {
	Stress, Sleep, Energy, Note string
}

func newCheckInCmd(app *App) *cobra.Command {
	var stress, sleep, energy float64
	var note string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's stress, sleep and energy",
		Long: "Record a wellness check-in. The score decides whether `plan --mode auto`\n" +
			"runs at full capacity or in light mode. Without flags on a terminal a form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			complete := flags.Changed("stress") && flags.Changed("sleep") && flags.Changed("energy")

			if !complete {
				if !app.interactive() {
					return fmt.Errorf("--stress, --sleep and --energy are required when not running in a terminal")
				}
				vals := checkInValues{
					Stress: flagText(cmd, "stress", stress),
					Sleep:  flagText(cmd, "sleep", sleep),
					Energy: flagText(cmd, "energy", energy),
					Note:   note,
				}
				if err := checkInForm(&vals).Run(); err != nil {
					return err
				}
				var err error
				if stress, sleep, energy, err = vals.parse(); err != nil {
					return err
				}
				note = vals.Note
			}

			now := app.now()
			req := contract.NewCheckInRequest(stress, sleep, energy)
			req.Note = note
			req.Now = &now

			resp, err := app.Wellness.CheckIn(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckIn(resp))
			return nil
		},
	}

	cmd.Flags().Float64Var(&stress, "stress", 0, "Stress level, 0-10")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "Hours slept last night")
	cmd.Flags().Float64Var(&energy, "energy", 0, "Energy level, 0-10")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")

	return cmd
}

func flagText(cmd *cobra.Command, name string, v float64) string {
	if !cmd.Flags().Changed(name) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func checkInForm(v *checkInValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Stress").
				Description("0 is calm, 10 is overwhelmed").
				Value(&v.Stress).
				Validate(rangeValidator(0, 10)),
			huh.NewInput().
				Title("Sleep").
				Description("Hours slept last night").
				Value(&v.Sleep).
				Validate(rangeValidator(0, 24)),
			huh.NewInput().
				Title("Energy").
				Description("0 is drained, 10 is fully charged").
				Value(&v.Energy).
				Validate(rangeValidator(0, 10)),
			huh.NewInput().
				Title("Note").
				Description("Optional").
				Value(&v.Note),
		),
	).WithTheme(studyflowHuhTheme()).WithShowHelp(false)
}

// rangeValidator accepts a number within [lo, hi].
func rangeValidator(lo, hi float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if f < lo || f > hi {
			return fmt.Errorf("must be between %g and %g", lo, hi)
		}
		return nil
	}
}

func (v checkInValues) parse() (stress, sleep, energy float64, err error) {
	fields := []struct {
		name string
		text string
		dst  *float64
	}{
		{"stress", v.Stress, &stress},
		{"sleep", v.Sleep, &sleep},
		{"energy", v.Energy, &energy},
	}
	for _, f := range fields {
		if *f.dst, err = strconv.ParseFloat(strings.TrimSpace(f.text), 64); err != nil {
			return 0, 0, 0, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return stress, sleep, energy, nil
}
