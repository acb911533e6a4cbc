package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/studyflow/internal/cli/formatter"
	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Turn pasted assignment text into tasks",
		Long: "Parse assignment text, one task per line, from FILE or stdin.\n" +
			"A .json FILE is read as a structured task export instead.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 && strings.EqualFold(filepath.Ext(args[0]), ".json") {
				if dryRun {
					return fmt.Errorf("--dry-run applies to text input only")
				}
				tasks, err := app.Import.ImportFile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Imported %d task(s) from %s\n", len(tasks), args[0])
				fmt.Fprint(out, formatter.FormatTasks(tasks, app.now()))
				return nil
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			now := app.now()
			req := contract.NewParseRequest(text)
			req.DryRun = dryRun
			req.Now = &now

			resp, err := app.Import.Import(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatDrafts(resp.Drafts, resp.DryRun, now))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be imported without saving")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
