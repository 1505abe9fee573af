package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/vitalog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the Workday Health Index and per-domain risk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.Status.Overview(context.Background())
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, overview)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverview(overview))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Machine-readable output")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
