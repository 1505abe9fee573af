package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/vitalog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Summarize the trailing week of check-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.interactive() && !asJSON {
				stop = formatter.StartSpinner("summarizing the week...")
			}

			report, err := app.Review.Weekly(context.Background())
			stop()
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReview(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Machine-readable output")

	return cmd
}
