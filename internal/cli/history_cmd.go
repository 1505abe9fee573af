package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/vitalog/internal/cli/formatter"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/scoring"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var days int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history <domain>",
		Short: "List past check-ins for a domain with their scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseDomain(args[0])
			if err != nil {
				return err
			}

			records, err := app.Checkins.History(context.Background(), d, days)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, records)
			}

			// Scores are derived, never stored; recompute per record.
			scorer := scoring.NewScorer()
			results := make([]domain.ScoreResult, len(records))
			for i, rec := range records {
				res, err := scorer.Score(d, rec)
				if err != nil {
					return fmt.Errorf("scoring record %s: %w", rec.ID, err)
				}
				results[i] = res
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(d, records, results))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Only show the last N days (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Machine-readable output")

	return cmd
}
