package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/vitalog/internal/cli/formatter"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/spf13/cobra"
)

func newAdviseCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "advise [domain]",
		Short: "Get recommendations for one domain, or overall without an argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stop := func() {}
			if app.interactive() && !asJSON {
				stop = formatter.StartSpinner("thinking...")
			}

			if len(args) == 1 {
				d, err := domain.ParseDomain(args[0])
				if err != nil {
					stop()
					return err
				}
				adv, err := app.Advice.ForDomain(ctx, d)
				stop()
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd, adv)
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAdvice(adv))
				return nil
			}

			global, err := app.Advice.Global(ctx)
			stop()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, global)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGlobalAdvice(global))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Machine-readable output")

	return cmd
}
