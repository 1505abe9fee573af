package cli

import (
	"strings"

	"github.com/alexanderramin/vitalog/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the use cases the commands run against, plus the terminal
// detection hook injected by main.
type App struct {
	Checkins app.CheckinUseCase
	Status   app.StatusUseCase
	Advice   app.AdviceUseCase
	Review   app.ReviewUseCase

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and spinners are only used when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "vitalog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "vitalog",
		Short: "Workday health check-ins, risk scores, and advice",
	}

	// Accept underscore spellings of flag names, matching the underscore
	// style of domain names and config keys.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newLogCmd(app),
		newStatusCmd(app),
		newAdviseCmd(app),
		newHistoryCmd(app),
		newReviewCmd(app),
		newDomainsCmd(app),
		newDashboardCmd(app),
	)

	return root
}
