package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/vitalog/internal/cli/formatter"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var jsonFields string

	cmd := &cobra.Command{
		Use:   "log [domain]",
		Short: "Record a daily check-in",
		Long: "Record a structured check-in for one health domain. On a terminal the\n" +
			"fields are collected interactively; otherwise pass them with --json.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDomain(app, args)
			if err != nil {
				return err
			}

			fields, err := collectFields(app, d, jsonFields)
			if err != nil {
				return err
			}

			result, err := app.Checkins.Submit(context.Background(), d, fields)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckinResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonFields, "json", "", "Field values as a JSON object")

	return cmd
}

func collectFields(app *App, d domain.Domain, jsonFields string) (map[string]any, error) {
	if jsonFields != "" {
		var fields map[string]any
		if err := json.Unmarshal([]byte(jsonFields), &fields); err != nil {
			return nil, fmt.Errorf("parsing --json: %w", err)
		}
		return fields, nil
	}

	if !app.interactive() {
		return nil, fmt.Errorf("stdin is not a terminal; pass the fields with --json")
	}

	schema, err := domain.SchemaFor(d)
	if err != nil {
		return nil, err
	}
	return buildCheckinForm(schema).Run()
}

// resolveDomain takes the domain from the positional argument, or asks
// interactively when none was given.
func resolveDomain(app *App, args []string) (domain.Domain, error) {
	if len(args) == 1 {
		return domain.ParseDomain(args[0])
	}

	if !app.interactive() {
		return "", fmt.Errorf("domain argument required (one of: %s)", domainList())
	}

	options := make([]huh.Option[domain.Domain], 0, len(domain.AllDomains()))
	for _, d := range domain.AllDomains() {
		options = append(options, huh.NewOption(d.Title(), d))
	}

	var picked domain.Domain
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Domain]().
				Title("Which domain?").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(vitalogHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return picked, nil
}
