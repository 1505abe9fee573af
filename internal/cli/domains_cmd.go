package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/cli/formatter"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/spf13/cobra"
)

func newDomainsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List the health domains and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(domain.AllDomains()))
			for _, d := range domain.AllDomains() {
				schema, err := domain.SchemaFor(d)
				if err != nil {
					return err
				}
				required := 0
				for _, f := range schema.Fields {
					if f.Required {
						required++
					}
				}
				rows = append(rows, []string{
					string(d),
					d.Title(),
					fmt.Sprintf("%d fields (%d required)", len(schema.Fields), required),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderTable([]string{"Name", "Domain", "Schema"}, rows))
			return nil
		},
	}
}

func domainList() string {
	names := make([]string, 0, len(domain.AllDomains()))
	for _, d := range domain.AllDomains() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
