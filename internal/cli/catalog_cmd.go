package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/cli/formatter"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the canned phrase catalog",
	}

	cmd.AddCommand(
		newCatalogAgesCmd(app),
		newCatalogShowCmd(app),
	)

	return cmd
}

func newCatalogAgesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ages",
		Short: "List age groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			ages := app.Catalog.AgeGroups()
			if len(ages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No age groups found.")
				return nil
			}

			rows := make([][]string, 0, len(ages))
			for _, age := range ages {
				rows = append(rows, []string{age, fmt.Sprintf("%d", len(app.Catalog.Labels(age)))})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"Age group", "Items"}, rows))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show AGE [LABEL]",
		Short: "Show the items of an age group, or the phrases of one item",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			age := args[0]

			if len(args) == 1 {
				labels := app.Catalog.Labels(age)
				if len(labels) == 0 {
					return fmt.Errorf("unknown age group %q", age)
				}
				fmt.Fprintln(out, formatter.Header(age))
				for _, label := range labels {
					fmt.Fprintf(out, "  %s\n", label)
				}
				return nil
			}

			phrases, ok := app.Catalog.Lookup(age, args[1])
			if !ok {
				return fmt.Errorf("no phrases for %s / %s", age, args[1])
			}
			fmt.Fprintln(out, formatter.Header(age+" / "+args[1]))
			for i, p := range phrases {
				fmt.Fprintf(out, "  %d. %s\n", i+1, p)
			}
			return nil
		},
	}
}
