package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/layout"
	"github.com/alexanderramin/hoikuplan/internal/specfile"
)

func newSpecCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Create and inspect document spec files",
	}

	cmd.AddCommand(
		newSpecInitCmd(app),
		newSpecKeysCmd(app),
	)

	return cmd
}

func newSpecInitCmd(app *App) *cobra.Command {
	var kind, age, period, output string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a spec file with the defaults of a document kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := domain.ParseDocumentKind(kind)
			if err != nil {
				return err
			}
			start, err := specfile.ParsePeriod(k, period)
			if err != nil {
				return err
			}
			if app.Catalog != nil && age != "" && len(app.Catalog.Labels(age)) == 0 {
				loggerFromContext(cmd.Context()).Warn("age group has no catalog phrases", "age", age)
			}
			spec, err := specfile.Default(k, age, start)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return specfile.Encode(cmd.OutOrStdout(), spec)
			}

			flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
			if force {
				flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}
			f, err := os.OpenFile(output, flags, 0o644)
			if err != nil {
				return err
			}
			if err := specfile.Encode(f, spec); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s spec to %s\n", k.Label(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "monthly", "document kind (annual|monthly|weekly)")
	cmd.Flags().StringVar(&age, "age", "", "age group, e.g. 1歳児")
	cmd.Flags().StringVar(&period, "period", "", "period start (YYYY-MM-DD, YYYY-MM or YYYY)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func newSpecKeysCmd(app *App) *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the field keys a spec's form accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := specfile.Load(specPath)
			if err != nil {
				return err
			}
			keys, err := layout.FieldKeys(spec)
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "spec file (TOML)")
	_ = cmd.MarkFlagRequired("spec")

	return cmd
}
