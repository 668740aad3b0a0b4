package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/cli/formatter"
	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/layout"
	"github.com/alexanderramin/hoikuplan/internal/specfile"
)

func newPreviewCmd(app *App) *cobra.Command {
	var specPath, valuesPath, userID string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a plan document in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := specfile.Load(specPath)
			if err != nil {
				return err
			}
			values, err := resolveValues(cmd, app, valuesPath, userID, spec.Kind)
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			plan, err := layout.Render(spec, values)
			if err != nil {
				return err
			}
			p.done("rendered plan", "kind", spec.Kind, "cells", len(plan.Cells))

			filled, total, err := completion(spec, values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(plan.Title))
			fmt.Fprintf(out, "  Filled: %s\n\n", formatter.Completion(filled, total))
			fmt.Fprint(out, formatter.PlanBody(plan))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.PlanBlocks(plan))

			return warnUnused(cmd, spec, values)
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "spec file (TOML)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "field values as JSON (- for stdin)")
	cmd.Flags().StringVar(&userID, "user", "", "use this user's latest saved form")
	_ = cmd.MarkFlagRequired("spec")
	cmd.MarkFlagsMutuallyExclusive("values", "user")

	return cmd
}

// completion counts the form fields of spec that have a non-blank value.
func completion(spec domain.DocumentSpec, values domain.FieldValues) (filled, total int, err error) {
	keys, err := layout.FieldKeys(spec)
	if err != nil {
		return 0, 0, err
	}
	for _, k := range keys {
		if strings.TrimSpace(values.Get(k.Item, k.Period)) != "" {
			filled++
		}
	}
	return filled, len(keys), nil
}

// warnUnused prints the value keys the plan drops.
func warnUnused(cmd *cobra.Command, spec domain.DocumentSpec, values domain.FieldValues) error {
	unused, err := layout.UnusedKeys(spec, values)
	if err != nil {
		return err
	}
	if len(unused) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Warning(
			fmt.Sprintf("%d value(s) not on this form: %s", len(unused), strings.Join(unused, ", "))))
	}
	return nil
}
