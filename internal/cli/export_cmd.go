package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/cli/formatter"
	"github.com/alexanderramin/hoikuplan/internal/service"
	"github.com/alexanderramin/hoikuplan/internal/specfile"
)

func newExportCmd(app *App) *cobra.Command {
	var specPath, valuesPath, userID, dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a plan document as an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			spec, err := specfile.Load(specPath)
			if err != nil {
				return err
			}

			var export *service.Export
			if valuesPath == "" && userID != "" {
				export, err = app.Exports.ExportLatest(ctx, userID, spec)
			} else {
				values, verr := resolveValues(cmd, app, valuesPath, userID, spec.Kind)
				if verr != nil {
					return verr
				}
				if err := warnUnused(cmd, spec, values); err != nil {
					return err
				}
				export, err = app.Exports.Export(ctx, spec, values)
			}
			if err != nil {
				return err
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(dir, export.FileName)
			if err := os.WriteFile(path, export.Data, 0o644); err != nil {
				return fmt.Errorf("writing workbook: %w", err)
			}
			loggerFromContext(ctx).Debug("wrote workbook", "path", path, "bytes", len(export.Data))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote "+path))
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "spec file (TOML)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "field values as JSON (- for stdin)")
	cmd.Flags().StringVar(&userID, "user", "", "export this user's latest saved form")
	cmd.Flags().StringVarP(&dir, "output", "o", ".", "output directory")
	_ = cmd.MarkFlagRequired("spec")
	cmd.MarkFlagsMutuallyExclusive("values", "user")

	return cmd
}
