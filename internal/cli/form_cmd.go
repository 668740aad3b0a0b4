package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/hoikuplan/internal/cli/formatter"
	"github.com/alexanderramin/hoikuplan/internal/domain"
)

func newFormCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Save and load per-user form snapshots",
	}

	cmd.AddCommand(
		newFormSaveCmd(app),
		newFormLoadCmd(app),
		newFormHistoryCmd(app),
	)

	return cmd
}

// formFlags are the flags that name one user's form.
type formFlags struct {
	user string
	doc  string
}

func (f *formFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.user, "user", "", "user id")
	fs.StringVar(&f.doc, "doc", "monthly", "document kind (annual|monthly|weekly)")
	_ = cobra.MarkFlagRequired(fs, "user")
}

func (f *formFlags) kind() (domain.DocumentKind, error) {
	return domain.ParseDocumentKind(f.doc)
}

func newFormSaveCmd(app *App) *cobra.Command {
	var ff formFlags
	var valuesPath string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save field values as the user's current form",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ff.kind()
			if err != nil {
				return err
			}
			values, err := readValues(cmd, valuesPath)
			if err != nil {
				return err
			}
			snap, err := app.Forms.Save(cmd.Context(), ff.user, doc, values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(
				fmt.Sprintf("Saved %s for %s (%s)", doc.Label(), ff.user, snap.ID[:min(8, len(snap.ID))])))
			return nil
		},
	}

	ff.register(cmd.Flags())
	cmd.Flags().StringVar(&valuesPath, "values", "", "field values as JSON (- for stdin)")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func newFormLoadCmd(app *App) *cobra.Command {
	var ff formFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Show the user's current form",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ff.kind()
			if err != nil {
				return err
			}
			values, err := app.Forms.Load(cmd.Context(), ff.user, doc)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(values)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.ValuesTable(values))
			return nil
		},
	}

	ff.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the values as JSON")

	return cmd
}

func newFormHistoryCmd(app *App) *cobra.Command {
	var ff formFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the user's saved snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ff.kind()
			if err != nil {
				return err
			}
			snaps, err := app.Forms.History(cmd.Context(), ff.user, doc, limit)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No snapshots found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.SnapshotTable(snaps))
			return nil
		},
	}

	ff.register(cmd.Flags())
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum snapshots to list")

	return cmd
}
