package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/cli/formatter"
	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/intelligence"
	"github.com/alexanderramin/hoikuplan/internal/service"
	"github.com/alexanderramin/hoikuplan/internal/specfile"
)

func newSuggestCmd(app *App) *cobra.Command {
	var age, keywords, doc, item, userID, specPath string
	var period int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Draft plan text from keywords with the local model",
		Long: `Draft plan text from keywords with the local model.

Without --user the suggestion is printed. With --user and --spec it is
written into the user's current form and saved: weekly specs fill every
day, other kinds fill the --item field of --period (0 for a summary block).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if app.Suggestions == nil {
				return errors.New("suggestions are not configured")
			}

			kind, err := domain.ParseDocumentKind(doc)
			if err != nil {
				return err
			}
			req := intelligence.Request{AgeGroup: age, Keywords: keywords, Doc: kind, Item: item}

			if app.interactive() {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Asking the model…")
				defer stop()
			}

			if userID != "" {
				if specPath == "" {
					return errors.New("--spec is required with --user")
				}
				spec, err := specfile.Load(specPath)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("doc") {
					req.Doc = spec.Kind
				}
				values, err := app.Assist.Apply(ctx, userID, spec, req, service.AssistTarget{Item: item, Period: period})
				if err != nil {
					return err
				}
				loggerFromContext(ctx).Debug("suggestion saved", "user", userID, "fields", len(values))
				fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Saved suggestion to %s's %s", userID, spec.Kind.Label())))
				return nil
			}

			if kind == domain.KindWeekly {
				week, err := app.Suggestions.GenerateWeek(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprint(out, weekTable(week))
				return nil
			}

			text, err := app.Suggestions.Generate(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}

	cmd.Flags().StringVar(&age, "age", "", "age group, e.g. 1歳児 (defaults to the spec file's)")
	cmd.Flags().StringVar(&keywords, "keywords", "", "keywords describing the plan")
	cmd.Flags().StringVar(&doc, "doc", "monthly", "document kind (annual|monthly|weekly)")
	cmd.Flags().StringVar(&item, "item", "", "row label the text is for")
	cmd.Flags().StringVar(&userID, "user", "", "save the suggestion into this user's form")
	cmd.Flags().StringVar(&specPath, "spec", "", "spec file (TOML), required with --user")
	cmd.Flags().IntVar(&period, "period", 1, "period column the text is written to")
	_ = cmd.MarkFlagRequired("keywords")

	return cmd
}

func weekTable(week intelligence.WeekPlan) string {
	labels := intelligence.DefaultWeekLabels()
	rows := make([][]string, 0, len(week))
	for _, day := range week.Days() {
		d := week[day]
		rows = append(rows, []string{day, d.Activity, d.Care, d.Supplies})
	}
	return formatter.RenderTable([]string{"", labels.Activity, labels.Care, labels.Supplies}, rows)
}
