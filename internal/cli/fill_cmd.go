package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/catalog"
	"github.com/alexanderramin/hoikuplan/internal/cli/formatter"
	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/layout"
	"github.com/alexanderramin/hoikuplan/internal/specfile"
)

// writeOwnOption is the catalog placeholder that asks for free text.
const writeOwnOption = "自分で入力する"

// fillField is one prompt of the fill form.
type fillField struct {
	Key     string
	Title   string
	Options []string // nil for free-text fields
	Current string
}

// fillFields lists the prompts for spec in sheet order. Body cells offer
// the catalog phrases for their row label; summary and closing blocks are
// free text. A non-empty item limits the form to that row label.
func fillFields(cat *catalog.Catalog, spec domain.DocumentSpec, values domain.FieldValues, item string) ([]fillField, error) {
	keys, err := layout.FieldKeys(spec)
	if err != nil {
		return nil, err
	}
	profile, _ := layout.ProfileFor(spec.Kind)
	closing := make(map[string]string, len(profile.Closing))
	for _, c := range profile.Closing {
		closing[c.Key] = c.Label
	}

	fields := make([]fillField, 0, len(keys))
	for _, k := range keys {
		if item != "" && k.Item != item {
			continue
		}
		f := fillField{Key: k.String(), Title: k.Item, Current: values.Get(k.Item, k.Period)}
		if k.Period > 0 {
			f.Title = k.Item + " / " + profile.PeriodHeading(spec.Period, k.Period)
			f.Options = cat.Options(spec.AgeGroup, k.Item)
		} else if label, ok := closing[k.Item]; ok {
			f.Title = label
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields for item %q", item)
	}
	return fields, nil
}

// resolveChoice returns the value a field ends with. Placeholders keep the
// current value; writeOwnOption takes the typed text.
func resolveChoice(cat *catalog.Catalog, f fillField, choice, typed string) string {
	if f.Options == nil || choice == writeOwnOption {
		return strings.TrimSpace(typed)
	}
	if choice == "" || cat.IsPlaceholder(choice) {
		return f.Current
	}
	return choice
}

// fillAnswer holds the bound huh values of one field.
type fillAnswer struct {
	choice string
	typed  string
}

func fillForm(fields []fillField, answers []fillAnswer) *huh.Form {
	groups := make([]*huh.Group, 0, 2*len(fields))
	for i := range fields {
		f := fields[i]
		a := &answers[i]
		a.typed = f.Current

		if f.Options == nil {
			groups = append(groups, huh.NewGroup(
				huh.NewText().Title(f.Title).Value(&a.typed),
			))
			continue
		}

		sel := huh.NewSelect[string]().
			Title(f.Title).
			Options(huh.NewOptions(f.Options...)...).
			Value(&a.choice)
		if f.Current != "" {
			sel = sel.Description("現在: " + formatter.Truncate(f.Current, 40))
		}
		groups = append(groups,
			huh.NewGroup(sel),
			huh.NewGroup(
				huh.NewInput().Title(f.Title).Value(&a.typed),
			).WithHideFunc(func() bool { return a.choice != writeOwnOption }),
		)
	}
	return huh.NewForm(groups...).WithTheme(hoikuHuhTheme())
}

func newFillCmd(app *App) *cobra.Command {
	var specPath, userID, item string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in a form interactively from the phrase catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !app.interactive() {
				return errors.New("fill needs an interactive terminal")
			}
			spec, err := specfile.Load(specPath)
			if err != nil {
				return err
			}
			current, err := latestValues(ctx, app, userID, spec.Kind)
			if err != nil {
				return err
			}
			fields, err := fillFields(app.Catalog, spec, current, item)
			if err != nil {
				return err
			}

			answers := make([]fillAnswer, len(fields))
			if err := fillForm(fields, answers).RunWithContext(ctx); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				return err
			}

			updated := current.Clone()
			changed := 0
			for i, f := range fields {
				v := resolveChoice(app.Catalog, f, answers[i].choice, answers[i].typed)
				if v == f.Current {
					continue
				}
				updated[f.Key] = v
				changed++
			}
			if changed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				return nil
			}

			if _, err := app.Forms.Save(ctx, userID, spec.Kind, updated); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Saved %d field(s) for %s", changed, userID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "spec file (TOML)")
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().StringVar(&item, "item", "", "only fill this row label")
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
