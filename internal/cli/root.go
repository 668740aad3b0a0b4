// Package cli implements the hoikuplan command-line interface.
//
// Commands render plan documents from TOML spec files, keep per-user form
// snapshots, browse the phrase catalog, ask the suggestion model for text
// and serve the same operations over HTTP. All commands accept --verbose
// (-v) for debug logging; the logger travels on the command context.
package cli

import (
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/catalog"
	"github.com/alexanderramin/hoikuplan/internal/intelligence"
	"github.com/alexanderramin/hoikuplan/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Catalog     *catalog.Catalog
	Forms       service.FormService
	Exports     service.ExportService
	Assist      service.AssistService
	Suggestions intelligence.SuggestionService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// LogWriter receives log output. Defaults to the command's stderr.
	LogWriter io.Writer
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "hoikuplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "hoikuplan",
		Short:        "Childcare curriculum plan forms and Excel export",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			w := app.LogWriter
			if w == nil {
				w = cmd.ErrOrStderr()
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(w, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		newSpecCmd(app),
		newPreviewCmd(app),
		newExportCmd(app),
		newFormCmd(app),
		newCatalogCmd(app),
		newSuggestCmd(app),
		newFillCmd(app),
		newServeCmd(app),
	)

	return root
}
