package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/repository"
)

// readValues decodes a JSON object of field values from path, or from the
// command's stdin when path is "-".
func readValues(cmd *cobra.Command, path string) (domain.FieldValues, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var values domain.FieldValues
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("reading values from %s: %w", path, err)
	}
	if values == nil {
		values = domain.FieldValues{}
	}
	return values, nil
}

// latestValues returns the user's current form, or empty values when the
// user has never saved one.
func latestValues(ctx context.Context, app *App, userID string, doc domain.DocumentKind) (domain.FieldValues, error) {
	values, err := app.Forms.Load(ctx, userID, doc)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.FieldValues{}, nil
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}

// resolveValues picks the values a command works on: an explicit file wins,
// then the user's latest snapshot, then an empty form.
func resolveValues(cmd *cobra.Command, app *App, path, userID string, doc domain.DocumentKind) (domain.FieldValues, error) {
	if path != "" {
		return readValues(cmd, path)
	}
	if userID != "" {
		return latestValues(cmd.Context(), app, userID, doc)
	}
	return domain.FieldValues{}, nil
}
