package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/intelligence"
	"github.com/alexanderramin/hoikuplan/internal/layout"
)

// ErrInvalidInput is returned for a blank user id or an unknown document kind.
var ErrInvalidInput = errors.New("invalid input")

// FormService is the form session store: every save appends a snapshot and
// the newest snapshot is the current form.
type FormService interface {
	Save(ctx context.Context, userID string, doc domain.DocumentKind, values domain.FieldValues) (*domain.Snapshot, error)
	// Load returns the latest values or repository.ErrNotFound.
	Load(ctx context.Context, userID string, doc domain.DocumentKind) (domain.FieldValues, error)
	History(ctx context.Context, userID string, doc domain.DocumentKind, limit int) ([]*domain.Snapshot, error)
}

// Export is a rendered workbook ready to be written or downloaded.
type Export struct {
	FileName string
	Data     []byte
	Plan     *layout.Plan
}

type ExportService interface {
	Export(ctx context.Context, spec domain.DocumentSpec, values domain.FieldValues) (*Export, error)
	// ExportLatest renders the user's latest snapshot; no snapshot renders
	// an empty form.
	ExportLatest(ctx context.Context, userID string, spec domain.DocumentSpec) (*Export, error)
}

// AssistTarget selects the field a suggestion is written to. Weekly specs
// ignore it and fill the whole week.
type AssistTarget struct {
	Item   string
	Period int
}

type AssistService interface {
	// Apply asks for a suggestion and saves it on top of the user's latest
	// values. On failure nothing is saved.
	Apply(ctx context.Context, userID string, spec domain.DocumentSpec, req intelligence.Request, target AssistTarget) (domain.FieldValues, error)
}
