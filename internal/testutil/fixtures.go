package testutil

import (
	"time"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/google/uuid"
)

// April2025 is the period used by the fixtures.
var April2025 = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

// Spec options
type SpecOption func(*domain.DocumentSpec)

func WithKind(k domain.DocumentKind) SpecOption {
	return func(s *domain.DocumentSpec) { s.Kind = k }
}

func WithPeriodCount(n int) SpecOption {
	return func(s *domain.DocumentSpec) { s.PeriodCount = n }
}

func WithRowLabels(labels ...string) SpecOption {
	return func(s *domain.DocumentSpec) { s.RowLabels = labels }
}

func WithOrientation(o domain.Orientation) SpecOption {
	return func(s *domain.DocumentSpec) { s.Orientation = o }
}

func WithPeriod(t time.Time) SpecOption {
	return func(s *domain.DocumentSpec) { s.Period = t }
}

// NewTestSpec returns a valid monthly spec: 1歳児, April 2025, landscape,
// four weeks and three row labels.
func NewTestSpec(opts ...SpecOption) domain.DocumentSpec {
	s := domain.DocumentSpec{
		Kind:        domain.KindMonthly,
		AgeGroup:    "1歳児",
		Period:      April2025,
		Orientation: domain.Landscape,
		PeriodCount: 4,
		RowLabels:   []string{"ねらい", "養護:生命", "環境構成"},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Snapshot options
type SnapshotOption func(*domain.Snapshot)

func WithValues(v domain.FieldValues) SnapshotOption {
	return func(s *domain.Snapshot) { s.Values = v }
}

func WithCreatedAt(t time.Time) SnapshotOption {
	return func(s *domain.Snapshot) { s.CreatedAt = t }
}

func NewTestSnapshot(userID string, doc domain.DocumentKind, opts ...SnapshotOption) *domain.Snapshot {
	s := &domain.Snapshot{
		ID:        uuid.New().String(),
		UserID:    userID,
		DocType:   doc,
		Values:    domain.FieldValues{"ねらい_period1": "探索活動を十分に楽しむ。"},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
