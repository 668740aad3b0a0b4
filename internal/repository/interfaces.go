package repository

import (
	"context"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// SnapshotRepo is the append-only form session store. Snapshots for one
// (user, doc) pair are ordered by insertion.
type SnapshotRepo interface {
	Append(ctx context.Context, s *domain.Snapshot) error
	// Latest returns the most recently appended snapshot, or ErrNotFound.
	Latest(ctx context.Context, userID string, doc domain.DocumentKind) (*domain.Snapshot, error)
	// List returns up to limit snapshots, newest first. limit <= 0 means all.
	List(ctx context.Context, userID string, doc domain.DocumentKind, limit int) ([]*domain.Snapshot, error)
	// Prune keeps the newest keep snapshots and returns how many were removed.
	Prune(ctx context.Context, userID string, doc domain.DocumentKind, keep int) (int, error)
}
