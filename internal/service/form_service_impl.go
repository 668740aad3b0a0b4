package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/hoikuplan/internal/db"
	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/repository"
)

type formService struct {
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
	keep      int
	observer  UseCaseObserver
}

// NewFormService builds the form store over snapshots. With a non-nil uow
// (SQLite stores) the append and the retention prune share one transaction.
// keep <= 0 keeps every snapshot.
func NewFormService(
	snapshots repository.SnapshotRepo,
	uow db.UnitOfWork,
	keep int,
	observers ...UseCaseObserver,
) FormService {
	return &formService{
		snapshots: snapshots,
		uow:       uow,
		keep:      keep,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func validateOwner(userID string, doc domain.DocumentKind) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !doc.Valid() {
		return fmt.Errorf("%w: unknown document kind %q", ErrInvalidInput, doc)
	}
	return nil
}

func (s *formService) Save(ctx context.Context, userID string, doc domain.DocumentKind, values domain.FieldValues) (snap *domain.Snapshot, err error) {
	fields := map[string]any{"user": userID, "doc": string(doc), "fields": len(values)}
	defer observe(ctx, s.observer, "form-save", time.Now().UTC(), &err, fields)

	if err = validateOwner(userID, doc); err != nil {
		return nil, err
	}

	snap = &domain.Snapshot{
		ID:        uuid.New().String(),
		UserID:    userID,
		DocType:   doc,
		Values:    values.Clone(),
		CreatedAt: time.Now().UTC(),
	}

	var pruned int
	if s.uow != nil {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			var txErr error
			pruned, txErr = appendAndPrune(ctx, repository.NewSQLiteSnapshotRepo(tx), snap, s.keep)
			return txErr
		})
	} else {
		pruned, err = appendAndPrune(ctx, s.snapshots, snap, s.keep)
	}
	if err != nil {
		return nil, fmt.Errorf("saving form: %w", err)
	}
	fields["pruned"] = pruned
	return snap, nil
}

func appendAndPrune(ctx context.Context, repo repository.SnapshotRepo, snap *domain.Snapshot, keep int) (int, error) {
	if err := repo.Append(ctx, snap); err != nil {
		return 0, err
	}
	if keep <= 0 {
		return 0, nil
	}
	return repo.Prune(ctx, snap.UserID, snap.DocType, keep)
}

func (s *formService) Load(ctx context.Context, userID string, doc domain.DocumentKind) (values domain.FieldValues, err error) {
	defer observe(ctx, s.observer, "form-load", time.Now().UTC(), &err, map[string]any{"user": userID, "doc": string(doc)})

	if err = validateOwner(userID, doc); err != nil {
		return nil, err
	}
	snap, err := s.snapshots.Latest(ctx, userID, doc)
	if err != nil {
		return nil, err
	}
	return snap.Values.Clone(), nil
}

func (s *formService) History(ctx context.Context, userID string, doc domain.DocumentKind, limit int) ([]*domain.Snapshot, error) {
	if err := validateOwner(userID, doc); err != nil {
		return nil, err
	}
	return s.snapshots.List(ctx, userID, doc, limit)
}
