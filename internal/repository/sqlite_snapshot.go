package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/hoikuplan/internal/db"
	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo on the form_snapshots table.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo accepts a *sql.DB or a *sql.Tx from a unit of work.
func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

const snapshotColumns = `id, user_id, doc_type, values_json, created_at`

func (r *SQLiteSnapshotRepo) Append(ctx context.Context, s *domain.Snapshot) error {
	values, err := encodeValues(s.Values)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO form_snapshots (`+snapshotColumns+`) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, string(s.DocType), values, formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting form snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Latest(ctx context.Context, userID string, doc domain.DocumentKind) (*domain.Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM form_snapshots
		WHERE user_id = ? AND doc_type = ?
		ORDER BY seq DESC LIMIT 1`,
		userID, string(doc),
	)
	s, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("form snapshot for %s/%s: %w", userID, doc, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteSnapshotRepo) List(ctx context.Context, userID string, doc domain.DocumentKind, limit int) ([]*domain.Snapshot, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+snapshotColumns+` FROM form_snapshots
		WHERE user_id = ? AND doc_type = ?
		ORDER BY seq DESC LIMIT ?`,
		userID, string(doc), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing form snapshots: %w", err)
	}
	defer rows.Close()

	var out []*domain.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating form snapshots: %w", err)
	}
	return out, nil
}

func (r *SQLiteSnapshotRepo) Prune(ctx context.Context, userID string, doc domain.DocumentKind, keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM form_snapshots
		WHERE user_id = ? AND doc_type = ? AND seq NOT IN (
			SELECT seq FROM form_snapshots
			WHERE user_id = ? AND doc_type = ?
			ORDER BY seq DESC LIMIT ?
		)`,
		userID, string(doc), userID, string(doc), keep,
	)
	if err != nil {
		return 0, fmt.Errorf("pruning form snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning form snapshots: %w", err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*domain.Snapshot, error) {
	var s domain.Snapshot
	var docType, values, createdAtStr string
	if err := row.Scan(&s.ID, &s.UserID, &docType, &values, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning form snapshot: %w", err)
	}
	s.DocType = domain.DocumentKind(docType)

	var err error
	if s.Values, err = decodeValues(values); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", s.ID, err)
	}
	if s.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", s.ID, err)
	}
	return &s, nil
}
