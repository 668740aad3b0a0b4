package domain

import "time"

// Snapshot is one saved copy of a user's form values for a document kind.
// Snapshots are append-only; the newest one is the current form state.
type Snapshot struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	DocType   DocumentKind `json:"doc_type"`
	Values    FieldValues  `json:"values"`
	CreatedAt time.Time    `json:"created_at"`
}
