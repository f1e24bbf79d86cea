package store

import (
	"context"
	"errors"
	"time"
)

// Pathway CRUD errors, checked with errors.Is.
var (
	ErrPathwayExists   = errors.New("store: pathway name already exists")
	ErrPathwayNotFound = errors.New("store: pathway not found")
)

// PathwayRecord is a named practice track row.
type PathwayRecord struct {
	ID          int
	Name        string
	Description string
	Level       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PathwayUpdate holds the mutable pathway fields for Edit. Nil fields
// are left unchanged.
type PathwayUpdate struct {
	Description *string
	Level       *string
}

// PathwayRepo provides keyed CRUD over named pathways. Uniqueness is
// enforced on Name.
type PathwayRepo interface {
	Create(ctx context.Context, name, description, level string) (*PathwayRecord, error)
	List(ctx context.Context) ([]*PathwayRecord, error)
	Get(ctx context.Context, name string) (*PathwayRecord, error)
	Edit(ctx context.Context, name string, update PathwayUpdate) (*PathwayRecord, error)
	Delete(ctx context.Context, name string) error
}

// AttemptEventData captures one submitted challenge result for the
// append-only attempt log.
type AttemptEventData struct {
	SessionID   string
	Kind        string
	SourceBase  int
	TargetBase  int
	Value       string
	Level       string
	Complexity  float64
	UserAnswer  string
	Correct     bool
	SolvingTime float64
	ErrorRate   float64
}

// AttemptStats summarizes the attempt log for status display.
type AttemptStats struct {
	Total    int
	Correct  int
	Accuracy float64
}

// AttemptRepo provides append and summary access to attempt events.
type AttemptRepo interface {
	Append(ctx context.Context, data AttemptEventData) error
	Stats(ctx context.Context) (*AttemptStats, error)
}

// SnapshotRepo manages learning-state snapshots. Data is the
// serialized learning state produced by learning.(*State).Snapshot.
type SnapshotRepo interface {
	// Save stores a new snapshot, assigning it the next sequence.
	Save(ctx context.Context, data []byte) error

	// Latest returns the most recent snapshot's data, or nil if no
	// snapshot exists.
	Latest(ctx context.Context) ([]byte, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
