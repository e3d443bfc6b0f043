// Package history records the outcome of every tick of a behaviour tree.
//
// Only tick results are kept (status, duration, error). Trees themselves
// are never persisted.
package history

import (
	"errors"
)

// Store keeps tick records per tree.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores rec and returns it with Sequence set to one past the
	// highest sequence already stored for rec.Tree.
	Append(rec Record) (Record, error)

	// Latest returns the record with the highest sequence for tree.
	// Returns ErrNotFound if the tree has no records.
	Latest(tree string) (Record, error)

	// List returns all records for tree ordered by sequence.
	// Returns an empty slice (not error) if the tree has no records.
	List(tree string) ([]Record, error)

	// Counts returns the number of records per status for tree.
	Counts(tree string) (map[string]int, error)

	// DeleteTree removes all records for tree.
	// Returns nil if the tree has no records.
	DeleteTree(tree string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for history operations.
var (
	// ErrNotFound indicates no record exists.
	ErrNotFound = errors.New("tick record not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("history store closed")

	// ErrTreeRequired indicates a record without a tree name.
	ErrTreeRequired = errors.New("tree name required")
)
