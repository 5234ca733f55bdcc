// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	// ErrNotFound is returned when a group does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidGroup is returned when a snapshot fails schema validation
	// before it is written.
	ErrInvalidGroup = errors.New("invalid group")

	// ErrCorruptGroup is returned when a stored snapshot no longer passes
	// schema validation after it is read back.
	ErrCorruptGroup = errors.New("corrupt group")
)

// Store is the repository for group snapshots. The ledger never mutates
// storage directly: it loads a snapshot, changes it in memory and saves the
// whole snapshot back. Concurrent saves of the same group resolve as
// last-write-wins.
type Store interface {
	// CreateGroup persists a new group.
	// Missing IDs and timestamps on the group and its children are populated.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a full snapshot by group ID.
	// Returns ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups, or only those owned by ownerID when it
	// is non-empty, newest first.
	ListGroups(ctx context.Context, ownerID string) ([]*models.Group, error)

	// SaveGroup replaces the stored snapshot with group.
	// Missing child IDs are populated and UpdatedAt is refreshed.
	// Returns ErrNotFound if the group does not exist.
	SaveGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group and everything it owns.
	// Returns ErrNotFound if the group does not exist.
	DeleteGroup(ctx context.Context, groupID string) error

	// Close releases any resources held by the store.
	Close() error
}
