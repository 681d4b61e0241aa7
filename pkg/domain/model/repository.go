package model

import "github.com/google/uuid"

// Repository is the soft-delete persistence contract shared by every
// aggregate. FindActive, ListActive and the entity-specific finders
// never return rows with Deleted=true; Find is the raw escape hatch
// for internal aggregation.
type Repository[T any] interface {
	// FindActive returns the entity only if it exists and is not
	// trashed, otherwise the entity's not-found error.
	FindActive(id uuid.UUID) (*T, error)
	// Find looks up by raw identifier, trashed or not.
	Find(id uuid.UUID) (*T, error)
	// Save inserts or updates and returns the persisted state, with
	// store-assigned identifier and timestamp populated.
	Save(e *T) (*T, error)
	// Trash marks an active row deleted and returns the updated
	// entity; an unknown or already-trashed id yields the entity's
	// not-found error.
	Trash(id uuid.UUID) (*T, error)
	// TrashMany trashes each id independently; missing ids produce a
	// nil slot instead of aborting the batch.
	TrashMany(ids []uuid.UUID) ([]*T, error)
	ListAllActive() ([]T, error)
	ListActive(p Pageable) (Page[T], error)
}
