package ticket

import "context"

// Repository is whole-collection CRUD over the persisted ticket blob.
// Implementations must serialize Upsert/Remove against each other; the
// collection is read-modified-written as a unit.
type Repository interface {
	// List returns the full collection in insertion order. An empty or
	// never-written store yields an empty slice, never nil.
	List(ctx context.Context) ([]*Ticket, error)

	// GetByID returns the ticket with the given id, or nil when absent.
	// Lookups are linear scans; the collection has no secondary index.
	GetByID(ctx context.Context, id string) (*Ticket, error)

	// Upsert replaces the record with the same id in place (index
	// unchanged), or appends when no such record exists.
	Upsert(ctx context.Context, t *Ticket) error

	// Remove deletes the record with the given id. Removing an absent id
	// is a no-op, not an error.
	Remove(ctx context.Context, id string) error
}
