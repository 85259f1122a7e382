package customer

import "context"

// Repository deliberately stops at list/append: the customer collection has
// no update or delete surface.
type Repository interface {
	// List returns the full collection in insertion order, empty when
	// nothing has been written.
	List(ctx context.Context) ([]*Customer, error)

	// Append adds a record to the end of the collection.
	Append(ctx context.Context, c *Customer) error
}
