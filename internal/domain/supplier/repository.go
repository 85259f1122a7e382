package supplier

import "context"

// Repository exposes list/append only, matching the customer collection.
type Repository interface {
	List(ctx context.Context) ([]*Supplier, error)
	Append(ctx context.Context, s *Supplier) error
}
