// Package kvstore provides the durable key-value medium behind the record
// store. Each entity collection persists as a single blob under a fixed key.
package kvstore

import "context"

// Collection keys. One serialized JSON array per entity type.
const (
	KeyTickets   = "tickets"
	KeyCustomers = "customers"
	KeySuppliers = "suppliers"
)

// Store abstracts the persistence medium. Any durable get/set mechanism
// satisfies the record store's needs; repositories never see the backend.
type Store interface {
	// Get returns the blob for key. The boolean is false when the key has
	// never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set durably replaces the blob for key before returning.
	Set(ctx context.Context, key string, value []byte) error
}
