package supplier

import (
	"fmt"
	"time"
)

// Supplier mirrors Customer in shape and lifecycle but lives in its own
// collection; tickets reference both independently.
type Supplier struct {
	id        string
	name      string
	phone     string
	email     string
	notes     string
	createdAt time.Time
}

func NewSupplier(id, name, phone, email, notes string) (*Supplier, error) {
	if id == "" {
		return nil, fmt.Errorf("supplier ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}

	return &Supplier{
		id:        id,
		name:      name,
		phone:     phone,
		email:     email,
		notes:     notes,
		createdAt: time.Now(),
	}, nil
}

func ReconstructSupplier(id, name, phone, email, notes string, createdAt time.Time) *Supplier {
	return &Supplier{
		id:        id,
		name:      name,
		phone:     phone,
		email:     email,
		notes:     notes,
		createdAt: createdAt,
	}
}

func (s *Supplier) ID() string           { return s.id }
func (s *Supplier) Name() string         { return s.name }
func (s *Supplier) Phone() string        { return s.phone }
func (s *Supplier) Email() string        { return s.email }
func (s *Supplier) Notes() string        { return s.notes }
func (s *Supplier) CreatedAt() time.Time { return s.createdAt }
