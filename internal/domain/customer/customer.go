package customer

import (
	"fmt"
	"time"
)

// Customer is immutable once created: the collection exposes create and
// list only.
type Customer struct {
	id        string
	name      string
	phone     string
	email     string
	notes     string
	createdAt time.Time
}

func NewCustomer(id, name, phone, email, notes string) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("customer ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	return &Customer{
		id:        id,
		name:      name,
		phone:     phone,
		email:     email,
		notes:     notes,
		createdAt: time.Now(),
	}, nil
}

func ReconstructCustomer(id, name, phone, email, notes string, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		phone:     phone,
		email:     email,
		notes:     notes,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() string           { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Notes() string        { return c.notes }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
