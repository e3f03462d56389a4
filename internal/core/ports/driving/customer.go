package driving

import (
	"context"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

// CustomerService manages customer accounts and their bookings.
type CustomerService interface {
	// Register stores a new customer. Returns false without writing when
	// the id is already taken.
	Register(ctx context.Context, customer domain.Customer) (bool, error)

	// IDExists reports whether a customer id is already registered.
	IDExists(ctx context.Context, id string) (bool, error)

	// Update overwrites a customer's stored record.
	Update(ctx context.Context, customer domain.Customer) error

	// Authenticate returns the customer when both id and password match
	// exactly, and domain.ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, id, password string) (*domain.Customer, error)

	// Bookings returns all of a customer's service bookings.
	Bookings(ctx context.Context, customerID string) ([]domain.Service, error)
}
