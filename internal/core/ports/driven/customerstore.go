package driven

import (
	"context"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

// CustomerStore persists customer accounts.
type CustomerStore interface {
	// Save stores or updates a customer, keyed by ID.
	Save(ctx context.Context, customer domain.Customer) error

	// FindByID retrieves a customer by ID.
	// Returns domain.ErrNotFound if no customer has that ID.
	FindByID(ctx context.Context, id string) (*domain.Customer, error)

	// Exists reports whether a customer with the given ID is stored.
	Exists(ctx context.Context, id string) (bool, error)
}
