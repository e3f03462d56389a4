package driven

import (
	"context"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

// ServiceStore persists service bookings.
type ServiceStore interface {
	// NextID returns the next service id: max over all stored ids plus
	// one, or 1 for an empty collection. Ids are never reused.
	NextID(ctx context.Context) (int, error)

	// Save stores or updates a service, keyed by ID.
	Save(ctx context.Context, service domain.Service) error

	// FindByID retrieves a service by ID.
	// Returns domain.ErrNotFound if no service has that ID.
	FindByID(ctx context.Context, id int) (*domain.Service, error)

	// FindByCustomer returns all services booked by a customer,
	// in stored order. An unknown customer yields an empty slice.
	FindByCustomer(ctx context.Context, customerID string) ([]domain.Service, error)
}
