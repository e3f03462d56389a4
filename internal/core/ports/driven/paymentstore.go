package driven

import (
	"context"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

// PaymentStore persists payments, at most one per service.
type PaymentStore interface {
	// Save stores or updates a payment, keyed by ServiceID.
	Save(ctx context.Context, payment domain.Payment) error

	// FindByService retrieves the payment for a service.
	// Returns domain.ErrNotFound if no payment exists for that service.
	FindByService(ctx context.Context, serviceID int) (*domain.Payment, error)
}
