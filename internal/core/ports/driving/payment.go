package driving

import (
	"context"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

// PaymentService computes and reconciles payments for bookings.
type PaymentService interface {
	// CalculateBill prices the given work items under the service's plan.
	CalculateBill(service *domain.Service, workIDs []int) float64

	// GeneratePayment raises the bill for a service and persists it
	// unpaid, replacing any earlier payment for the same service.
	GeneratePayment(ctx context.Context, service *domain.Service, workIDs []int) (*domain.Payment, error)

	// ProcessPayment settles the payment for a service. The amount must
	// equal the stored amount due exactly; on a match the payment flips
	// to paid and the settled price is attached to the stored service.
	// Returns false when no payment exists or the amount does not match,
	// leaving the record unchanged.
	ProcessPayment(ctx context.Context, serviceID int, amount float64) (bool, error)

	// GetPayment returns the payment for a service, or nil without error
	// when none exists.
	GetPayment(ctx context.Context, serviceID int) (*domain.Payment, error)
}
