package driving

import (
	"context"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

// BookingParams carries the caller-validated inputs for a new booking.
//
// The CLI layer is responsible for validation: plan selection counts,
// duplicate-free choices, known work names and future-dated scheduling are
// all checked before these params are built. The booking service itself
// trusts them.
type BookingParams struct {
	// Plan is the pricing plan tier name.
	Plan string

	// Locality is the customer's locality.
	Locality string

	// CustomerID identifies the booking customer.
	CustomerID string

	// CustomerGender is the customer's gender, carried for worker matching.
	CustomerGender string

	// Address is the service address.
	Address string

	// RequestedServices lists the chosen work item names in order.
	RequestedServices []string

	// GenderPref is the worker gender preference (NP, M or F).
	GenderPref string
}

// BookingService creates service bookings.
type BookingService interface {
	// CreateImmediate books work starting as soon as possible.
	// The booking is persisted with a fresh id before it is returned.
	CreateImmediate(ctx context.Context, params BookingParams) (*domain.Service, error)

	// CreateScheduling books work for a future slot. Date is YYYY-MM-DD
	// and startTime HH:MM:SS; both are validated by the caller.
	CreateScheduling(ctx context.Context, params BookingParams, date, startTime string) (*domain.Service, error)
}
