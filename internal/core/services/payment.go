package services

import (
	"context"
	"errors"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driving"
	"github.com/homecrew-labs/homecrew-cli/internal/logger"
)

// Ensure PaymentService implements the interface.
var _ driving.PaymentService = (*PaymentService)(nil)

// PaymentService computes and reconciles payments against bookings.
type PaymentService struct {
	payments driven.PaymentStore
	services driven.ServiceStore
	catalog  driven.Catalog
}

// NewPaymentService creates a new payment service.
func NewPaymentService(payments driven.PaymentStore, services driven.ServiceStore, catalog driven.Catalog) *PaymentService {
	return &PaymentService{
		payments: payments,
		services: services,
		catalog:  catalog,
	}
}

// CalculateBill prices the given work items under the service's plan tier.
// An unrecognised plan falls back to the undiscounted catalog total.
func (s *PaymentService) CalculateBill(service *domain.Service, workIDs []int) float64 {
	base := s.catalog.TotalPriceByIDs(workIDs)
	return domain.ParsePlanTier(service.Plan).Apply(base)
}

// GeneratePayment raises the bill for a service using live catalog prices
// and persists it unpaid, replacing any earlier payment for the same
// service wholesale.
func (s *PaymentService) GeneratePayment(ctx context.Context, service *domain.Service, workIDs []int) (*domain.Payment, error) {
	payment := domain.Payment{
		ServiceID: service.ID,
		AmountDue: s.CalculateBill(service, workIDs),
		Paid:      false,
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	logger.Debug("generated payment for service %d: amount due %.2f", payment.ServiceID, payment.AmountDue)
	return &payment, nil
}

// ProcessPayment settles the payment for a service. The offered amount
// must equal the stored amount due exactly; there is no tolerance. On a
// match the payment flips to paid and the settled price is attached to
// the stored service record; on a mismatch or a missing payment nothing
// is written and false is returned.
func (s *PaymentService) ProcessPayment(ctx context.Context, serviceID int, amount float64) (bool, error) {
	payment, err := s.payments.FindByService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if amount != payment.AmountDue {
		logger.Debug("payment for service %d rejected: offered %.2f, due %.2f", serviceID, amount, payment.AmountDue)
		return false, nil
	}

	payment.Paid = true
	if err := s.payments.Save(ctx, *payment); err != nil {
		return false, err
	}
	if err := s.attachPrice(ctx, serviceID, payment.AmountDue); err != nil {
		return false, err
	}
	logger.Info("payment for service %d settled at %.2f", serviceID, payment.AmountDue)
	return true, nil
}

// GetPayment returns the payment for a service, or nil without error when
// none exists.
func (s *PaymentService) GetPayment(ctx context.Context, serviceID int) (*domain.Payment, error) {
	payment, err := s.payments.FindByService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}

// attachPrice sets the settled price on the stored service. The record is
// re-read first so status and work-assignment fields written by the
// worker/admin subsystem in the meantime are carried through verbatim.
func (s *PaymentService) attachPrice(ctx context.Context, serviceID int, price float64) error {
	service, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	service.Price = &price
	return s.services.Save(ctx, *service)
}
