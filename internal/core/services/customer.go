package services

import (
	"context"
	"errors"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driving"
	"github.com/homecrew-labs/homecrew-cli/internal/logger"
)

// Ensure CustomerService implements the interface.
var _ driving.CustomerService = (*CustomerService)(nil)

// CustomerService manages customer accounts and their bookings.
type CustomerService struct {
	customers driven.CustomerStore
	services  driven.ServiceStore
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customers driven.CustomerStore, services driven.ServiceStore) *CustomerService {
	return &CustomerService{
		customers: customers,
		services:  services,
	}
}

// Register stores a new customer. Returns false without writing when the
// id is already taken; uniqueness is checked only here, not on later saves.
func (s *CustomerService) Register(ctx context.Context, customer domain.Customer) (bool, error) {
	exists, err := s.customers.Exists(ctx, customer.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return false, err
	}
	logger.Debug("registered customer %s", customer.ID)
	return true, nil
}

// IDExists reports whether a customer id is already registered.
func (s *CustomerService) IDExists(ctx context.Context, id string) (bool, error) {
	return s.customers.Exists(ctx, id)
}

// Update overwrites a customer's stored record.
func (s *CustomerService) Update(ctx context.Context, customer domain.Customer) error {
	return s.customers.Save(ctx, customer)
}

// Authenticate returns the customer when both id and password match
// exactly. Missing ids and wrong passwords are indistinguishable.
func (s *CustomerService) Authenticate(ctx context.Context, id, password string) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if customer.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return customer, nil
}

// Bookings returns all of a customer's service bookings in stored order.
func (s *CustomerService) Bookings(ctx context.Context, customerID string) ([]domain.Service, error) {
	return s.services.FindByCustomer(ctx, customerID)
}
