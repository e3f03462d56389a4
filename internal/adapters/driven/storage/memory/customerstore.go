package memory

import (
	"context"
	"sync"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
)

// Ensure CustomerStore implements the interface.
var _ driven.CustomerStore = (*CustomerStore)(nil)

// CustomerStore is an in-memory implementation of driven.CustomerStore.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []domain.Customer
}

// NewCustomerStore creates a new in-memory customer store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{}
}

// Save stores or updates a customer, keyed by ID.
func (s *CustomerStore) Save(_ context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == customer.ID {
			s.customers[i] = customer
			return nil
		}
	}
	s.customers = append(s.customers, customer)
	return nil
}

// FindByID retrieves a customer by ID.
func (s *CustomerStore) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			customer := s.customers[i]
			return &customer, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Exists reports whether a customer with the given ID is stored.
func (s *CustomerStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of stored customers. Useful for tests.
func (s *CustomerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}
