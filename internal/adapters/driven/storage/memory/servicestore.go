package memory

import (
	"context"
	"sync"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
)

// Ensure ServiceStore implements the interface.
var _ driven.ServiceStore = (*ServiceStore)(nil)

// ServiceStore is an in-memory implementation of driven.ServiceStore.
type ServiceStore struct {
	mu       sync.RWMutex
	services []domain.Service
}

// NewServiceStore creates a new in-memory service store.
func NewServiceStore() *ServiceStore {
	return &ServiceStore{}
}

// NextID returns max(stored ids)+1, or 1 for an empty collection.
func (s *ServiceStore) NextID(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	maxID := 0
	for i := range s.services {
		if s.services[i].ID > maxID {
			maxID = s.services[i].ID
		}
	}
	return maxID + 1, nil
}

// Save stores or updates a service, keyed by ID.
func (s *ServiceStore) Save(_ context.Context, service domain.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == service.ID {
			s.services[i] = service
			return nil
		}
	}
	s.services = append(s.services, service)
	return nil
}

// FindByID retrieves a service by ID.
func (s *ServiceStore) FindByID(_ context.Context, id int) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.services {
		if s.services[i].ID == id {
			service := s.services[i]
			return &service, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindByCustomer returns all services booked by a customer, in stored order.
func (s *ServiceStore) FindByCustomer(_ context.Context, customerID string) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Service, 0)
	for i := range s.services {
		if s.services[i].CustomerID == customerID {
			result = append(result, s.services[i])
		}
	}
	return result, nil
}

// Len returns the number of stored services. Useful for tests.
func (s *ServiceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.services)
}
