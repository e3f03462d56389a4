package jsonfile

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
)

// Ensure ServiceStore implements the interface.
var _ driven.ServiceStore = (*ServiceStore)(nil)

// ServiceStore persists services in services.json under the data directory.
// The worker/admin subsystem writes status and work-assignment fields
// through the same document; saves here carry those fields verbatim.
type ServiceStore struct {
	mu   sync.Mutex
	path string
}

// NewServiceStore creates a service store backed by dataDir/services.json,
// creating an empty document if none exists.
func NewServiceStore(dataDir string) (*ServiceStore, error) {
	path := filepath.Join(dataDir, servicesFile)
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	return &ServiceStore{path: path}, nil
}

// NextID returns max(stored ids)+1, or 1 for an empty collection.
// Ids are never reused or renumbered, whatever the insertion order.
func (s *ServiceStore) NextID(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, svc := range readArray[domain.Service](s.path) {
		if svc.ID > maxID {
			maxID = svc.ID
		}
	}
	return maxID + 1, nil
}

// Save stores or updates a service, keyed by ID.
func (s *ServiceStore) Save(_ context.Context, service domain.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	services := readArray[domain.Service](s.path)
	services = upsert(services, service, func(sv domain.Service) bool {
		return sv.ID == service.ID
	})
	return writeArray(s.path, services)
}

// FindByID retrieves a service by ID.
func (s *ServiceStore) FindByID(_ context.Context, id int) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range readArray[domain.Service](s.path) {
		if svc.ID == id {
			return &svc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindByCustomer returns all services booked by a customer, in stored order.
func (s *ServiceStore) FindByCustomer(_ context.Context, customerID string) ([]domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]domain.Service, 0)
	for _, svc := range readArray[domain.Service](s.path) {
		if svc.CustomerID == customerID {
			result = append(result, svc)
		}
	}
	return result, nil
}
