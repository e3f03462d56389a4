package jsonfile

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
)

// Ensure CustomerStore implements the interface.
var _ driven.CustomerStore = (*CustomerStore)(nil)

// CustomerStore persists customers in customers.json under the data directory.
type CustomerStore struct {
	mu   sync.Mutex
	path string
}

// NewCustomerStore creates a customer store backed by dataDir/customers.json,
// creating an empty document if none exists.
func NewCustomerStore(dataDir string) (*CustomerStore, error) {
	path := filepath.Join(dataDir, customersFile)
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	return &CustomerStore{path: path}, nil
}

// Save stores or updates a customer, keyed by ID.
func (s *CustomerStore) Save(_ context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	customers := readArray[domain.Customer](s.path)
	customers = upsert(customers, customer, func(c domain.Customer) bool {
		return c.ID == customer.ID
	})
	return writeArray(s.path, customers)
}

// FindByID retrieves a customer by ID.
func (s *CustomerStore) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range readArray[domain.Customer](s.path) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Exists reports whether a customer with the given ID is stored.
func (s *CustomerStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.FindByID(ctx, id)
	if err != nil {
		return false, nil
	}
	return true, nil
}
