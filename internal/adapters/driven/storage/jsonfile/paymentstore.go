package jsonfile

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
)

// Ensure PaymentStore implements the interface.
var _ driven.PaymentStore = (*PaymentStore)(nil)

// PaymentStore persists payments in payments.json under the data directory.
type PaymentStore struct {
	mu   sync.Mutex
	path string
}

// NewPaymentStore creates a payment store backed by dataDir/payments.json,
// creating an empty document if none exists.
func NewPaymentStore(dataDir string) (*PaymentStore, error) {
	path := filepath.Join(dataDir, paymentsFile)
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	return &PaymentStore{path: path}, nil
}

// Save stores or updates a payment, keyed by ServiceID.
func (s *PaymentStore) Save(_ context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payments := readArray[domain.Payment](s.path)
	payments = upsert(payments, payment, func(p domain.Payment) bool {
		return p.ServiceID == payment.ServiceID
	})
	return writeArray(s.path, payments)
}

// FindByService retrieves the payment for a service.
func (s *PaymentStore) FindByService(_ context.Context, serviceID int) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range readArray[domain.Payment](s.path) {
		if p.ServiceID == serviceID {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}
