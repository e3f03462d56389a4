package memory

import (
	"context"
	"sync"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
)

// Ensure PaymentStore implements the interface.
var _ driven.PaymentStore = (*PaymentStore)(nil)

// PaymentStore is an in-memory implementation of driven.PaymentStore.
type PaymentStore struct {
	mu       sync.RWMutex
	payments []domain.Payment
}

// NewPaymentStore creates a new in-memory payment store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{}
}

// Save stores or updates a payment, keyed by ServiceID.
func (s *PaymentStore) Save(_ context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ServiceID == payment.ServiceID {
			s.payments[i] = payment
			return nil
		}
	}
	s.payments = append(s.payments, payment)
	return nil
}

// FindByService retrieves the payment for a service.
func (s *PaymentStore) FindByService(_ context.Context, serviceID int) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.payments {
		if s.payments[i].ServiceID == serviceID {
			payment := s.payments[i]
			return &payment, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Len returns the number of stored payments. Useful for tests.
func (s *PaymentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payments)
}
