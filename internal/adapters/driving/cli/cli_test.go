package cli

import (
	"testing"
	"time"

	catalogmemory "github.com/homecrew-labs/homecrew-cli/internal/adapters/driven/catalog/memory"
	configmemory "github.com/homecrew-labs/homecrew-cli/internal/adapters/driven/config/memory"
	"github.com/homecrew-labs/homecrew-cli/internal/adapters/driven/storage/memory"
	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/services"
	"github.com/homecrew-labs/homecrew-cli/internal/timeutil"
)

// setupTestServices swaps the package-level services for in-memory
// doubles so commands can execute without touching the filesystem.
// Returns the backing stores for seeding and assertions.
func setupTestServices(t *testing.T) (*memory.CustomerStore, *memory.ServiceStore, *memory.PaymentStore) {
	t.Helper()

	customers := memory.NewCustomerStore()
	servicesStore := memory.NewServiceStore()
	payments := memory.NewPaymentStore()

	workCatalog = catalogmemory.NewCatalog(
		[]domain.Work{
			{ID: 1, Name: "Window Cleaning", Category: "house", Price: 600},
			{ID: 2, Name: "Mopping", Category: "house", Price: 300},
			{ID: 3, Name: "Sweeping", Category: "house", Price: 200},
			{ID: 4, Name: "Fan Cleaning", Category: "house", Price: 400},
			{ID: 5, Name: "Bathroom Cleaning", Category: "house", Price: 500},
		},
		[]domain.Package{
			{ID: 1, Name: "House Cleaning", Description: "Complete house cleaning", WorkIDs: []int{1, 2, 3, 4, 5}},
		},
	)
	configStore = configmemory.NewConfigStore()
	clock = timeutil.FixedClock{Instant: time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)}

	customerService = services.NewCustomerService(customers, servicesStore)
	bookingService = services.NewBookingService(servicesStore, clock)
	paymentService = services.NewPaymentService(payments, servicesStore, workCatalog)

	t.Cleanup(func() {
		customerService = nil
		bookingService = nil
		paymentService = nil
		workCatalog = nil
		configStore = nil
		clock = timeutil.SystemClock{}
	})

	return customers, servicesStore, payments
}
