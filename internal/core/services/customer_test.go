package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecrew-labs/homecrew-cli/internal/adapters/driven/storage/memory"
	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

func customerFixture() (*CustomerService, *memory.CustomerStore, *memory.ServiceStore) {
	customers := memory.NewCustomerStore()
	services := memory.NewServiceStore()
	return NewCustomerService(customers, services), customers, services
}

func testCustomer() domain.Customer {
	return domain.Customer{
		ID:       "alice",
		Password: "secret",
		Name:     "Alice",
		Gender:   "F",
		Locality: "Patamata",
		Address:  "12 Lake Road",
	}
}

func TestCustomerService_Register(t *testing.T) {
	svc, customers, _ := customerFixture()
	ctx := context.Background()

	ok, err := svc.Register(ctx, testCustomer())

	require.NoError(t, err)
	assert.True(t, ok)

	saved, err := customers.FindByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", saved.Name)
}

func TestCustomerService_Register_DuplicateID(t *testing.T) {
	svc, customers, _ := customerFixture()
	ctx := context.Background()

	ok, err := svc.Register(ctx, testCustomer())
	require.NoError(t, err)
	require.True(t, ok)

	dup := testCustomer()
	dup.Name = "Impostor"
	ok, err = svc.Register(ctx, dup)

	require.NoError(t, err)
	assert.False(t, ok)

	// Original record untouched
	saved, err := customers.FindByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", saved.Name)
}

func TestCustomerService_IDExists(t *testing.T) {
	svc, _, _ := customerFixture()
	ctx := context.Background()

	exists, err := svc.IDExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Register(ctx, testCustomer())
	require.NoError(t, err)

	exists, err = svc.IDExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCustomerService_Update(t *testing.T) {
	svc, customers, _ := customerFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, testCustomer())
	require.NoError(t, err)

	updated := testCustomer()
	updated.Locality = "Benz Circle"
	require.NoError(t, svc.Update(ctx, updated))

	saved, err := customers.FindByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Benz Circle", saved.Locality)
}

func TestCustomerService_Authenticate(t *testing.T) {
	svc, _, _ := customerFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, testCustomer())
	require.NoError(t, err)

	customer, err := svc.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", customer.ID)
}

func TestCustomerService_Authenticate_WrongPassword(t *testing.T) {
	svc, _, _ := customerFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, testCustomer())
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCustomerService_Authenticate_UnknownID(t *testing.T) {
	svc, _, _ := customerFixture()

	_, err := svc.Authenticate(context.Background(), "ghost", "secret")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCustomerService_Bookings(t *testing.T) {
	svc, _, services := customerFixture()
	ctx := context.Background()

	require.NoError(t, services.Save(ctx, domain.Service{ID: 1, CustomerID: "alice"}))
	require.NoError(t, services.Save(ctx, domain.Service{ID: 2, CustomerID: "bob"}))
	require.NoError(t, services.Save(ctx, domain.Service{ID: 3, CustomerID: "alice"}))

	bookings, err := svc.Bookings(ctx, "alice")

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, 1, bookings[0].ID)
	assert.Equal(t, 3, bookings[1].ID)
}

func TestCustomerService_Bookings_Empty(t *testing.T) {
	svc, _, _ := customerFixture()

	bookings, err := svc.Bookings(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Empty(t, bookings)
}
