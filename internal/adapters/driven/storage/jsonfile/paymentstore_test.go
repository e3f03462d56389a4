package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

func TestPaymentStore_SaveAndFindAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewPaymentStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, domain.Payment{ServiceID: 7, AmountDue: 990.0}))

	reopened, err := NewPaymentStore(dir)
	require.NoError(t, err)
	found, err := reopened.FindByService(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 990.0, found.AmountDue)
	assert.False(t, found.Paid)
}

func TestPaymentStore_Save_OnePerService(t *testing.T) {
	store, err := NewPaymentStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Payment{ServiceID: 7, AmountDue: 600}))
	require.NoError(t, store.Save(ctx, domain.Payment{ServiceID: 7, AmountDue: 600, Paid: true}))

	found, err := store.FindByService(ctx, 7)
	require.NoError(t, err)
	assert.True(t, found.Paid)
}

func TestPaymentStore_FindByService_NotFound(t *testing.T) {
	store, err := NewPaymentStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.FindByService(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
