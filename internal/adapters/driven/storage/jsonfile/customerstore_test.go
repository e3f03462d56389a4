package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

func TestCustomerStore_SaveAndFindAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewCustomerStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, domain.Customer{
		ID:       "alice",
		Password: "secret",
		Name:     "Alice",
		Gender:   "F",
		Locality: "Patamata",
		Address:  "12 Lake Road",
	}))

	reopened, err := NewCustomerStore(dir)
	require.NoError(t, err)
	found, err := reopened.FindByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "secret", found.Password)
	assert.Equal(t, "Patamata", found.Locality)
}

func TestCustomerStore_Save_ReplacesByID(t *testing.T) {
	store, err := NewCustomerStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Customer{ID: "alice", Address: "old"}))
	require.NoError(t, store.Save(ctx, domain.Customer{ID: "alice", Address: "new"}))

	found, err := store.FindByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "new", found.Address)
}

func TestCustomerStore_FindByID_NotFound(t *testing.T) {
	store, err := NewCustomerStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.FindByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerStore_Exists(t *testing.T) {
	store, err := NewCustomerStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Customer{ID: "alice"}))

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCustomerStore_CorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewCustomerStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.json"), []byte("not json"), 0o600))

	exists, err := store.Exists(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, exists)
}
