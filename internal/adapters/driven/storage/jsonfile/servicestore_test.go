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

func TestNewServiceStore_CreatesEmptyDocument(t *testing.T) {
	dir := t.TempDir()

	store, err := NewServiceStore(dir)

	require.NoError(t, err)
	require.NotNil(t, store)
	data, err := os.ReadFile(filepath.Join(dir, "services.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestServiceStore_NextID_Empty(t *testing.T) {
	store, err := NewServiceStore(t.TempDir())
	require.NoError(t, err)

	id, err := store.NextID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestServiceStore_NextID_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewServiceStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, domain.Service{ID: 4, CustomerID: "alice"}))
	require.NoError(t, store.Save(ctx, domain.Service{ID: 2, CustomerID: "alice"}))

	// A fresh store over the same file sees the same ids
	reopened, err := NewServiceStore(dir)
	require.NoError(t, err)
	id, err := reopened.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, id)
}

func TestServiceStore_Save_UpsertPreservesOrder(t *testing.T) {
	store, err := NewServiceStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Service{ID: 1, CustomerID: "alice", Plan: "Basic"}))
	require.NoError(t, store.Save(ctx, domain.Service{ID: 2, CustomerID: "alice", Plan: "Premium"}))
	require.NoError(t, store.Save(ctx, domain.Service{ID: 1, CustomerID: "alice", Plan: "Intermediate"}))

	services, err := store.FindByCustomer(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, services, 2)
	// The replaced record keeps its position
	assert.Equal(t, 1, services[0].ID)
	assert.Equal(t, "Intermediate", services[0].Plan)
	assert.Equal(t, 2, services[1].ID)
}

func TestServiceStore_OptionalFieldsOmittedWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewServiceStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), domain.Service{
		ID:                1,
		Type:              domain.TypeImmediate,
		Plan:              "Basic",
		CustomerID:        "alice",
		RequestedServices: []string{"Mopping"},
		GenderPref:        "NP",
	}))

	data, err := os.ReadFile(filepath.Join(dir, "services.json"))
	require.NoError(t, err)
	content := string(data)
	assert.NotContains(t, content, "workDate")
	assert.NotContains(t, content, "workEndTime")
	assert.NotContains(t, content, "assignedWorkerIDs")
	assert.NotContains(t, content, "reason")
	assert.NotContains(t, content, "price")
	assert.NotContains(t, content, "null")
}

func TestServiceStore_OptionalFieldsRoundTrip(t *testing.T) {
	store, err := NewServiceStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	workDate := "2025-06-01"
	workers := "W3,W7"
	price := 990.0
	require.NoError(t, store.Save(ctx, domain.Service{
		ID:                1,
		Status:            domain.StatusAssigned,
		CustomerID:        "alice",
		WorkDate:          &workDate,
		AssignedWorkerIDs: &workers,
		Price:             &price,
	}))

	saved, err := store.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, saved.WorkDate)
	assert.Equal(t, "2025-06-01", *saved.WorkDate)
	require.NotNil(t, saved.AssignedWorkerIDs)
	assert.Equal(t, "W3,W7", *saved.AssignedWorkerIDs)
	require.NotNil(t, saved.Price)
	assert.Equal(t, 990.0, *saved.Price)
	assert.Nil(t, saved.Reason)
}

func TestServiceStore_CorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewServiceStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "services.json"), []byte("{not json"), 0o600))

	id, err := store.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	services, err := store.FindByCustomer(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestServiceStore_NonArrayDocumentReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewServiceStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "services.json"), []byte(`{"id": 1}`), 0o600))

	id, err := store.NextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}
