package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceStatus_IsValid(t *testing.T) {
	assert.True(t, StatusRejected.IsValid())
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusAssigned.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, ServiceStatus(3).IsValid())
	assert.False(t, ServiceStatus(-2).IsValid())
}

func TestServiceStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusAssigned.IsTerminal())
}

func TestServiceStatus_Description(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Description())
	assert.Equal(t, "Worker Assigned", StatusAssigned.Description())
	assert.Equal(t, "Completed", StatusCompleted.Description())
	assert.Equal(t, "Rejected", StatusRejected.Description())
	assert.Equal(t, "Unknown", ServiceStatus(7).Description())
}

func TestServiceStatus_PersistedValues(t *testing.T) {
	// Numeric values are shared with the worker/admin subsystem.
	assert.Equal(t, -1, int(StatusRejected))
	assert.Equal(t, 0, int(StatusPending))
	assert.Equal(t, 1, int(StatusAssigned))
	assert.Equal(t, 2, int(StatusCompleted))
}

func TestServiceType_IsValid(t *testing.T) {
	assert.True(t, TypeImmediate.IsValid())
	assert.True(t, TypeScheduling.IsValid())
	assert.False(t, ServiceType("Later").IsValid())
}

func TestService_IsCurrent(t *testing.T) {
	assert.True(t, (&Service{Status: StatusPending}).IsCurrent())
	assert.True(t, (&Service{Status: StatusAssigned}).IsCurrent())
	assert.False(t, (&Service{Status: StatusCompleted}).IsCurrent())
	assert.False(t, (&Service{Status: StatusRejected}).IsCurrent())
}
