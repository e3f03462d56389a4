package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

func TestBookCmd_Use(t *testing.T) {
	assert.Equal(t, "book", bookCmd.Use)
}

func TestPlanFromDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{name: "Basic", description: domain.PlanBasic.Description(), expected: "Basic"},
		{name: "Intermediate", description: domain.PlanIntermediate.Description(), expected: "Intermediate"},
		{name: "Premium", description: domain.PlanPremium.Description(), expected: "Premium"},
		{name: "Unrecognised passes through", description: "Gold", expected: "Gold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, planFromDescription(tt.description))
		})
	}
}
