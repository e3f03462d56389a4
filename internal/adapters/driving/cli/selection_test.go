package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

func TestValidatePicks(t *testing.T) {
	setupTestServices(t)

	tests := []struct {
		name    string
		tier    domain.PlanTier
		picks   []int
		wantErr bool
	}{
		{name: "Basic one pick", tier: domain.PlanBasic, picks: []int{1}, wantErr: false},
		{name: "Basic too many", tier: domain.PlanBasic, picks: []int{1, 2}, wantErr: true},
		{name: "Intermediate three picks", tier: domain.PlanIntermediate, picks: []int{1, 2, 3}, wantErr: false},
		{name: "Intermediate too few", tier: domain.PlanIntermediate, picks: []int{1, 2}, wantErr: true},
		{name: "Premium five picks", tier: domain.PlanPremium, picks: []int{1, 2, 3, 4, 5}, wantErr: false},
		{name: "Unknown work id", tier: domain.PlanBasic, picks: []int{42}, wantErr: true},
		{name: "Duplicate pick", tier: domain.PlanIntermediate, picks: []int{1, 2, 2}, wantErr: true},
		{name: "Unknown tier", tier: domain.PlanUnknown, picks: []int{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePicks(tt.tier, tt.picks, workCatalog)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
