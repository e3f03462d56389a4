package domain

const unknownDescription = "Unknown"

// PlanTier is the closed set of pricing plan brackets. A Service stores the
// tier as a free string in its Plan field (the persisted layout demands
// it); ParsePlanTier folds that string into this tagged set so the
// discount dispatch is exhaustive and the fallback path is explicit.
type PlanTier int

// Available plan tiers.
const (
	// PlanUnknown is the fallback for unrecognised plan names.
	// It applies no discount.
	PlanUnknown PlanTier = iota

	// PlanBasic covers a single work item at full price.
	PlanBasic

	// PlanIntermediate covers three work items at 10% off.
	PlanIntermediate

	// PlanPremium covers five work items or a package at 20% off.
	PlanPremium
)

// Plan tier names as stored in Service.Plan. Matching is case-sensitive.
const (
	PlanNameBasic        = "Basic"
	PlanNameIntermediate = "Intermediate"
	PlanNamePremium      = "Premium"
)

// ParsePlanTier maps a stored plan name to its tier.
// Unrecognised names map to PlanUnknown, never an error.
func ParsePlanTier(name string) PlanTier {
	switch name {
	case PlanNameBasic:
		return PlanBasic
	case PlanNameIntermediate:
		return PlanIntermediate
	case PlanNamePremium:
		return PlanPremium
	default:
		return PlanUnknown
	}
}

// IsValid returns true if the tier is one of the named plans.
func (t PlanTier) IsValid() bool {
	switch t {
	case PlanBasic, PlanIntermediate, PlanPremium:
		return true
	default:
		return false
	}
}

// Apply computes the discounted price for a base catalog total.
// Basic and Unknown charge the undiscounted sum.
func (t PlanTier) Apply(base float64) float64 {
	switch t {
	case PlanIntermediate:
		return base * 0.90
	case PlanPremium:
		return base * 0.80
	default:
		return base
	}
}

// SelectionCount returns how many individual work items the tier entitles
// the customer to pick. Premium may alternatively select one package.
func (t PlanTier) SelectionCount() int {
	switch t {
	case PlanBasic:
		return 1
	case PlanIntermediate:
		return 3
	case PlanPremium:
		return 5
	default:
		return 0
	}
}

// AllowsPackage returns true if the tier may book a whole package
// instead of individual work items.
func (t PlanTier) AllowsPackage() bool {
	return t == PlanPremium
}

// String returns the plan name, or "Unknown" for the fallback tier.
func (t PlanTier) String() string {
	switch t {
	case PlanBasic:
		return PlanNameBasic
	case PlanIntermediate:
		return PlanNameIntermediate
	case PlanPremium:
		return PlanNamePremium
	default:
		return unknownDescription
	}
}

// Description returns a human-readable summary of the tier's terms.
func (t PlanTier) Description() string {
	switch t {
	case PlanBasic:
		return "Basic (1 service, no discount)"
	case PlanIntermediate:
		return "Intermediate (3 services, 10% off)"
	case PlanPremium:
		return "Premium (5 services or 1 package, 20% off)"
	default:
		return unknownDescription
	}
}
