package driven

import "github.com/homecrew-labs/homecrew-cli/internal/core/domain"

// Catalog is the authoritative set of bookable work items and packages.
//
// Implementations load their data once at construction and never refresh;
// edits to the backing document are invisible until restart. Lookups are
// lenient throughout: unknown ids and unmatched names are skipped, never
// reported as errors, and contribute nothing to totals.
type Catalog interface {
	// Works returns all catalog work items in catalog order.
	Works() []domain.Work

	// Packages returns all catalog packages in catalog order.
	Packages() []domain.Package

	// WorkByID looks up a work item by id.
	WorkByID(id int) (*domain.Work, bool)

	// PackageByID looks up a package by id.
	PackageByID(id int) (*domain.Package, bool)

	// WorkNamesByIDs resolves ids to work names, skipping unknown ids.
	WorkNamesByIDs(ids []int) []string

	// IDsByNames resolves names to work ids using the first
	// case-sensitive match per name, skipping unmatched names.
	IDsByNames(names []string) []int

	// TotalPriceByIDs sums the prices of the matched work items.
	// Unmatched ids contribute 0.
	TotalPriceByIDs(ids []int) float64
}
