// Package memory provides an in-memory implementation of driven.Catalog,
// built from caller-supplied works and packages. Used as the test double
// for the file-backed catalog.
package memory

import (
	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is an in-memory implementation of driven.Catalog.
type Catalog struct {
	works    []domain.Work
	packages []domain.Package
}

// NewCatalog creates a catalog over the given works and packages.
func NewCatalog(works []domain.Work, packages []domain.Package) *Catalog {
	return &Catalog{works: works, packages: packages}
}

// Works returns all catalog work items in catalog order.
func (c *Catalog) Works() []domain.Work {
	return c.works
}

// Packages returns all catalog packages in catalog order.
func (c *Catalog) Packages() []domain.Package {
	return c.packages
}

// WorkByID looks up a work item by id.
func (c *Catalog) WorkByID(id int) (*domain.Work, bool) {
	for i := range c.works {
		if c.works[i].ID == id {
			work := c.works[i]
			return &work, true
		}
	}
	return nil, false
}

// PackageByID looks up a package by id.
func (c *Catalog) PackageByID(id int) (*domain.Package, bool) {
	for i := range c.packages {
		if c.packages[i].ID == id {
			pkg := c.packages[i]
			return &pkg, true
		}
	}
	return nil, false
}

// WorkNamesByIDs resolves ids to work names, skipping unknown ids.
func (c *Catalog) WorkNamesByIDs(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if work, ok := c.WorkByID(id); ok {
			names = append(names, work.Name)
		}
	}
	return names
}

// IDsByNames resolves names to ids using the first case-sensitive match
// per name, skipping unmatched names.
func (c *Catalog) IDsByNames(names []string) []int {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		for i := range c.works {
			if c.works[i].Name == name {
				ids = append(ids, c.works[i].ID)
				break
			}
		}
	}
	return ids
}

// TotalPriceByIDs sums the prices of the matched work items.
// Unmatched ids contribute 0, never an error.
func (c *Catalog) TotalPriceByIDs(ids []int) float64 {
	total := 0.0
	for _, id := range ids {
		if work, ok := c.WorkByID(id); ok {
			total += work.Price
		}
	}
	return total
}
