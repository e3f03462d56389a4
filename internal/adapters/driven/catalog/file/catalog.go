// Package file provides the TOML-backed work catalog. The catalog
// document lists the bookable work items and packages; when it is missing
// or unparseable the embedded default catalog is used instead. The catalog
// is loaded once at construction and never refreshed, so edits to the
// document are invisible until the next run.
package file

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
	"github.com/homecrew-labs/homecrew-cli/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is a TOML-file-backed implementation of driven.Catalog.
type Catalog struct {
	works    []domain.Work
	packages []domain.Package
}

// catalogDocument is the on-disk shape of the catalog file.
type catalogDocument struct {
	Works    []domain.Work    `toml:"works"`
	Packages []domain.Package `toml:"packages"`
}

// NewCatalog loads the catalog from the given TOML document. Only when the
// document is absent or unparseable does it fall back to the embedded
// default catalog; a valid document is taken as-is, empty lists included.
// Loading never fails.
func NewCatalog(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("catalog %s not readable: %v; using defaults", path, err)
		return &Catalog{works: defaultWorks(), packages: defaultPackages()}
	}

	var doc catalogDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		logger.Warn("catalog %s malformed: %v; using defaults", path, err)
		return &Catalog{works: defaultWorks(), packages: defaultPackages()}
	}

	return &Catalog{works: doc.Works, packages: doc.Packages}
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
