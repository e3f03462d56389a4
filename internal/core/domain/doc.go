// Package domain defines the core business entities for HomeCrew.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Service: A booked service request and its lifecycle state
//   - Customer: A registered customer account
//   - Payment: The bill raised for a service and its settlement state
//   - Work / Package: Catalog entries for bookable work items and bundles
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
