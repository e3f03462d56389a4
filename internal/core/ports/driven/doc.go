// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Store Contract
//
// Every store persists one collection as a single array-of-records
// document. Save is an upsert: the implementation scans the whole
// collection by key, replaces the matching element in place (keeping its
// position), appends otherwise, and then rewrites the entire collection.
// There are no partial writes, no locks and no version tokens; the last
// writer wins, including against the worker/admin process that shares the
// same files.
//
// Reads never fail to the caller: a missing or unparseable backing
// document is treated as an empty collection. The returned error slots
// exist for the interface's other implementations and are always nil on
// the degrade path.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
