// Package jsonfile provides file-backed implementations of the driven
// store ports. Each collection is one JSON array-of-records document in
// the data directory, shared with the worker/admin subsystem that advances
// service lifecycles.
//
// Every mutation is a full read-modify-write of the collection. Reads
// degrade silently: a missing or unparseable document is treated as an
// empty collection and never surfaces an error. That keeps a broken data
// file from taking the whole tool down, at the cost of hiding corruption
// from the caller.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/homecrew-labs/homecrew-cli/internal/logger"
)

// Collection file names, fixed by the shared data layout.
const (
	customersFile = "customers.json"
	servicesFile  = "services.json"
	paymentsFile  = "payments.json"
)

// ensureFile creates the document as an empty array if it does not exist,
// creating parent directories as needed.
func ensureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte("[]\n"), 0o600)
}

// readArray loads a collection, degrading to empty on any failure.
func readArray[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("reading %s: %v; treating as empty", path, err)
		}
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("parsing %s: %v; treating as empty", path, err)
		return nil
	}
	return records
}

// writeArray rewrites the whole collection. Optional fields are omitted
// entirely via their omitempty tags, never written as null.
func writeArray[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

// upsert replaces the first element matching same in place, preserving
// positional order, or appends when there is no match.
func upsert[T any](records []T, record T, same func(T) bool) []T {
	for i := range records {
		if same(records[i]) {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}
