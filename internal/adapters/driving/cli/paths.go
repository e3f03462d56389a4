package cli

import "path/filepath"

// defaultDataDir places the collection files next to the config file,
// under a data/ subdirectory. The worker/admin tooling is pointed at the
// same directory.
func defaultDataDir(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "data")
}

// defaultCatalogPath places the catalog document next to the config file.
func defaultCatalogPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "catalog.toml")
}
