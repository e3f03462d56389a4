package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/homecrew-labs/homecrew-cli/internal/adapters/driving/cli"
)

func main() {
	// Optional .env for local overrides (HOMECREW_DATA_DIR, HOMECREW_CONFIG_DIR).
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
