package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCmd_Use(t *testing.T) {
	assert.Equal(t, "catalog", catalogCmd.Use)
}

func TestCatalogCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range catalogCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "works")
	assert.Contains(t, names, "packages")
}

func TestCatalogWorksCmd_Executes(t *testing.T) {
	setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalog", "works"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Window Cleaning")
	assert.Contains(t, buf.String(), "₹600")
}

func TestCatalogPackagesCmd_Executes(t *testing.T) {
	setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalog", "packages"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "House Cleaning")
	assert.Contains(t, buf.String(), "includes: Window Cleaning, Mopping, Sweeping, Fan Cleaning, Bathroom Cleaning")
}

func TestCatalogCmd_ExecutesBothSections(t *testing.T) {
	setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalog"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Services")
	assert.Contains(t, buf.String(), "Packages")
}
