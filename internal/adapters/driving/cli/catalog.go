package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the service catalog",
	RunE:  runCatalog,
}

var catalogWorksCmd = &cobra.Command{
	Use:   "works",
	Short: "List bookable services",
	RunE:  runCatalogWorks,
}

var catalogPackagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List service packages",
	RunE:  runCatalogPackages,
}

func init() {
	catalogCmd.AddCommand(catalogWorksCmd)
	catalogCmd.AddCommand(catalogPackagesCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if err := runCatalogWorks(cmd, args); err != nil {
		return err
	}
	cmd.Println()
	return runCatalogPackages(cmd, args)
}

func runCatalogWorks(cmd *cobra.Command, _ []string) error {
	if workCatalog == nil {
		return errors.New("catalog not configured")
	}
	printTitle(cmd, "Services")
	for _, work := range workCatalog.Works() {
		cmd.Printf("  %2d  %-20s %-8s %4d min  %s\n",
			work.ID, work.Name, work.Category, work.TimeMinutes, formatAmount(work.Price))
	}
	return nil
}

func runCatalogPackages(cmd *cobra.Command, _ []string) error {
	if workCatalog == nil {
		return errors.New("catalog not configured")
	}
	printTitle(cmd, "Packages")
	for _, pkg := range workCatalog.Packages() {
		names := workCatalog.WorkNamesByIDs(pkg.WorkIDs)
		cmd.Printf("  %d  %s - %s\n", pkg.ID, pkg.Name, pkg.Description)
		cmd.Printf("     includes: %s\n", strings.Join(names, ", "))
	}
	return nil
}
