package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
)

// validatePicks enforces the selection rules the booking service trusts
// the CLI to apply: the pick count must match the plan tier, every id
// must be a catalog work item, and no id may repeat.
func validatePicks(tier domain.PlanTier, picks []int, catalog driven.Catalog) error {
	if !tier.IsValid() {
		return fmt.Errorf("%w: unknown plan", domain.ErrInvalidInput)
	}
	if len(picks) != tier.SelectionCount() {
		return fmt.Errorf("%w: plan %s needs exactly %d services", domain.ErrInvalidInput, tier, tier.SelectionCount())
	}
	seen := make(map[int]bool, len(picks))
	for _, id := range picks {
		if _, ok := catalog.WorkByID(id); !ok {
			return fmt.Errorf("%w: no service with id %d", domain.ErrInvalidInput, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: service %d selected twice", domain.ErrInvalidInput, id)
		}
		seen[id] = true
	}
	return nil
}

// listWorks prints the bookable work items.
func listWorks(cmd *cobra.Command) {
	for _, work := range workCatalog.Works() {
		cmd.Printf("  %d) %s (%s, %s)\n", work.ID, work.Name, work.Category, formatAmount(work.Price))
	}
}

// selectIndividualWorks prompts for the tier's number of work ids,
// retrying the whole selection until it validates.
func selectIndividualWorks(cmd *cobra.Command, reader *bufio.Reader, tier domain.PlanTier) []int {
	count := tier.SelectionCount()
	for {
		cmd.Printf("Select %d service(s):\n", count)
		listWorks(cmd)
		picks := make([]int, 0, count)
		for i := 0; i < count; i++ {
			picks = append(picks, promptInt(cmd, reader, fmt.Sprintf("Service id %d of %d", i+1, count)))
		}
		if err := validatePicks(tier, picks, workCatalog); err != nil {
			cmd.Printf("%s\n", errorStyle.Render(err.Error()))
			continue
		}
		return picks
	}
}

// selectPackage prompts for one of the catalog packages and returns its
// bundled work ids.
func selectPackage(cmd *cobra.Command, reader *bufio.Reader) []int {
	for {
		cmd.Println("Select a package:")
		for _, pkg := range workCatalog.Packages() {
			cmd.Printf("  %d) %s - %s\n", pkg.ID, pkg.Name, pkg.Description)
		}
		id := promptInt(cmd, reader, "Package id")
		if pkg, ok := workCatalog.PackageByID(id); ok {
			return pkg.WorkIDs
		}
		cmd.Println("Invalid package, try again.")
	}
}

// selectWorkIDs resolves the customer's service choices for a plan tier.
// Premium may book a package instead of individual items, when the
// catalog defines any.
func selectWorkIDs(cmd *cobra.Command, reader *bufio.Reader, tier domain.PlanTier) []int {
	if tier.AllowsPackage() && len(workCatalog.Packages()) > 0 {
		choice := selectOption(cmd, reader, "Premium plan:",
			[]string{"Select 1 package", fmt.Sprintf("Select %d individual services", tier.SelectionCount())})
		if choice == "Select 1 package" {
			return selectPackage(cmd, reader)
		}
	}
	return selectIndividualWorks(cmd, reader, tier)
}
