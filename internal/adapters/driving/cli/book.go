package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driving"
	"github.com/homecrew-labs/homecrew-cli/internal/timeutil"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a service bundle",
	Long: `Book an immediate or scheduled service bundle under a pricing plan.

You will be asked to log in, pick a plan and its services, and settle the
computed bill. The booking is submitted once payment succeeds.`,
	RunE: runBook,
}

func init() {
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, _ []string) error {
	if bookingService == nil || paymentService == nil {
		return errors.New("booking services not configured")
	}
	ctx := cmd.Context()
	reader := bufio.NewReader(os.Stdin)

	customer, err := promptLogin(cmd, reader)
	if err != nil {
		return err
	}

	serviceType := selectOption(cmd, reader, "Service type:", []string{"Immediate", "Scheduling"})

	planName := selectOption(cmd, reader, "Select plan:", []string{
		domain.PlanBasic.Description(),
		domain.PlanIntermediate.Description(),
		domain.PlanPremium.Description(),
	})
	tier := domain.ParsePlanTier(planFromDescription(planName))

	workIDs := selectWorkIDs(cmd, reader, tier)
	genderPref := selectGenderPref(cmd, reader)

	params := driving.BookingParams{
		Plan:              tier.String(),
		Locality:          customer.Locality,
		CustomerID:        customer.ID,
		CustomerGender:    customer.Gender,
		Address:           customer.Address,
		RequestedServices: workCatalog.WorkNamesByIDs(workIDs),
		GenderPref:        genderPref,
	}

	var service *domain.Service
	if serviceType == "Immediate" {
		service, err = bookingService.CreateImmediate(ctx, params)
	} else {
		date, startTime := promptFutureSlot(cmd, reader)
		service, err = bookingService.CreateScheduling(ctx, params, date, startTime)
	}
	if err != nil {
		return err
	}

	cmd.Printf("Estimated total before discount: %s\n", formatAmount(workCatalog.TotalPriceByIDs(workIDs)))
	return runPaymentFlow(cmd, reader, service, workIDs)
}

// planFromDescription folds a menu label back to its plan name.
func planFromDescription(description string) string {
	for _, name := range []string{domain.PlanNameBasic, domain.PlanNameIntermediate, domain.PlanNamePremium} {
		if description == domain.ParsePlanTier(name).Description() {
			return name
		}
	}
	return description
}

// promptFutureSlot reads a date and start time that lie strictly in the
// future, retrying on format or range errors.
func promptFutureSlot(cmd *cobra.Command, reader *bufio.Reader) (string, string) {
	var date string
	for {
		date = promptNonEmpty(cmd, reader, "Scheduled date (YYYY-MM-DD)")
		if !timeutil.IsValidDate(date) {
			cmd.Println("Invalid date, use YYYY-MM-DD.")
			continue
		}
		if !timeutil.IsTodayOrLater(date, clock) {
			cmd.Println("Date must be today or in the future.")
			continue
		}
		break
	}
	for {
		startTime := promptNonEmpty(cmd, reader, "Scheduled time (HH:MM:SS)")
		if !timeutil.IsValidTime(startTime) {
			cmd.Println("Invalid time, use HH:MM:SS.")
			continue
		}
		if !timeutil.IsFutureSlot(date, startTime, clock) {
			cmd.Println("Time must be in the future.")
			continue
		}
		return date, startTime
	}
}
