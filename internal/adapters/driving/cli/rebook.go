package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driving"
)

var rebookCmd = &cobra.Command{
	Use:   "rebook",
	Short: "Rebook a completed service",
	Long: `Rebook a service from your completed history.

The original plan and service bundle are reused; the new booking is
billed at live catalog prices and paid like any fresh booking.`,
	RunE: runRebook,
}

func init() {
	rootCmd.AddCommand(rebookCmd)
}

func runRebook(cmd *cobra.Command, _ []string) error {
	if customerService == nil || bookingService == nil || paymentService == nil {
		return errors.New("booking services not configured")
	}
	ctx := cmd.Context()
	reader := bufio.NewReader(os.Stdin)

	customer, err := promptLogin(cmd, reader)
	if err != nil {
		return err
	}

	bookings, err := customerService.Bookings(ctx, customer.ID)
	if err != nil {
		return err
	}
	completed := make([]domain.Service, 0)
	for i := range bookings {
		if bookings[i].Status == domain.StatusCompleted {
			completed = append(completed, bookings[i])
		}
	}
	if len(completed) == 0 {
		cmd.Println("No completed services to rebook.")
		return nil
	}

	printTitle(cmd, "Completed Services")
	for i := range completed {
		cmd.Printf("  %d | %s | %s\n", completed[i].ID, completed[i].Plan, completed[i].BookingDate)
	}

	var previous *domain.Service
	for previous == nil {
		id := promptInt(cmd, reader, "Service id to rebook (0 to cancel)")
		if id == 0 {
			cmd.Println("Rebooking cancelled.")
			return nil
		}
		for i := range completed {
			if completed[i].ID == id {
				previous = &completed[i]
				break
			}
		}
		if previous == nil {
			cmd.Println("Service id not found, try again.")
		}
	}

	params := driving.BookingParams{
		Plan:              previous.Plan,
		Locality:          customer.Locality,
		CustomerID:        customer.ID,
		CustomerGender:    customer.Gender,
		Address:           customer.Address,
		RequestedServices: previous.RequestedServices,
		GenderPref:        previous.GenderPref,
	}

	var service *domain.Service
	serviceType := selectOption(cmd, reader, "Rebook as:", []string{"Immediate", "Scheduling"})
	if serviceType == "Immediate" {
		service, err = bookingService.CreateImmediate(ctx, params)
	} else {
		date, startTime := promptFutureSlot(cmd, reader)
		service, err = bookingService.CreateScheduling(ctx, params, date, startTime)
	}
	if err != nil {
		return err
	}

	workIDs := workCatalog.IDsByNames(previous.RequestedServices)
	return runPaymentFlow(cmd, reader, service, workIDs)
}
