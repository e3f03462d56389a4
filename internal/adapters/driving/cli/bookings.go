package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

var (
	flagHistory  bool
	flagRejected bool
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Show your bookings",
	Long: `Show your current bookings.

Use --history for completed services or --rejected for declined requests.`,
	RunE: runBookings,
}

func init() {
	bookingsCmd.Flags().BoolVar(&flagHistory, "history", false, "show completed services")
	bookingsCmd.Flags().BoolVar(&flagRejected, "rejected", false, "show rejected requests")
	rootCmd.AddCommand(bookingsCmd)
}

func runBookings(cmd *cobra.Command, _ []string) error {
	if customerService == nil || paymentService == nil {
		return errors.New("customer service not configured")
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

	var title string
	var include func(*domain.Service) bool
	switch {
	case flagHistory:
		title = "Service History (Completed)"
		include = func(s *domain.Service) bool { return s.Status == domain.StatusCompleted }
	case flagRejected:
		title = "Rejected Requests"
		include = func(s *domain.Service) bool { return s.Status == domain.StatusRejected }
	default:
		title = "Current Bookings"
		include = func(s *domain.Service) bool { return s.IsCurrent() }
	}

	printTitle(cmd, title)
	found := false
	for i := range bookings {
		if !include(&bookings[i]) {
			continue
		}
		found = true
		printServiceSummary(cmd, &bookings[i])
		payment, err := paymentService.GetPayment(ctx, bookings[i].ID)
		if err != nil {
			return err
		}
		printPaymentInfo(cmd, payment)
	}
	if !found {
		cmd.Println("Nothing to show.")
	}
	return nil
}
