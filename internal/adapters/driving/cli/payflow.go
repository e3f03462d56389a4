package cli

import (
	"bufio"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

// runPaymentFlow raises the bill for a freshly created booking and walks
// the payment menu until the bill is settled or the customer backs out.
// Payment here is a local confirmation step: the amount entered must
// match the bill exactly.
func runPaymentFlow(cmd *cobra.Command, reader *bufio.Reader, service *domain.Service, workIDs []int) error {
	ctx := cmd.Context()

	payment, err := paymentService.GeneratePayment(ctx, service, workIDs)
	if err != nil {
		return err
	}

	printTitle(cmd, "Payment Required")
	cmd.Printf("Total bill: %s\n", formatAmount(payment.AmountDue))

	for {
		method := selectOption(cmd, reader, "Payment method:",
			[]string{"UPI", "Credit/Debit Card", "Net Banking", "Cancel"})
		if method == "Cancel" {
			cmd.Println("Payment not processed. The booking stays unpaid.")
			return nil
		}

		cmd.Printf("Processing via %s...\n", method)
		amount := promptFloat(cmd, reader, "Enter exact amount to pay")

		ok, err := paymentService.ProcessPayment(ctx, service.ID, amount)
		if err != nil {
			return err
		}
		if ok {
			cmd.Println(successStyle.Render("Payment successful."))
			cmd.Printf("Receipt reference: %s\n", uuid.NewString())
			cmd.Println("Service request submitted.")
			return nil
		}
		cmd.Printf("%s\n", errorStyle.Render(
			"Payment failed: amount must be exactly "+formatAmount(payment.AmountDue)))
	}
}
