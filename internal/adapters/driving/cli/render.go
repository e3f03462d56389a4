package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func printTitle(cmd *cobra.Command, title string) {
	cmd.Println(titleStyle.Render(title))
}

// printServiceSummary renders one booking, including any work-assignment
// details the admin side has written.
func printServiceSummary(cmd *cobra.Command, s *domain.Service) {
	cmd.Printf("%s %d\n", labelStyle.Render("--- Service"), s.ID)
	cmd.Printf("  Status: %s\n", s.Status.Description())
	cmd.Printf("  Type: %s | Plan: %s\n", s.Type, s.Plan)
	cmd.Printf("  Booked: %s %s\n", s.BookingDate, s.BookingTime)
	cmd.Printf("  Services: %s\n", strings.Join(s.RequestedServices, "; "))
	if s.WorkDate != nil {
		slot := *s.WorkDate
		if s.WorkStartTime != nil {
			slot += " " + *s.WorkStartTime
		}
		cmd.Printf("  Work slot: %s\n", slot)
	}
	if s.AssignedWorkerIDs != nil {
		cmd.Printf("  Workers: %s\n", *s.AssignedWorkerIDs)
	}
	if s.Reason != nil {
		cmd.Printf("  Rejection reason: %s\n", *s.Reason)
	}
	if s.Price != nil {
		cmd.Printf("  Price: %s\n", formatAmount(*s.Price))
	}
}

// printPaymentInfo renders a booking's payment state, if any.
func printPaymentInfo(cmd *cobra.Command, p *domain.Payment) {
	if p == nil {
		return
	}
	status := errorStyle.Render("UNPAID")
	if p.Paid {
		status = successStyle.Render("PAID")
	}
	cmd.Printf("  Payment: %s, amount %s\n", status, formatAmount(p.AmountDue))
}

// formatAmount renders a bill amount without trailing decimal noise.
func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("₹%d", int64(amount))
	}
	return fmt.Sprintf("₹%.2f", amount)
}
