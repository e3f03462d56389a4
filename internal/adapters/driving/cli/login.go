package cli

import (
	"bufio"
	"errors"

	"github.com/spf13/cobra"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

// promptLogin authenticates the customer interactively. Used by every
// command that acts on an account.
func promptLogin(cmd *cobra.Command, reader *bufio.Reader) (*domain.Customer, error) {
	if customerService == nil {
		return nil, errors.New("customer service not configured")
	}

	cmd.Print("Customer id: ")
	id := readLine(reader)
	cmd.Print("Password: ")
	password := readPassword(reader)
	cmd.Println()

	customer, err := customerService.Authenticate(cmd.Context(), id, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}
	cmd.Printf("Welcome, %s!\n", customer.Name)
	return customer, nil
}
