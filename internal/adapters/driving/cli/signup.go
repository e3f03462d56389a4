package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new customer account",
	Long: `Register a new customer account interactively.

The chosen id must be unique; you will be asked for another one if it is
already taken.`,
	RunE: runSignup,
}

func init() {
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, _ []string) error {
	if customerService == nil {
		return errors.New("customer service not configured")
	}
	ctx := cmd.Context()
	reader := bufio.NewReader(os.Stdin)

	printTitle(cmd, "Sign Up")

	var id string
	for {
		id = promptNonEmpty(cmd, reader, "Choose an id")
		taken, err := customerService.IDExists(ctx, id)
		if err != nil {
			return err
		}
		if !taken {
			break
		}
		cmd.Println("That id is already taken, try another.")
	}

	cmd.Print("Password: ")
	password := readPassword(reader)
	cmd.Println()

	customer := domain.Customer{
		ID:       id,
		Password: password,
		Name:     promptNonEmpty(cmd, reader, "Name"),
		Gender:   selectGender(cmd, reader),
		Locality: selectLocality(cmd, reader),
		Address:  promptNonEmpty(cmd, reader, "Address"),
	}

	ok, err := customerService.Register(ctx, customer)
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println(errorStyle.Render("Registration failed: id already exists."))
		return nil
	}
	cmd.Println(successStyle.Render("Registration successful."))
	return nil
}
