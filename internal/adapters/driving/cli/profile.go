package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile details",
	RunE:  runProfileShow,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit password, locality or address",
	RunE:  runProfileEdit,
}

func init() {
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if customerService == nil {
		return errors.New("customer service not configured")
	}
	reader := bufio.NewReader(os.Stdin)

	customer, err := promptLogin(cmd, reader)
	if err != nil {
		return err
	}

	printTitle(cmd, "Profile Details")
	cmd.Printf("  Id: %s\n", customer.ID)
	cmd.Printf("  Name: %s\n", customer.Name)
	cmd.Printf("  Gender: %s\n", customer.Gender)
	cmd.Printf("  Locality: %s\n", customer.Locality)
	cmd.Printf("  Address: %s\n", customer.Address)
	return nil
}

func runProfileEdit(cmd *cobra.Command, _ []string) error {
	if customerService == nil {
		return errors.New("customer service not configured")
	}
	ctx := cmd.Context()
	reader := bufio.NewReader(os.Stdin)

	customer, err := promptLogin(cmd, reader)
	if err != nil {
		return err
	}

	field := selectOption(cmd, reader, "Edit which field?",
		[]string{"Password", "Locality", "Address"})
	switch field {
	case "Password":
		cmd.Print("Old password: ")
		if readPassword(reader) != customer.Password {
			cmd.Println()
			cmd.Println(errorStyle.Render("Incorrect old password."))
			return nil
		}
		cmd.Println()
		cmd.Print("New password: ")
		customer.Password = readPassword(reader)
		cmd.Println()
	case "Locality":
		customer.Locality = selectLocality(cmd, reader)
	case "Address":
		customer.Address = promptNonEmpty(cmd, reader, "New address")
	}

	if err := customerService.Update(ctx, *customer); err != nil {
		return err
	}
	cmd.Println(successStyle.Render(field + " updated."))
	return nil
}
