package cli

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// localities serviced by the marketplace.
var localities = []string{
	"Moghalrajpuram",
	"Bhavanipuram",
	"Patamata",
	"Gayatri Nagar",
	"Benz Circle",
	"SN Puram",
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// parseChoice parses a 1-based menu choice, returning def when the input
// is empty and 0 when it is out of range.
func parseChoice(input string, max, def int) int {
	if input == "" {
		return def
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > max {
		return 0
	}
	return n
}

// readPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (tests, pipes).
func readPassword(reader *bufio.Reader) string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	return readLine(reader)
}

// promptNonEmpty reads until the user enters a non-empty line.
func promptNonEmpty(cmd *cobra.Command, reader *bufio.Reader, label string) string {
	for {
		cmd.Printf("%s: ", label)
		if input := readLine(reader); input != "" {
			return input
		}
		cmd.Println("Value cannot be empty, try again.")
	}
}

// promptInt reads until the user enters an integer.
func promptInt(cmd *cobra.Command, reader *bufio.Reader, label string) int {
	for {
		cmd.Printf("%s: ", label)
		n, err := strconv.Atoi(readLine(reader))
		if err == nil {
			return n
		}
		cmd.Println("Enter a number.")
	}
}

// promptFloat reads until the user enters a number.
func promptFloat(cmd *cobra.Command, reader *bufio.Reader, label string) float64 {
	for {
		cmd.Printf("%s: ", label)
		f, err := strconv.ParseFloat(readLine(reader), 64)
		if err == nil {
			return f
		}
		cmd.Println("Enter an amount.")
	}
}

// selectOption shows a numbered menu and reads until a valid choice.
func selectOption(cmd *cobra.Command, reader *bufio.Reader, label string, options []string) string {
	for {
		cmd.Println(label)
		for i, opt := range options {
			cmd.Printf("  %d. %s\n", i+1, opt)
		}
		cmd.Print("Enter choice: ")
		if idx := parseChoice(readLine(reader), len(options), 0); idx != 0 {
			return options[idx-1]
		}
		cmd.Println("Invalid choice, try again.")
	}
}

func selectGender(cmd *cobra.Command, reader *bufio.Reader) string {
	choice := selectOption(cmd, reader, "Select gender:", []string{"Male", "Female"})
	if choice == "Male" {
		return "M"
	}
	return "F"
}

func selectLocality(cmd *cobra.Command, reader *bufio.Reader) string {
	return selectOption(cmd, reader, "Select locality:", localities)
}

func selectGenderPref(cmd *cobra.Command, reader *bufio.Reader) string {
	choice := selectOption(cmd, reader, "Worker gender preference:",
		[]string{"No preference", "Male", "Female"})
	switch choice {
	case "Male":
		return "M"
	case "Female":
		return "F"
	default:
		return "NP"
	}
}
