package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/oduffy/tracker"
	"github.com/oduffy/tracker/renderer"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "start an interactive paper-trading session" }
func (*runCmd) Usage() string {
	return `ptk run

  Starts an interactive session: register or log in, then buy and sell
  positions, move cash, and review your transaction history. All state
  is in memory and lost when the session ends.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := &session{
		registry: tracker.NewRegistry(),
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
	s.run()
	return subcommands.ExitSuccess
}

// session drives one interactive run of the tracker. It owns all input
// parsing and renders every error kind as a user-facing message; the
// registry only ever sees validated values.
type session struct {
	registry *tracker.Registry
	current  *tracker.Account // nil while logged out
	in       *bufio.Scanner
	out      io.Writer
}

func (s *session) run() {
	fmt.Fprintln(s.out, "Welcome to the ptk portfolio tracker!")
	for {
		if s.current == nil {
			if !s.loginMenu() {
				fmt.Fprintln(s.out, "Goodbye!")
				return
			}
		} else {
			s.dashboardMenu()
		}
	}
}

// loginMenu shows the logged-out menu. It returns false to end the session.
func (s *session) loginMenu() bool {
	fmt.Fprintln(s.out, "\n--- Main Menu ---")
	fmt.Fprintln(s.out, "1. Login")
	fmt.Fprintln(s.out, "2. Register")
	fmt.Fprintln(s.out, "3. Exit")

	choice, ok := s.promptInt("Choose an option: ")
	if !ok {
		return false
	}
	switch choice {
	case 1:
		s.handleLogin()
	case 2:
		s.handleRegister()
	case 3:
		return false
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	}
	return true
}

func (s *session) dashboardMenu() {
	printMarkdown(s.out, renderer.Dashboard(s.current))
	fmt.Fprintln(s.out, "1. View Portfolio")
	fmt.Fprintln(s.out, "2. Buy Stock")
	fmt.Fprintln(s.out, "3. Sell Stock")
	fmt.Fprintln(s.out, "4. Deposit Cash")
	fmt.Fprintln(s.out, "5. Withdraw Cash")
	fmt.Fprintln(s.out, "6. View Transaction History")
	fmt.Fprintln(s.out, "7. Logout")

	choice, ok := s.promptInt("Choose an option: ")
	if !ok {
		s.current = nil
		return
	}
	switch choice {
	case 1:
		printMarkdown(s.out, renderer.Portfolio(s.current.Holdings()))
	case 2:
		s.handleTrade(s.registry.Buy, "buy")
	case 3:
		s.handleTrade(s.registry.Sell, "sell")
	case 4:
		s.handleCash(s.registry.Deposit, "deposit")
	case 5:
		s.handleCash(s.registry.Withdraw, "withdraw")
	case 6:
		printMarkdown(s.out, renderer.History(s.current.Transactions()))
	case 7:
		s.current = nil
		fmt.Fprintln(s.out, "Logged out successfully.")
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	}
}

func (s *session) handleRegister() {
	username, ok := s.prompt("Enter new username: ")
	if !ok {
		return
	}
	password, ok := s.prompt("Enter new password: ")
	if !ok {
		return
	}

	if _, err := s.registry.Register(username, password); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Registration successful for: %s\n", username)
}

func (s *session) handleLogin() {
	username, ok := s.prompt("Enter username: ")
	if !ok {
		return
	}
	password, ok := s.prompt("Enter password: ")
	if !ok {
		return
	}

	a, err := s.registry.Login(username, password)
	switch {
	case errors.Is(err, tracker.ErrUserNotFound), errors.Is(err, tracker.ErrInvalidCredentials):
		fmt.Fprintln(s.out, "Login failed: wrong username or password.")
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	default:
		s.current = a
		fmt.Fprintf(s.out, "Login successful! Welcome, %s\n", username)
	}
}

// handleTrade prompts for ticker, quantity and price, then runs op
// (Buy or Sell).
func (s *session) handleTrade(op func(*tracker.Account, string, int64, tracker.Money) error, verb string) {
	line, ok := s.prompt("Enter stock ticker (e.g., AAPL): ")
	if !ok {
		return
	}
	ticker := strings.ToUpper(line)
	quantity, ok := s.promptPositiveInt("Enter quantity: ")
	if !ok {
		return
	}
	price, ok := s.promptPrice("Enter price per share: $")
	if !ok {
		return
	}

	if err := op(s.current, ticker, quantity, price); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s successful: %d shares of %s\n", capitalize(verb), quantity, ticker)
}

// handleCash prompts for an amount, then runs op (Deposit or Withdraw).
func (s *session) handleCash(op func(*tracker.Account, tracker.Money) error, verb string) {
	amount, ok := s.promptPrice("Enter amount: $")
	if !ok {
		return
	}
	if err := op(s.current, amount); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s successful: %s\n", capitalize(verb), amount)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// input helpers, all return ok=false on end of input.

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) promptInt(label string) (int64, bool) {
	for {
		line, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}
		return n, true
	}
}

func (s *session) promptPositiveInt(label string) (int64, bool) {
	for {
		n, ok := s.promptInt(label)
		if !ok {
			return 0, false
		}
		if n <= 0 {
			fmt.Fprintln(s.out, "Quantity must be positive.")
			continue
		}
		return n, true
	}
}

func (s *session) promptPrice(label string) (tracker.Money, bool) {
	for {
		line, ok := s.prompt(label)
		if !ok {
			return tracker.Money{}, false
		}
		m, err := tracker.ParseMoney(line, tracker.DefaultCurrency)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a decimal number (e.g., 150.75).")
			continue
		}
		if !m.IsPositive() {
			fmt.Fprintln(s.out, "Amount must be positive.")
			continue
		}
		return m, true
	}
}
