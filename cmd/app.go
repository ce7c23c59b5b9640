// Package cmd implements the CLI application to manage an expense ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/ewise/expensewise"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&profilesCmd{}, "profiles")
	c.Register(&addProfileCmd{}, "profiles")
	c.Register(&deleteProfileCmd{}, "profiles")

	c.Register(&walletsCmd{}, "wallets")
	c.Register(&addWalletCmd{}, "wallets")
	c.Register(&editWalletCmd{}, "wallets")
	c.Register(&deleteWalletCmd{}, "wallets")

	c.Register(&budgetsCmd{}, "budgets")
	c.Register(&addBudgetCmd{}, "budgets")
	c.Register(&editBudgetCmd{}, "budgets")
	c.Register(&deleteBudgetCmd{}, "budgets")

	c.Register(&goalsCmd{}, "goals")
	c.Register(&addGoalCmd{}, "goals")
	c.Register(&editGoalCmd{}, "goals")
	c.Register(&deleteGoalCmd{}, "goals")

	c.Register(&expenseCmd{}, "transactions")
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&findCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&logCmd{}, "reports")

	c.Register(&themeCmd{}, "settings")
	c.Register(&resetCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", "Path to the data directory (defaults to the user data home)")
var userID = flag.String("user", "", "User profile id to operate on")

// openStore opens the data directory selected with -data.
func openStore() (*expensewise.Store, error) {
	return expensewise.Open(*dataDir)
}

// selectUser opens the store and loads the ledger of the -user profile.
func selectUser() (*expensewise.Store, *expensewise.Ledger, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	if *userID == "" {
		return nil, nil, fmt.Errorf("missing -user flag: %w", expensewise.ErrNoUser)
	}
	l, err := s.Select(*userID)
	if err != nil {
		return nil, nil, err
	}
	return s, l, nil
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// closeStore saves the selected ledger back to disk.
func closeStore(s *expensewise.Store) subcommands.ExitStatus {
	if err := s.Close(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown report to the terminal, falling back to
// the raw source when the renderer cannot run.
func printMarkdown(src string) {
	out, err := glamour.Render(src, "auto")
	if err != nil {
		fmt.Print(src)
		return
	}
	fmt.Print(out)
}
