package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/ewise/expensewise"
	"github.com/ewise/expensewise/renderer"
	"github.com/google/subcommands"
)

func findBudget(l *expensewise.Ledger, name string) (expensewise.Budget, error) {
	for _, b := range l.Budgets() {
		if b.Name == name {
			return b, nil
		}
	}
	return expensewise.Budget{}, fmt.Errorf("budget %q: %w", name, expensewise.ErrNotFound)
}

type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list budgets with derived spending" }
func (*budgetsCmd) Usage() string {
	return `xw budgets -user <id>

  Lists the user's budgets with the amount spent against each.
`
}
func (*budgetsCmd) SetFlags(*flag.FlagSet) {}

func (*budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BudgetsMarkdown(l.BudgetStatuses()))
	return closeStore(s)
}

type addBudgetCmd struct {
	name      string
	allocated string
	cycle     string
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "create a new budget" }
func (*addBudgetCmd) Usage() string {
	return `xw add-budget -user <id> -name <name> -allocated <amount> [-cycle <cycle>]

  Creates a budget. Cycle is one of Once, Daily, Weekly, Monthly, Yearly.
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the new budget.")
	f.StringVar(&c.allocated, "allocated", "100.00", "Allocated amount per cycle.")
	f.StringVar(&c.cycle, "cycle", string(expensewise.CycleMonthly), "Budget cycle.")
}

func (c *addBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	allocated, err := expensewise.ParseMoney(c.allocated)
	if err != nil {
		return fail(err)
	}
	cycle, err := expensewise.ParseCycle(c.cycle)
	if err != nil {
		return fail(err)
	}
	b, err := l.CreateBudget(c.name, allocated, cycle)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added budget %q (%s per %s)\n", b.Name, b.Allocated, b.Cycle)
	return closeStore(s)
}

type editBudgetCmd struct {
	name      string
	rename    string
	allocated string
	cycle     string
}

func (*editBudgetCmd) Name() string     { return "edit-budget" }
func (*editBudgetCmd) Synopsis() string { return "update an existing budget" }
func (*editBudgetCmd) Usage() string {
	return `xw edit-budget -user <id> -name <name> [-rename <new name>] [-allocated <amount>] [-cycle <cycle>]

  Updates the budget. Omitted flags keep their current values.
`
}

func (c *editBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Current name of the budget.")
	f.StringVar(&c.rename, "rename", "", "New name.")
	f.StringVar(&c.allocated, "allocated", "", "New allocated amount.")
	f.StringVar(&c.cycle, "cycle", "", "New cycle.")
}

func (c *editBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	b, err := findBudget(l, c.name)
	if err != nil {
		return fail(err)
	}
	name := b.Name
	if c.rename != "" {
		name = c.rename
	}
	allocated := b.Allocated
	if c.allocated != "" {
		allocated, err = expensewise.ParseMoney(c.allocated)
		if err != nil {
			return fail(err)
		}
	}
	cycle := b.Cycle
	if c.cycle != "" {
		cycle, err = expensewise.ParseCycle(c.cycle)
		if err != nil {
			return fail(err)
		}
	}
	if _, err := l.EditBudget(b.ID, name, allocated, cycle); err != nil {
		return fail(err)
	}
	fmt.Printf("Edited budget %q\n", name)
	return closeStore(s)
}

type deleteBudgetCmd struct {
	name string
}

func (*deleteBudgetCmd) Name() string     { return "delete-budget" }
func (*deleteBudgetCmd) Synopsis() string { return "delete a budget" }
func (*deleteBudgetCmd) Usage() string {
	return `xw delete-budget -user <id> -name <name>

  Deletes the budget. A budget linked by any transaction cannot be deleted.
`
}

func (c *deleteBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the budget to delete.")
}

func (c *deleteBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	b, err := findBudget(l, c.name)
	if err != nil {
		return fail(err)
	}
	if err := l.DeleteBudget(b.ID); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted budget %q\n", b.Name)
	return closeStore(s)
}
