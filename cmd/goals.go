package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/ewise/expensewise"
	"github.com/ewise/expensewise/date"
	"github.com/ewise/expensewise/renderer"
	"github.com/google/subcommands"
)

func findGoal(l *expensewise.Ledger, name string) (expensewise.Goal, error) {
	for _, g := range l.Goals() {
		if g.Name == name {
			return g, nil
		}
	}
	return expensewise.Goal{}, fmt.Errorf("goal %q: %w", name, expensewise.ErrNotFound)
}

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list goals with progress and countdown" }
func (*goalsCmd) Usage() string {
	return `xw goals -user <id>

  Lists the user's goals with effective saved amounts and due date countdowns.
`
}
func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.GoalsMarkdown(l.GoalStatuses(date.Today())))
	return closeStore(s)
}

type addGoalCmd struct {
	name    string
	target  string
	dueDate string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a new saving goal" }
func (*addGoalCmd) Usage() string {
	return `xw add-goal -user <id> -name <name> -target <amount> [-due <date>]

  Creates a goal with a zero saved base. The due date is optional.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the new goal.")
	f.StringVar(&c.target, "target", "1000.00", "Target amount.")
	f.StringVar(&c.dueDate, "due", "", "Due date (2006-01-02), empty for an open-ended goal.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	target, err := expensewise.ParseMoney(c.target)
	if err != nil {
		return fail(err)
	}
	g, err := l.CreateGoal(c.name, target, c.dueDate)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added goal %q (target %s)\n", g.Name, g.Target)
	return closeStore(s)
}

type editGoalCmd struct {
	name    string
	rename  string
	target  string
	saved   string
	dueDate string
}

func (*editGoalCmd) Name() string     { return "edit-goal" }
func (*editGoalCmd) Synopsis() string { return "update an existing goal" }
func (*editGoalCmd) Usage() string {
	return `xw edit-goal -user <id> -name <name> [-rename <new name>] [-target <amount>] [-saved <amount>] [-due <date>]

  Updates the goal, including its manually adjusted saved base. Omitted flags
  keep their current values.
`
}

func (c *editGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Current name of the goal.")
	f.StringVar(&c.rename, "rename", "", "New name.")
	f.StringVar(&c.target, "target", "", "New target amount.")
	f.StringVar(&c.saved, "saved", "", "New base saved amount.")
	f.StringVar(&c.dueDate, "due", "", "New due date (2006-01-02).")
}

func (c *editGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	g, err := findGoal(l, c.name)
	if err != nil {
		return fail(err)
	}
	name := g.Name
	if c.rename != "" {
		name = c.rename
	}
	target := g.Target
	if c.target != "" {
		target, err = expensewise.ParseMoney(c.target)
		if err != nil {
			return fail(err)
		}
	}
	saved := g.Saved
	if c.saved != "" {
		saved, err = expensewise.ParseMoney(c.saved)
		if err != nil {
			return fail(err)
		}
	}
	dueDate := g.DueDate
	if c.dueDate != "" {
		dueDate = c.dueDate
	}
	if _, err := l.EditGoal(g.ID, name, target, saved, dueDate); err != nil {
		return fail(err)
	}
	fmt.Printf("Edited goal %q\n", name)
	return closeStore(s)
}

type deleteGoalCmd struct {
	name string
}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a goal" }
func (*deleteGoalCmd) Usage() string {
	return `xw delete-goal -user <id> -name <name>

  Deletes the goal. A goal linked by any transaction cannot be deleted.
`
}

func (c *deleteGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal to delete.")
}

func (c *deleteGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	g, err := findGoal(l, c.name)
	if err != nil {
		return fail(err)
	}
	if err := l.DeleteGoal(g.ID); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted goal %q\n", g.Name)
	return closeStore(s)
}
