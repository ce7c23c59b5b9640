package expensewise

import (
	"fmt"

	"github.com/ewise/expensewise/date"
)

// This file derives reporting figures from the journal. Nothing here is
// stored: budget spending and goal progress are recomputed on every call so
// they can never drift from the transactions.

// BudgetSpent returns the total magnitude of expenses linked to the named
// budget.
func (l *Ledger) BudgetSpent(name string) Money {
	spent := M(0)
	if name == "" {
		return spent
	}
	for _, tx := range l.transactions {
		if tx.Type == TxExpense && tx.LinkedBudget == name {
			spent = spent.Add(tx.Amount.Abs())
		}
	}
	return spent
}

// GoalProgress returns the effective saved amount of the goal: its stored
// base plus the magnitude of every expense linked to it.
func (l *Ledger) GoalProgress(g Goal) Money {
	saved := g.Saved
	if g.Name == "" {
		return saved
	}
	for _, tx := range l.transactions {
		if tx.Type == TxExpense && tx.LinkedGoal == g.Name && tx.Amount.IsNegative() {
			saved = saved.Add(tx.Amount.Abs())
		}
	}
	return saved
}

// CountdownState classifies a goal's due date relative to a reference day.
type CountdownState int

const (
	NoDueDate CountdownState = iota
	InvalidDueDate
	DueToday
	DaysLeft
	Overdue
)

// Countdown is the human-facing state of a goal deadline.
type Countdown struct {
	State CountdownState
	// Days until (or past, for Overdue) the due date.
	Days int
	// DueDate is the stored due date string, echoed back even when invalid.
	DueDate string
}

// String renders the countdown the way the goal cards show it.
func (c Countdown) String() string {
	switch c.State {
	case NoDueDate:
		return "No Due Date"
	case InvalidDueDate:
		return fmt.Sprintf("Invalid Due Date (%s)", c.DueDate)
	case DueToday:
		return fmt.Sprintf("Due Today (%s)", c.DueDate)
	case DaysLeft:
		return fmt.Sprintf("%d days left (Due: %s)", c.Days, c.DueDate)
	case Overdue:
		return fmt.Sprintf("Overdue by %d days (Due: %s)", c.Days, c.DueDate)
	}
	return "No Due Date"
}

// GoalCountdown evaluates the goal's due date against today.
func GoalCountdown(g Goal, today date.Date) Countdown {
	due, set, err := g.Due()
	if !set {
		return Countdown{State: NoDueDate}
	}
	if err != nil {
		return Countdown{State: InvalidDueDate, DueDate: g.DueDate}
	}
	days := today.DaysUntil(due)
	switch {
	case days == 0:
		return Countdown{State: DueToday, DueDate: g.DueDate}
	case days > 0:
		return Countdown{State: DaysLeft, Days: days, DueDate: g.DueDate}
	default:
		return Countdown{State: Overdue, Days: -days, DueDate: g.DueDate}
	}
}

// BudgetStatus is the read model of one budget row: the stored allocation
// plus the derived spending.
type BudgetStatus struct {
	Budget
	Spent Money
}

// BudgetStatuses returns every budget with its derived spending, sorted by
// name.
func (l *Ledger) BudgetStatuses() []BudgetStatus {
	budgets := l.Budgets()
	out := make([]BudgetStatus, len(budgets))
	for i, b := range budgets {
		out[i] = BudgetStatus{Budget: b, Spent: l.BudgetSpent(b.Name)}
	}
	return out
}

// GoalStatus is the read model of one goal card: the stored goal plus the
// derived progress and deadline countdown.
type GoalStatus struct {
	Goal
	EffectiveSaved Money
	Countdown      Countdown
}

// GoalStatuses returns every goal with its derived figures, in goal display
// order (due date ascending, open-ended last).
func (l *Ledger) GoalStatuses(today date.Date) []GoalStatus {
	goals := l.Goals()
	out := make([]GoalStatus, len(goals))
	for i, g := range goals {
		out[i] = GoalStatus{
			Goal:           g,
			EffectiveSaved: l.GoalProgress(g),
			Countdown:      GoalCountdown(g, today),
		}
	}
	return out
}
