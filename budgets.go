package expensewise

import (
	"fmt"
	"sort"
	"strings"
)

// Cycle is the recurrence period of a budget allocation.
type Cycle string

const (
	CycleOnce    Cycle = "Once"
	CycleDaily   Cycle = "Daily"
	CycleWeekly  Cycle = "Weekly"
	CycleMonthly Cycle = "Monthly"
	CycleYearly  Cycle = "Yearly"
)

// Cycles lists the valid budget cycles in display order.
func Cycles() []Cycle {
	return []Cycle{CycleOnce, CycleDaily, CycleWeekly, CycleMonthly, CycleYearly}
}

// ParseCycle parses a Cycle from its string form.
func ParseCycle(str string) (Cycle, error) {
	for _, c := range Cycles() {
		if Cycle(str) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid cycle %q: %w", str, ErrBadCycle)
}

// Budget is a named spending envelope with an allocated amount per cycle.
// Spending against it is derived from the journal, never stored.
type Budget struct {
	ID        string
	Name      string
	Allocated Money
	Cycle     Cycle
}

func budgetToRecord(b Budget) Record {
	return Record{
		"name":      b.Name,
		"allocated": b.Allocated.Text(),
		"cycle":     string(b.Cycle),
	}
}

func budgetFromRecord(id string, rec Record) Budget {
	allocated, _ := ParseMoney(rec["allocated"])
	return Budget{
		ID:        id,
		Name:      rec["name"],
		Allocated: allocated,
		Cycle:     Cycle(rec["cycle"]),
	}
}

// Budgets returns the budgets sorted by name, case-insensitive.
func (l *Ledger) Budgets() []Budget {
	out := make([]Budget, 0, len(l.budgets))
	for _, b := range l.budgets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// BudgetNames returns the budget names sorted case-insensitive.
func (l *Ledger) BudgetNames() []string {
	budgets := l.Budgets()
	names := make([]string, len(budgets))
	for i, b := range budgets {
		names[i] = b.Name
	}
	return names
}

func (l *Ledger) budgetNameTaken(name, selfID string) bool {
	for id, b := range l.budgets {
		if id != selfID && strings.EqualFold(b.Name, name) {
			return true
		}
	}
	return false
}

func (l *Ledger) hasBudgetNamed(name string) bool {
	for _, b := range l.budgets {
		if b.Name == name {
			return true
		}
	}
	return false
}

func validateBudget(name string, allocated Money, cycle Cycle) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("budget name: %w", ErrEmptyName)
	}
	if !allocated.IsPositive() {
		return fmt.Errorf("allocated amount must be positive: %w", ErrBadAmount)
	}
	if _, err := ParseCycle(string(cycle)); err != nil {
		return err
	}
	return nil
}

// CreateBudget adds a new budget.
func (l *Ledger) CreateBudget(name string, allocated Money, cycle Cycle) (Budget, error) {
	name = strings.TrimSpace(name)
	if err := validateBudget(name, allocated, cycle); err != nil {
		return Budget{}, err
	}
	if l.budgetNameTaken(name, "") {
		return Budget{}, fmt.Errorf("budget %q: %w", name, ErrNameTaken)
	}
	b := Budget{ID: newID("budget"), Name: name, Allocated: allocated, Cycle: cycle}
	l.budgets[b.ID] = b
	l.activity.Append(fmt.Sprintf("Added Budget: %s", b.Name))
	return b, nil
}

// EditBudget updates an existing budget.
func (l *Ledger) EditBudget(id, name string, allocated Money, cycle Cycle) (Budget, error) {
	b, ok := l.budgets[id]
	if !ok {
		return Budget{}, fmt.Errorf("budget %q: %w", id, ErrNotFound)
	}
	name = strings.TrimSpace(name)
	if err := validateBudget(name, allocated, cycle); err != nil {
		return Budget{}, err
	}
	if l.budgetNameTaken(name, id) {
		return Budget{}, fmt.Errorf("budget %q: %w", name, ErrNameTaken)
	}
	b.Name = name
	b.Allocated = allocated
	b.Cycle = cycle
	l.budgets[id] = b
	l.activity.Append(fmt.Sprintf("Edited Budget: %s", b.Name))
	return b, nil
}

// DeleteBudget removes a budget. A budget linked by any transaction cannot
// be deleted.
func (l *Ledger) DeleteBudget(id string) error {
	b, ok := l.budgets[id]
	if !ok {
		return fmt.Errorf("budget %q: %w", id, ErrNotFound)
	}
	if b.Name != "" {
		for _, tx := range l.transactions {
			if tx.LinkedBudget == b.Name {
				return fmt.Errorf("budget %q is linked to existing transactions: %w", b.Name, ErrReferenced)
			}
		}
	}
	delete(l.budgets, id)
	l.activity.Append(fmt.Sprintf("Deleted Budget: %s", b.Name))
	return nil
}
