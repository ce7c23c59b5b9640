package expensewise

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ewise/expensewise/date"
)

// Goal is a saving target. The stored Saved amount is a manually adjusted
// base; the effective progress adds expense contributions linked to the goal
// (see GoalProgress).
//
// DueDate is kept in its stored string form. An unparseable due date must
// survive a save/load round trip so the goal can still report it as invalid.
type Goal struct {
	ID      string
	Name    string
	Target  Money
	Saved   Money
	DueDate string
}

// Due parses the goal's due date. ok is false when no due date is set; a set
// but unparseable date returns an error.
func (g Goal) Due() (d date.Date, ok bool, err error) {
	if g.DueDate == "" {
		return date.Date{}, false, nil
	}
	d, err = date.Parse(g.DueDate)
	if err != nil {
		return date.Date{}, true, err
	}
	return d, true, nil
}

func goalToRecord(g Goal) Record {
	return Record{
		"name":     g.Name,
		"target":   g.Target.Text(),
		"saved":    g.Saved.Text(),
		"due_date": g.DueDate,
	}
}

func goalFromRecord(id string, rec Record) Goal {
	target, _ := ParseMoney(rec["target"])
	saved, _ := ParseMoney(rec["saved"])
	return Goal{
		ID:      id,
		Name:    rec["name"],
		Target:  target,
		Saved:   saved,
		DueDate: rec["due_date"],
	}
}

// Goals returns the goals sorted by due date ascending, goals without a due
// date last, ties broken by name.
func (l *Ledger) Goals() []Goal {
	out := make([]Goal, 0, len(l.goals))
	for _, g := range l.goals {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		di, oki, erri := out[i].Due()
		dj, okj, errj := out[j].Due()
		ivalid := oki && erri == nil
		jvalid := okj && errj == nil
		if ivalid != jvalid {
			return ivalid
		}
		if ivalid && jvalid && di != dj {
			return di.Before(dj)
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// GoalNames returns the goal names sorted case-insensitive.
func (l *Ledger) GoalNames() []string {
	names := make([]string, 0, len(l.goals))
	for _, g := range l.goals {
		names = append(names, g.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

func (l *Ledger) goalNameTaken(name, selfID string) bool {
	for id, g := range l.goals {
		if id != selfID && strings.EqualFold(g.Name, name) {
			return true
		}
	}
	return false
}

func (l *Ledger) hasGoalNamed(name string) bool {
	for _, g := range l.goals {
		if g.Name == name {
			return true
		}
	}
	return false
}

func validateGoal(name string, target Money, dueDate string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("goal name: %w", ErrEmptyName)
	}
	if !target.IsPositive() {
		return fmt.Errorf("target amount must be positive: %w", ErrBadAmount)
	}
	if dueDate != "" {
		if _, err := date.Parse(dueDate); err != nil {
			return fmt.Errorf("%w: %v", ErrBadDate, err)
		}
	}
	return nil
}

// CreateGoal adds a new goal. The saved base always starts at zero. dueDate
// may be empty for an open-ended goal.
func (l *Ledger) CreateGoal(name string, target Money, dueDate string) (Goal, error) {
	name = strings.TrimSpace(name)
	if err := validateGoal(name, target, dueDate); err != nil {
		return Goal{}, err
	}
	if l.goalNameTaken(name, "") {
		return Goal{}, fmt.Errorf("goal %q: %w", name, ErrNameTaken)
	}
	g := Goal{ID: newID("goal"), Name: name, Target: target, Saved: M(0), DueDate: dueDate}
	l.goals[g.ID] = g
	l.activity.Append(fmt.Sprintf("Added Goal: %s", g.Name))
	return g, nil
}

// EditGoal updates an existing goal, including its saved base amount.
func (l *Ledger) EditGoal(id, name string, target, saved Money, dueDate string) (Goal, error) {
	g, ok := l.goals[id]
	if !ok {
		return Goal{}, fmt.Errorf("goal %q: %w", id, ErrNotFound)
	}
	name = strings.TrimSpace(name)
	if err := validateGoal(name, target, dueDate); err != nil {
		return Goal{}, err
	}
	if saved.IsNegative() {
		return Goal{}, fmt.Errorf("saved amount must be zero or positive: %w", ErrBadAmount)
	}
	if l.goalNameTaken(name, id) {
		return Goal{}, fmt.Errorf("goal %q: %w", name, ErrNameTaken)
	}
	g.Name = name
	g.Target = target
	g.Saved = saved
	g.DueDate = dueDate
	l.goals[id] = g
	l.activity.Append(fmt.Sprintf("Edited Goal: %s", g.Name))
	return g, nil
}

// DeleteGoal removes a goal. A goal linked by any transaction cannot be
// deleted.
func (l *Ledger) DeleteGoal(id string) error {
	g, ok := l.goals[id]
	if !ok {
		return fmt.Errorf("goal %q: %w", id, ErrNotFound)
	}
	if g.Name != "" {
		for _, tx := range l.transactions {
			if tx.LinkedGoal == g.Name {
				return fmt.Errorf("goal %q is linked to existing transactions: %w", g.Name, ErrReferenced)
			}
		}
	}
	delete(l.goals, id)
	l.activity.Append(fmt.Sprintf("Deleted Goal: %s", g.Name))
	return nil
}
