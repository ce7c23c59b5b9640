package expensewise

import (
	"testing"

	"github.com/ewise/expensewise/date"
)

func TestBudgetSpent(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.CreateBudget("Food", M(500), CycleMonthly); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordExpense("2025-03-02", "12:00", "Groceries", "Bank", M(50), "Groceries", "Food", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordExpense("2025-03-03", "12:00", "Dinner", "Bank", M(30), "Dining", "Food", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordExpense("2025-03-04", "12:00", "Cinema", "Bank", M(20), "Entertainment", "", ""); err != nil {
		t.Fatal(err)
	}
	if got := l.BudgetSpent("Food"); !got.Equal(M(80)) {
		t.Errorf("BudgetSpent(Food) = %s, want 80", got.Text())
	}
	if got := l.BudgetSpent("NoSuchBudget"); !got.IsZero() {
		t.Errorf("BudgetSpent(NoSuchBudget) = %s, want 0", got.Text())
	}
}

func TestGoalProgress(t *testing.T) {
	l := newTestLedger(t)
	g, err := l.CreateGoal("Vacation", M(2000), "")
	if err != nil {
		t.Fatal(err)
	}
	g, err = l.EditGoal(g.ID, "Vacation", M(2000), M(100), "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordExpense("2025-03-02", "12:00", "Deposit to fund", "Bank", M(250), "Other", "", "Vacation"); err != nil {
		t.Fatal(err)
	}
	if got := l.GoalProgress(g); !got.Equal(M(350)) {
		t.Errorf("GoalProgress = %s, want 350 (100 base + 250 linked)", got.Text())
	}
}

func TestGoalCountdown(t *testing.T) {
	today := date.MustParse("2025-06-15")
	testCases := []struct {
		name    string
		dueDate string
		want    string
	}{
		{name: "none", dueDate: "", want: "No Due Date"},
		{name: "invalid", dueDate: "someday", want: "Invalid Due Date (someday)"},
		{name: "today", dueDate: "2025-06-15", want: "Due Today (2025-06-15)"},
		{name: "future", dueDate: "2025-06-25", want: "10 days left (Due: 2025-06-25)"},
		{name: "past", dueDate: "2025-06-10", want: "Overdue by 5 days (Due: 2025-06-10)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := GoalCountdown(Goal{Name: "g", DueDate: tc.dueDate}, today).String()
			if got != tc.want {
				t.Errorf("countdown = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	l := newTestLedger(t) // 1000 income on Bank
	if _, err := l.RecordExpense("2025-03-02", "12:00", "Groceries", "Bank", M(300), "Groceries", "", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordExpense("2025-03-03", "12:00", "Dinner", "Bank", M(100), "Dining", "", ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := l.RecordTransfer("2025-03-04", "10:00", "Bank", "Cash", M(500)); err != nil {
		t.Fatal(err)
	}

	s := l.Summarize()
	if !s.TotalIncome.Equal(M(1000)) {
		t.Errorf("TotalIncome = %s, want 1000", s.TotalIncome.Text())
	}
	if !s.TotalExpense.Equal(M(400)) {
		t.Errorf("TotalExpense = %s, want 400 (transfers excluded)", s.TotalExpense.Text())
	}
	if !s.Net.Equal(M(600)) {
		t.Errorf("Net = %s, want 600", s.Net.Text())
	}
	if len(s.Categories) != 2 {
		t.Fatalf("got %d categories, want 2: %v", len(s.Categories), s.Categories)
	}
	if s.Categories[0].Category != "Groceries" || s.Categories[1].Category != "Dining" {
		t.Errorf("breakdown order = %q, %q; want largest first", s.Categories[0].Category, s.Categories[1].Category)
	}
	if s.Categories[0].Percent != 75 || s.Categories[1].Percent != 25 {
		t.Errorf("percentages = %v, %v; want 75, 25", s.Categories[0].Percent, s.Categories[1].Percent)
	}
}

func TestSummarizeTypeFallback(t *testing.T) {
	l := NewLedger()
	// Hand-written rows may carry no type at all; the sign decides then.
	l.transactions = append(l.transactions,
		Transaction{Title: "mystery in", Amount: M(50), Category: "Salary"},
		Transaction{Title: "mystery out", Amount: M(-20), Category: "Dining"},
	)
	s := l.Summarize()
	if !s.TotalIncome.Equal(M(50)) || !s.TotalExpense.Equal(M(20)) {
		t.Errorf("income=%s expense=%s, want 50/20", s.TotalIncome.Text(), s.TotalExpense.Text())
	}
}

func TestGoalsOrdering(t *testing.T) {
	l := NewLedger()
	if _, err := l.CreateGoal("Open ended", M(100), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateGoal("Later", M(100), "2025-12-01"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateGoal("Soon", M(100), "2025-06-01"); err != nil {
		t.Fatal(err)
	}
	goals := l.Goals()
	want := []string{"Soon", "Later", "Open ended"}
	for i, name := range want {
		if goals[i].Name != name {
			t.Errorf("goals[%d] = %q, want %q", i, goals[i].Name, name)
		}
	}
}

func TestBudgetStatuses(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.CreateBudget("Food", M(500), CycleMonthly); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordExpense("2025-03-02", "12:00", "Groceries", "Bank", M(50), "Groceries", "Food", ""); err != nil {
		t.Fatal(err)
	}
	statuses := l.BudgetStatuses()
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	if !statuses[0].Spent.Equal(M(50)) {
		t.Errorf("Spent = %s, want 50", statuses[0].Spent.Text())
	}
}
