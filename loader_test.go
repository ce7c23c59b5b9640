package expensewise

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// openTestStore opens a store on a fresh directory and returns it with the
// synthesized demo profile.
func openTestStore(t *testing.T) (*Store, Profile) {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	profiles := s.Profiles().Profiles()
	if len(profiles) != 1 {
		t.Fatalf("fresh store has %d profiles, want 1 demo profile", len(profiles))
	}
	return s, profiles[0]
}

func TestOpenSynthesizesDemoProfile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	p := s.Profiles().Profiles()[0]
	if p.Name != "Demo User" {
		t.Errorf("demo profile name = %q", p.Name)
	}
	if !validIconColor(p.IconColor) {
		t.Errorf("demo icon color = %q", p.IconColor)
	}
	// The demo profile is saved immediately, so reopening finds it.
	if _, err := os.Stat(filepath.Join(dir, "user_profiles.csv")); err != nil {
		t.Errorf("roster file not written: %v", err)
	}
	s2, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.Profiles().Profiles(); len(got) != 1 || got[0].ID != p.ID {
		t.Errorf("reopened roster = %v, want the saved demo profile", got)
	}
}

func TestSelectSeedsDefaults(t *testing.T) {
	s, p := openTestStore(t)
	l, err := s.Select(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	wallets := l.Wallets()
	if len(wallets) != 1 || wallets[0].Name != "Cash" || !wallets[0].Balance.IsZero() {
		t.Errorf("default wallets = %v, want a single zero Cash wallet", wallets)
	}
	if l.Settings().Theme != ThemeDark {
		t.Errorf("default theme = %q, want dark", l.Settings().Theme)
	}
	if len(l.Categories(KindExpense)) == 0 || len(l.Categories(KindIncome)) == 0 {
		t.Error("category catalog not seeded")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	p := s.Profiles().Profiles()[0]
	l, err := s.Select(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateWallet("Bank"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordIncome("2025-03-01", "09:00", "Salary", "Bank", M(1000), "Salary"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateBudget("Food", M(500), CycleMonthly); err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateGoal("Vacation", M(2000), "2025-12-01"); err != nil {
		t.Fatal(err)
	}
	if err := l.SetTheme(ThemeLight); err != nil {
		t.Fatal(err)
	}
	activityLen := len(l.Activity())
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	l2, err := s2.Select(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	bank, ok := l2.walletByName("Bank")
	if !ok || !bank.Balance.Equal(M(1000)) {
		t.Errorf("reloaded Bank = %+v, want balance 1000", bank)
	}
	if got := l2.Transactions(); len(got) != 1 || got[0].Title != "Salary" {
		t.Errorf("reloaded transactions = %v", got)
	}
	budgets := l2.Budgets()
	if len(budgets) != 1 || !budgets[0].Allocated.Equal(M(500)) || budgets[0].Cycle != CycleMonthly {
		t.Errorf("reloaded budgets = %v", budgets)
	}
	goals := l2.Goals()
	if len(goals) != 1 || goals[0].DueDate != "2025-12-01" {
		t.Errorf("reloaded goals = %v", goals)
	}
	if l2.Settings().Theme != ThemeLight {
		t.Errorf("reloaded theme = %q, want light", l2.Settings().Theme)
	}
	if len(l2.Activity()) != activityLen {
		t.Errorf("reloaded activity has %d entries, want %d", len(l2.Activity()), activityLen)
	}
}

func TestInvalidDueDateSurvivesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	p := s.Profiles().Profiles()[0]
	l, err := s.Select(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	// Simulate a hand-edited goals file with an unparseable due date.
	l.goals["goal_x"] = Goal{ID: "goal_x", Name: "Odd", Target: M(10), DueDate: "not-a-date"}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, _ := Open(dir)
	l2, err := s2.Select(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	g := l2.goals["goal_x"]
	if g.DueDate != "not-a-date" {
		t.Errorf("due date = %q, want the stored text preserved", g.DueDate)
	}
}

func TestResetUserData(t *testing.T) {
	s, p := openTestStore(t)
	l, err := s.Select(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateWallet("Bank"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordIncome("2025-03-01", "09:00", "Salary", "Bank", M(1000), "Salary"); err != nil {
		t.Fatal(err)
	}
	if err := s.ResetUserData(); err != nil {
		t.Fatal(err)
	}
	l, err = s.Ledger()
	if err != nil {
		t.Fatal(err)
	}
	wallets := l.Wallets()
	if len(wallets) != 1 || wallets[0].Name != "Cash" || !wallets[0].Balance.IsZero() {
		t.Errorf("after reset wallets = %v, want a single zero Cash wallet", wallets)
	}
	if got := l.Transactions(); len(got) != 0 {
		t.Errorf("after reset %d transactions remain", len(got))
	}
	// Reset saves immediately: a reload sees the cleared state.
	s2, _ := Open(s.Dir())
	l2, err := s2.Select(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := l2.Transactions(); len(got) != 0 {
		t.Errorf("reloaded after reset: %d transactions remain", len(got))
	}
}

func TestDeleteUserProfile(t *testing.T) {
	s, p := openTestStore(t)
	l, err := s.Select(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordIncome("2025-03-01", "09:00", "Salary", "Cash", M(10), "Salary"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteUserProfile(); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Profiles().Get(p.ID); ok {
		t.Error("profile still in roster after delete")
	}
	for _, name := range []string{"wallets", "budgets", "goals", "transactions", "activity_log"} {
		path := filepath.Join(s.Dir(), name+"_"+p.ID+".csv")
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("user file %q still exists", path)
		}
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), "settings_"+p.ID+".json")); !os.IsNotExist(err) {
		t.Error("settings file still exists")
	}
	if _, err := s.Ledger(); !errors.Is(err, ErrNoUser) {
		t.Errorf("ledger after delete: err = %v, want %v", err, ErrNoUser)
	}
}

func TestLedgerWithoutSelection(t *testing.T) {
	s, _ := openTestStore(t)
	if _, err := s.Ledger(); !errors.Is(err, ErrNoUser) {
		t.Errorf("err = %v, want %v", err, ErrNoUser)
	}
	if err := s.Save(); !errors.Is(err, ErrNoUser) {
		t.Errorf("Save err = %v, want %v", err, ErrNoUser)
	}
	if _, err := s.Select("user_nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Select err = %v, want %v", err, ErrNotFound)
	}
}
