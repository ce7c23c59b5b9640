package expensewise

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ewise/expensewise/date"
	"github.com/google/uuid"
)

// Rejection classes for command validation. Errors returned from ledger
// commands wrap one of these so callers can classify with errors.Is.
var (
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrNameTaken   = errors.New("name already exists")
	ErrReferenced  = errors.New("referenced by transactions")
	ErrNotFound    = errors.New("not found")
	ErrBadAmount   = errors.New("invalid amount")
	ErrBadCycle    = errors.New("invalid cycle")
	ErrBadDate     = errors.New("invalid date")
	ErrBadCategory = errors.New("invalid category")
	ErrBadWallet   = errors.New("invalid wallet")
	ErrNoUser      = errors.New("no user selected")
)

// newID returns a fresh entity identifier with the given prefix.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// Ledger is the in-memory state of one user: the entity collections, the
// transaction journal, the activity log, the settings and the category
// catalog. Commands mutate it; persistence is the Store's concern.
type Ledger struct {
	wallets      map[string]Wallet
	budgets      map[string]Budget
	goals        map[string]Goal
	transactions []Transaction
	activity     ActivityLog
	settings     Settings
	categories   []Category
}

// NewLedger creates an empty ledger with default settings and the built-in
// category catalog.
func NewLedger() *Ledger {
	return &Ledger{
		wallets:    make(map[string]Wallet),
		budgets:    make(map[string]Budget),
		goals:      make(map[string]Goal),
		settings:   defaultSettings(),
		categories: BaseCategories(),
	}
}

// Settings returns the user settings.
func (l *Ledger) Settings() Settings { return l.settings }

// SetTheme switches the presentation theme.
func (l *Ledger) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	l.settings.Theme = t
	l.activity.Append(fmt.Sprintf("Theme switched to %s", t))
	return nil
}

// Activity returns the activity log, oldest first.
func (l *Ledger) Activity() []ActivityEntry { return l.activity.Entries() }

// validateInstant checks the date and time strings of a new transaction.
func validateInstant(day, clock string) (timestamp string, err error) {
	d, err := date.Parse(day)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadDate, err)
	}
	c, err := date.ParseClock(clock)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadDate, err)
	}
	return date.DateTime{Date: d, Clock: c}.String(), nil
}

// validateNewTx checks the fields shared by every new transaction.
func (l *Ledger) validateNewTx(title, wallet string, amount Money) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title: %w", ErrEmptyName)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", ErrBadAmount)
	}
	if _, ok := l.walletByName(wallet); !ok {
		return fmt.Errorf("wallet %q: %w", wallet, ErrBadWallet)
	}
	return nil
}

// RecordExpense appends an expense. amount is the positive magnitude; the
// journal entry is stored negative. budget and goal optionally link the
// expense by name; a link to a name that no longer exists is dropped with a
// warning rather than rejecting the expense.
func (l *Ledger) RecordExpense(day, clock, title, wallet string, amount Money, category, budget, goal string) (Transaction, error) {
	if err := l.validateNewTx(title, wallet, amount); err != nil {
		return Transaction{}, err
	}
	timestamp, err := validateInstant(day, clock)
	if err != nil {
		return Transaction{}, err
	}
	if !l.hasCategory(category, KindExpense) {
		return Transaction{}, fmt.Errorf("category %q is not an expense category: %w", category, ErrBadCategory)
	}
	if budget != "" && !l.hasBudgetNamed(budget) {
		log.Printf("stale-link budget=%q: no longer exists, ignoring", budget)
		budget = ""
	}
	if goal != "" && !l.hasGoalNamed(goal) {
		log.Printf("stale-link goal=%q: no longer exists, ignoring", goal)
		goal = ""
	}

	tx := Transaction{
		Date:         day,
		Time:         clock,
		Timestamp:    timestamp,
		Title:        strings.TrimSpace(title),
		Amount:       amount.Neg(),
		Category:     category,
		Type:         TxExpense,
		Wallet:       wallet,
		LinkedBudget: budget,
		LinkedGoal:   goal,
	}
	l.transactions = append(l.transactions, tx)
	l.creditWallet(wallet, tx.Amount)

	msg := fmt.Sprintf("Added Expense: %s (%s) to %s", tx.Title, amount, category)
	if budget != "" {
		msg += fmt.Sprintf(" (Budget: %s)", budget)
	}
	if goal != "" {
		msg += fmt.Sprintf(" (Goal: %s)", goal)
	}
	l.activity.Append(msg)
	return tx, nil
}

// RecordIncome appends an income entry. amount is the positive magnitude.
func (l *Ledger) RecordIncome(day, clock, title, wallet string, amount Money, category string) (Transaction, error) {
	if err := l.validateNewTx(title, wallet, amount); err != nil {
		return Transaction{}, err
	}
	timestamp, err := validateInstant(day, clock)
	if err != nil {
		return Transaction{}, err
	}
	if !l.hasCategory(category, KindIncome) {
		return Transaction{}, fmt.Errorf("category %q is not an income category: %w", category, ErrBadCategory)
	}

	tx := Transaction{
		Date:      day,
		Time:      clock,
		Timestamp: timestamp,
		Title:     strings.TrimSpace(title),
		Amount:    amount,
		Category:  category,
		Type:      TxIncome,
		Wallet:    wallet,
	}
	l.transactions = append(l.transactions, tx)
	l.creditWallet(wallet, tx.Amount)
	l.activity.Append(fmt.Sprintf("Added Income: %s (%s) from %s", tx.Title, tx.Amount, category))
	return tx, nil
}

// RecordTransfer appends the two legs of a transfer between wallets as one
// atomic operation: either both legs enter the journal or neither does. Both
// wallets' cached balances move by the amount.
func (l *Ledger) RecordTransfer(day, clock, from, to string, amount Money) (out, in Transaction, err error) {
	if !amount.IsPositive() {
		return out, in, fmt.Errorf("amount must be positive: %w", ErrBadAmount)
	}
	if _, ok := l.walletByName(from); !ok {
		return out, in, fmt.Errorf("wallet %q: %w", from, ErrBadWallet)
	}
	if _, ok := l.walletByName(to); !ok {
		return out, in, fmt.Errorf("wallet %q: %w", to, ErrBadWallet)
	}
	if from == to {
		return out, in, fmt.Errorf("cannot transfer from %q to itself: %w", from, ErrBadWallet)
	}
	timestamp, err := validateInstant(day, clock)
	if err != nil {
		return out, in, err
	}

	out = Transaction{
		Date:        day,
		Time:        clock,
		Timestamp:   timestamp,
		Title:       fmt.Sprintf("Transfer to %s", to),
		Amount:      amount.Neg(),
		Category:    transferCategory,
		Type:        TxTransferOut,
		Wallet:      from,
		FromAccount: from,
		ToAccount:   to,
	}
	in = Transaction{
		Date:        day,
		Time:        clock,
		Timestamp:   timestamp,
		Title:       fmt.Sprintf("Transfer from %s", from),
		Amount:      amount,
		Category:    transferCategory,
		Type:        TxTransferIn,
		Wallet:      to,
		FromAccount: from,
		ToAccount:   to,
	}
	l.transactions = append(l.transactions, out, in)
	l.creditWallet(from, out.Amount)
	l.creditWallet(to, in.Amount)
	l.activity.Append(fmt.Sprintf("Added Transfer: %s from %s to %s", amount, from, to))
	return out, in, nil
}
