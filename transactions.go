package expensewise

import (
	"sort"

	"github.com/ewise/expensewise/date"
)

// TxType classifies a journal entry.
type TxType string

const (
	TxExpense     TxType = "expense"
	TxIncome      TxType = "income"
	TxTransferOut TxType = "transfer_out"
	TxTransferIn  TxType = "transfer_in"
)

// IsTransfer reports whether t is either leg of a transfer.
func (t TxType) IsTransfer() bool { return t == TxTransferOut || t == TxTransferIn }

// Transaction is one immutable journal entry. Amounts are signed: expenses
// and outgoing transfer legs are negative, income and incoming legs positive.
//
// Date, Time and Timestamp are kept in their stored string form so that
// entries written by hand, or by older versions, survive a round trip
// unchanged even when they do not parse. Ordering goes through When.
type Transaction struct {
	Date      string
	Time      string
	Timestamp string
	Title     string
	Amount    Money
	Category  string
	Type      TxType
	Wallet    string

	// Transfer legs only.
	FromAccount string
	ToAccount   string

	// Expense links only. These reference budgets and goals by name and may
	// go stale when the target is renamed; aggregation treats a stale link
	// as no link.
	LinkedBudget string
	LinkedGoal   string
}

// When returns the best-effort instant of the transaction for ordering:
// the timestamp when it parses, else the date at midnight, else the zero
// DateTime.
func (t Transaction) When() date.DateTime {
	if dt, err := date.ParseDateTime(t.Timestamp); err == nil {
		return dt
	}
	if d, err := date.Parse(t.Date); err == nil {
		return date.DateTime{Date: d}
	}
	return date.DateTime{}
}

func transactionToRecord(t Transaction) Record {
	return Record{
		"date":          t.Date,
		"time":          t.Time,
		"timestamp":     t.Timestamp,
		"title":         t.Title,
		"amount":        t.Amount.Text(),
		"category":      t.Category,
		"type":          string(t.Type),
		"wallet":        t.Wallet,
		"from_account":  t.FromAccount,
		"to_account":    t.ToAccount,
		"linked_budget": t.LinkedBudget,
		"linked_goal":   t.LinkedGoal,
	}
}

func transactionFromRecord(rec Record) Transaction {
	amount, _ := ParseMoney(rec["amount"])
	return Transaction{
		Date:         rec["date"],
		Time:         rec["time"],
		Timestamp:    rec["timestamp"],
		Title:        rec["title"],
		Amount:       amount,
		Category:     rec["category"],
		Type:         TxType(rec["type"]),
		Wallet:       rec["wallet"],
		FromAccount:  rec["from_account"],
		ToAccount:    rec["to_account"],
		LinkedBudget: rec["linked_budget"],
		LinkedGoal:   rec["linked_goal"],
	}
}

// Transactions returns the journal newest first. Entries on the same instant
// keep their journal order.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].When().Before(out[i].When())
	})
	return out
}
