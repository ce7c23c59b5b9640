package expensewise

import "sort"

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category string
	Amount   Money
	// Percent of total expenses, 0 when there are no expenses.
	Percent float64
}

// Summary aggregates the whole journal into income, expense and net totals
// with a per-category expense breakdown.
type Summary struct {
	TotalIncome  Money
	TotalExpense Money
	Net          Money
	Categories   []CategoryTotal
}

// Summarize computes the spending summary. Transfer legs are excluded, they
// move money between wallets without earning or spending any. Entries with
// an unknown type fall back on the sign of the amount, and an expense with
// no category counts as "Uncategorized".
func (l *Ledger) Summarize() Summary {
	income := M(0)
	expense := M(0)
	byCategory := make(map[string]Money)

	for _, tx := range l.transactions {
		if tx.Type.IsTransfer() {
			continue
		}
		isIncome := tx.Type == TxIncome || (tx.Type != TxExpense && tx.Amount.IsPositive())
		isExpense := tx.Type == TxExpense || (tx.Type != TxIncome && tx.Amount.IsNegative())
		switch {
		case isIncome:
			income = income.Add(tx.Amount)
		case isExpense:
			mag := tx.Amount.Abs()
			expense = expense.Add(mag)
			cat := tx.Category
			if cat == "" {
				cat = "Uncategorized"
			}
			byCategory[cat] = byCategory[cat].Add(mag)
		}
	}

	s := Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}
	for cat, amount := range byCategory {
		ct := CategoryTotal{Category: cat, Amount: amount}
		if !expense.IsZero() {
			ct.Percent, _ = amount.Div(expense).Mul(newDecimal(100)).Float64()
		}
		s.Categories = append(s.Categories, ct)
	}
	// Largest categories first, names break ties so the order is stable.
	sort.Slice(s.Categories, func(i, j int) bool {
		if c := s.Categories[i].Amount.Cmp(s.Categories[j].Amount); c != 0 {
			return c > 0
		}
		return s.Categories[i].Category < s.Categories[j].Category
	})
	return s
}
