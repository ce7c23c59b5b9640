package expensewise

import "github.com/lithammer/fuzzysearch/fuzzy"

// FindTransactions returns the journal entries whose title fuzzily matches
// the query, case-insensitive and accent-insensitive, newest first. An empty
// query matches everything.
func (l *Ledger) FindTransactions(query string) []Transaction {
	txs := l.Transactions()
	if query == "" {
		return txs
	}
	var out []Transaction
	for _, tx := range txs {
		if fuzzy.MatchNormalizedFold(query, tx.Title) {
			out = append(out, tx)
		}
	}
	return out
}
