package renderer

import "github.com/ewise/expensewise"

// TransactionsMarkdown renders journal entries, expected newest first.
func TransactionsMarkdown(title string, txs []expensewise.Transaction) string {
	r := newReport()
	r.Printf("# %s\n\n", title)
	if len(txs) == 0 {
		r.Printf("No transactions.\n")
		return r.String()
	}
	r.Printf("| Date | Time | Title | Category | Wallet | Amount |\n")
	r.Printf("|:---|:---|:---|:---|:---|---:|\n")
	for _, tx := range txs {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Time, tx.Title, tx.Category, tx.Wallet, tx.Amount.SignedString())
	}
	return r.String()
}
