package renderer

import "github.com/ewise/expensewise"

// WalletsMarkdown renders the wallet list with balances.
func WalletsMarkdown(wallets []expensewise.Wallet) string {
	r := newReport()
	r.Printf("# Wallets\n\n")
	if len(wallets) == 0 {
		r.Printf("No wallets.\n")
		return r.String()
	}
	r.Printf("| Wallet | Balance |\n")
	r.Printf("|:---|---:|\n")
	total := expensewise.M(0)
	for _, w := range wallets {
		r.Printf("| %s | %s |\n", w.Name, w.Balance)
		total = total.Add(w.Balance)
	}
	r.Printf("| **Total** | **%s** |\n", total)
	return r.String()
}
