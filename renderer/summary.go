package renderer

import "github.com/ewise/expensewise"

// SummaryMarkdown renders the spending summary with the category breakdown.
func SummaryMarkdown(s expensewise.Summary) string {
	r := newReport()
	r.Printf("# Spending Summary\n\n")
	r.Printf("| Net Income | Total Income | Total Expenses |\n")
	r.Printf("|---:|---:|---:|\n")
	r.Printf("| %s | %s | %s |\n\n", s.Net, s.TotalIncome, s.TotalExpense)

	r.Printf("## Expense Breakdown by Category\n\n")
	if len(s.Categories) == 0 {
		r.Printf("No expenses recorded.\n")
		return r.String()
	}
	r.Printf("| Category | Amount Spent | %% of Total |\n")
	r.Printf("|:---|---:|---:|\n")
	for _, c := range s.Categories {
		r.Printf("| %s | %s | %.1f%% |\n", c.Category, c.Amount, c.Percent)
	}
	return r.String()
}
