package renderer

import "github.com/ewise/expensewise"

// BudgetsMarkdown renders the budget list with derived spending.
func BudgetsMarkdown(budgets []expensewise.BudgetStatus) string {
	r := newReport()
	r.Printf("# Budgets\n\n")
	if len(budgets) == 0 {
		r.Printf("No budgets.\n")
		return r.String()
	}
	r.Printf("| Budget | Allocated | Cycle | Spent | Remaining |\n")
	r.Printf("|:---|---:|:---|---:|---:|\n")
	for _, b := range budgets {
		r.Printf("| %s | %s | %s | %s | %s |\n",
			b.Name, b.Allocated, b.Cycle, b.Spent, b.Allocated.Sub(b.Spent))
	}
	return r.String()
}
