package renderer

import (
	"fmt"

	"github.com/ewise/expensewise"
	"github.com/shopspring/decimal"
)

// GoalsMarkdown renders the goal cards with effective progress and deadline
// countdown.
func GoalsMarkdown(goals []expensewise.GoalStatus) string {
	r := newReport()
	r.Printf("# Goals\n\n")
	if len(goals) == 0 {
		r.Printf("No goals.\n")
		return r.String()
	}
	r.Printf("| Goal | Saved | Target | Progress | Deadline |\n")
	r.Printf("|:---|---:|---:|---:|:---|\n")
	for _, g := range goals {
		r.Printf("| %s | %s | %s | %s | %s |\n",
			g.Name, g.EffectiveSaved, g.Target, progress(g), g.Countdown)
	}
	return r.String()
}

// progress renders the saved/target ratio as a percentage, uncapped: an
// overfunded goal shows more than 100%.
func progress(g expensewise.GoalStatus) string {
	if !g.Target.IsPositive() {
		return "-"
	}
	pct, _ := g.EffectiveSaved.Div(g.Target).Mul(decimal.NewFromInt(100)).Float64()
	return fmt.Sprintf("%.1f%%", pct)
}
