// Package renderer turns ledger read models into markdown reports. Every
// page the front end shows (wallets, budgets, goals, transactions, activity,
// spending summary, profiles) has a renderer here; the caller decides how
// the markdown reaches the terminal.
package renderer

import (
	"fmt"
	"strings"
)

// report formats a markdown document incrementally.
type report struct {
	*strings.Builder
}

func newReport() *report {
	return &report{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the report.
func (r *report) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
