package renderer

import "github.com/ewise/expensewise"

// ActivityMarkdown renders the activity log newest first.
func ActivityMarkdown(entries []expensewise.ActivityEntry) string {
	r := newReport()
	r.Printf("# Activity Log\n\n")
	if len(entries) == 0 {
		r.Printf("No activity recorded.\n")
		return r.String()
	}
	r.Printf("| When | Action |\n")
	r.Printf("|:---|:---|\n")
	for i := len(entries) - 1; i >= 0; i-- {
		r.Printf("| %s | %s |\n", entries[i].Timestamp, entries[i].Action)
	}
	return r.String()
}
