package renderer

import "github.com/ewise/expensewise"

// ProfilesMarkdown renders the user profile roster.
func ProfilesMarkdown(profiles []expensewise.Profile) string {
	r := newReport()
	r.Printf("# User Profiles\n\n")
	r.Printf("| ID | Name | Icon Color |\n")
	r.Printf("|:---|:---|:---|\n")
	for _, p := range profiles {
		r.Printf("| %s | %s | %s |\n", p.ID, p.Name, p.IconColor)
	}
	return r.String()
}
