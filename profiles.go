package expensewise

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
)

// iconColors is the palette a profile icon color is drawn from when none is
// chosen or the stored one is invalid.
var iconColors = []string{
	"#E57373", "#81C784", "#64B5F6", "#FFD54F",
	"#BA68C8", "#4DB6AC", "#F06292", "#A1887F",
}

func randomIconColor() string {
	return iconColors[rand.Intn(len(iconColors))]
}

// validIconColor reports whether s looks like a "#RRGGBB" color.
func validIconColor(s string) bool {
	return strings.HasPrefix(s, "#") && len(s) == 7
}

// Profile identifies one user of the data directory.
type Profile struct {
	ID        string
	Name      string
	IconColor string
}

// ProfileDirectory is the shared roster of user profiles. It is loaded from
// and saved to a single file independent of any user's ledger.
type ProfileDirectory struct {
	profiles map[string]Profile
}

// NewProfileDirectory returns an empty directory.
func NewProfileDirectory() *ProfileDirectory {
	return &ProfileDirectory{profiles: make(map[string]Profile)}
}

// decodeProfiles rebuilds the directory from decoded records. Rows with an
// empty name are skipped, invalid icon colors are replaced with a random
// palette color.
func decodeProfiles(records map[string]Record) *ProfileDirectory {
	d := NewProfileDirectory()
	for id, rec := range records {
		name := strings.TrimSpace(rec["name"])
		if name == "" {
			log.Printf("skip-profile id=%q: empty name", id)
			continue
		}
		color := strings.TrimSpace(rec["icon_color"])
		if !validIconColor(color) {
			log.Printf("bad-icon-color id=%q value=%q: assigning random", id, color)
			color = randomIconColor()
		}
		d.profiles[id] = Profile{ID: id, Name: name, IconColor: color}
	}
	return d
}

func (d *ProfileDirectory) records() map[string]Record {
	out := make(map[string]Record, len(d.profiles))
	for id, p := range d.profiles {
		out[id] = Record{"name": p.Name, "icon_color": p.IconColor}
	}
	return out
}

// Len returns the number of profiles.
func (d *ProfileDirectory) Len() int { return len(d.profiles) }

// Get returns the profile with the given id.
func (d *ProfileDirectory) Get(id string) (Profile, bool) {
	p, ok := d.profiles[id]
	return p, ok
}

// Profiles returns the profiles sorted by name, case-insensitive.
func (d *ProfileDirectory) Profiles() []Profile {
	out := make([]Profile, 0, len(d.profiles))
	for _, p := range d.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Add creates a new profile with a random icon color.
func (d *ProfileDirectory) Add(name string) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, fmt.Errorf("profile name: %w", ErrEmptyName)
	}
	for _, p := range d.profiles {
		if strings.EqualFold(p.Name, name) {
			return Profile{}, fmt.Errorf("profile %q: %w", name, ErrNameTaken)
		}
	}
	p := Profile{ID: newID("user"), Name: name, IconColor: randomIconColor()}
	d.profiles[p.ID] = p
	return p, nil
}

// Remove drops the profile with the given id.
func (d *ProfileDirectory) Remove(id string) error {
	if _, ok := d.profiles[id]; !ok {
		return fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	delete(d.profiles, id)
	return nil
}

// addDemo seeds the directory with the demo profile created when no usable
// roster exists.
func (d *ProfileDirectory) addDemo() Profile {
	p := Profile{ID: newID("user_demo"), Name: "Demo User", IconColor: randomIconColor()}
	d.profiles[p.ID] = p
	return p
}
