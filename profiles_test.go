package expensewise

import (
	"errors"
	"testing"
)

func TestProfileDirectoryAdd(t *testing.T) {
	d := NewProfileDirectory()
	p, err := d.Add("Alice")
	if err != nil {
		t.Fatal(err)
	}
	if !validIconColor(p.IconColor) {
		t.Errorf("icon color = %q", p.IconColor)
	}
	if _, err := d.Add("alice"); !errors.Is(err, ErrNameTaken) {
		t.Errorf("case-insensitive duplicate: err = %v, want %v", err, ErrNameTaken)
	}
	if _, err := d.Add("  "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name: err = %v, want %v", err, ErrEmptyName)
	}
}

func TestDecodeProfilesSanitizes(t *testing.T) {
	records := map[string]Record{
		"user_1": {"name": "Alice", "icon_color": "#E57373"},
		"user_2": {"name": "Bob", "icon_color": "red"},
		"user_3": {"name": "", "icon_color": "#E57373"},
	}
	d := decodeProfiles(records)
	if d.Len() != 2 {
		t.Fatalf("len = %d, want 2 (empty name skipped)", d.Len())
	}
	bob, _ := d.Get("user_2")
	if !validIconColor(bob.IconColor) {
		t.Errorf("invalid stored color not replaced: %q", bob.IconColor)
	}
	alice, _ := d.Get("user_1")
	if alice.IconColor != "#E57373" {
		t.Errorf("valid color rewritten: %q", alice.IconColor)
	}
}

func TestProfilesSortedByName(t *testing.T) {
	d := NewProfileDirectory()
	for _, name := range []string{"carol", "Alice", "bob"} {
		if _, err := d.Add(name); err != nil {
			t.Fatal(err)
		}
	}
	got := d.Profiles()
	want := []string{"Alice", "bob", "carol"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("profiles[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}
