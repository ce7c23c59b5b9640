package expensewise

import (
	"fmt"
	"testing"
)

func TestActivityLogBound(t *testing.T) {
	var a ActivityLog
	for i := 0; i < 200; i++ {
		a.Append(fmt.Sprintf("action %d", i))
	}
	entries := a.Entries()
	if len(entries) != maxActivityEntries {
		t.Fatalf("len = %d, want %d", len(entries), maxActivityEntries)
	}
	if entries[0].Action != "action 50" {
		t.Errorf("oldest kept = %q, want %q (oldest evicted first)", entries[0].Action, "action 50")
	}
	if entries[len(entries)-1].Action != "action 199" {
		t.Errorf("newest = %q, want %q", entries[len(entries)-1].Action, "action 199")
	}
}

func TestActivityLogUnderBound(t *testing.T) {
	var a ActivityLog
	a.Append("one")
	a.Append("two")
	if a.Len() != 2 {
		t.Fatalf("len = %d, want 2", a.Len())
	}
	if a.Entries()[0].Action != "one" {
		t.Errorf("order = %q first, want oldest first", a.Entries()[0].Action)
	}
}
