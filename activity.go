package expensewise

import "time"

// maxActivityEntries bounds the activity log. When full, recording a new
// entry evicts the oldest.
const maxActivityEntries = 150

// activityTimeFormat is the persisted timestamp form of an activity entry.
const activityTimeFormat = "2006-01-02 15:04:05"

// ActivityEntry is one recorded action with the instant it happened.
type ActivityEntry struct {
	Timestamp string
	Action    string
}

// ActivityLog is a bounded, append-only record of user actions, oldest first.
type ActivityLog struct {
	entries []ActivityEntry
}

// Append records an action with the current timestamp.
func (a *ActivityLog) Append(action string) {
	a.push(ActivityEntry{
		Timestamp: time.Now().Format(activityTimeFormat),
		Action:    action,
	})
}

// push appends an entry as recorded, evicting the oldest when full.
func (a *ActivityLog) push(e ActivityEntry) {
	a.entries = append(a.entries, e)
	if n := len(a.entries) - maxActivityEntries; n > 0 {
		a.entries = append(a.entries[:0:0], a.entries[n:]...)
	}
}

// Entries returns the log oldest first.
func (a *ActivityLog) Entries() []ActivityEntry {
	return a.entries
}

// Len returns the number of recorded entries.
func (a *ActivityLog) Len() int { return len(a.entries) }
