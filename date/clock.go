package date

import (
	"fmt"
	"time"
)

// ClockFormat is the canonical representation of a Clock.
const ClockFormat = "15:04"

// DateTimeFormat is the canonical representation of a DateTime, and the
// format journal timestamps are persisted in.
const DateTimeFormat = "2006-01-02 15:04"

// dateTimeSecondsFormat is accepted on read for timestamps written by older
// versions that included seconds.
const dateTimeSecondsFormat = "2006-01-02 15:04:05"

// Clock represents a wall-clock time with minute granularity.
type Clock struct {
	h, m int
}

// NewClock returns a Clock for the given hour and minute.
func NewClock(hour, minute int) Clock {
	t := time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
	return Clock{t.Hour(), t.Minute()}
}

// Hour returns the hour of the clock.
func (c Clock) Hour() int { return c.h }

// Minute returns the minute of the clock.
func (c Clock) Minute() int { return c.m }

// String formats the clock in its canonical "15:04" form.
func (c Clock) String() string {
	return time.Date(0, 1, 1, c.h, c.m, 0, 0, time.UTC).Format(ClockFormat)
}

// ParseClock parses a Clock from its "15:04" form.
func ParseClock(str string) (Clock, error) {
	t, err := time.Parse(ClockFormat, str)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q want format %q: %w", str, ClockFormat, err)
	}
	return Clock{t.Hour(), t.Minute()}, nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(str string) Clock {
	c, err := ParseClock(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// DateTime combines a Date and a Clock, ordering journal entries within a day.
type DateTime struct {
	Date  Date
	Clock Clock
}

// Now returns the current DateTime.
func Now() DateTime {
	t := time.Now()
	return DateTime{New(t.Date()), NewClock(t.Hour(), t.Minute())}
}

// time returns the canonical time.Time (UTC) of the DateTime.
func (dt DateTime) time() time.Time {
	return time.Date(dt.Date.y, dt.Date.m, dt.Date.d, dt.Clock.h, dt.Clock.m, 0, 0, time.UTC)
}

// IsZero reports whether dt is the zero DateTime.
func (dt DateTime) IsZero() bool { return dt == DateTime{} }

// Before reports whether dt is before x.
func (dt DateTime) Before(x DateTime) bool { return dt.time().Before(x.time()) }

// After reports whether dt is after x.
func (dt DateTime) After(x DateTime) bool { return dt.time().After(x.time()) }

// String formats the DateTime in its canonical "2006-01-02 15:04" form.
func (dt DateTime) String() string { return dt.time().Format(DateTimeFormat) }

// ParseDateTime parses a DateTime from its canonical form, accepting a
// trailing seconds component.
func ParseDateTime(str string) (DateTime, error) {
	t, err := time.Parse(DateTimeFormat, str)
	if err != nil {
		t, err = time.Parse(dateTimeSecondsFormat, str)
	}
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid timestamp %q want format %q: %w", str, DateTimeFormat, err)
	}
	return DateTime{New(t.Date()), NewClock(t.Hour(), t.Minute())}, nil
}
