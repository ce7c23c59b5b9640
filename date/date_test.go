package date

import "testing"

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-07-01", want: "2025-07-01"},
		{in: "2025-7-1", want: "2025-07-01"},
		{in: "2025-13-01", wantErr: true},
		{in: "01/07/2025", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.in, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got := d.String(); got != tc.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	testCases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2025-03-10", to: "2025-03-10", want: 0},
		{name: "future", from: "2025-03-10", to: "2025-03-15", want: 5},
		{name: "past", from: "2025-03-10", to: "2025-03-01", want: -9},
		{name: "across month", from: "2025-01-30", to: "2025-02-02", want: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.from).DaysUntil(MustParse(tc.to))
			if got != tc.want {
				t.Errorf("DaysUntil(%s → %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestDateTimeOrdering(t *testing.T) {
	a, err := ParseDateTime("2025-05-01 09:30")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseDateTime("2025-05-01 09:31:00")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %s to sort before %s", a, b)
	}
	if a.String() != "2025-05-01 09:30" {
		t.Errorf("canonical form = %q", a.String())
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	if _, err := ParseDateTime("2025-05-01"); err == nil {
		t.Error("expected error for date-only timestamp")
	}
	if _, err := ParseClock("9h30"); err == nil {
		t.Error("expected error for malformed clock")
	}
}
