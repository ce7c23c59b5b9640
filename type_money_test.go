package expensewise

import "testing"

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1234.56", want: "1234.56"},
		{in: "1,234.56", want: "1234.56"},
		{in: " 42 ", want: "42"},
		{in: "-10.5", want: "-10.5"},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			m, err := ParseMoney(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMoney(%q) = %s, want error", tc.in, m.Text())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if m.Text() != tc.want {
				t.Errorf("ParseMoney(%q).Text() = %q, want %q", tc.in, m.Text(), tc.want)
			}
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(10.5)
	b := M(4)
	if got := a.Add(b); !got.Equal(M(14.5)) {
		t.Errorf("Add = %s", got.Text())
	}
	if got := a.Sub(b); !got.Equal(M(6.5)) {
		t.Errorf("Sub = %s", got.Text())
	}
	if got := b.Neg(); !got.Equal(M(-4)) {
		t.Errorf("Neg = %s", got.Text())
	}
	if got := M(-4).Abs(); !got.Equal(b) {
		t.Errorf("Abs = %s", got.Text())
	}
	if !M(0).IsZero() || M(1).IsZero() {
		t.Error("IsZero misclassifies")
	}
	if M(0).SignedString() != "-" {
		t.Errorf("SignedString(0) = %q, want -", M(0).SignedString())
	}
}
