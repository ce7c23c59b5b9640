package expensewise

import (
	"strings"
	"testing"
)

func TestDecodeKeyedTableTolerance(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want map[string]Record
	}{
		{
			name: "empty file",
			in:   "",
			want: nil,
		},
		{
			name: "header only",
			in:   "id,name,balance\n",
			want: map[string]Record{},
		},
		{
			name: "missing column",
			in:   "id,name\nwallet_1,Cash\n",
			want: nil,
		},
		{
			name: "well formed",
			in:   "id,name,balance\nwallet_1,Cash,10.50\n",
			want: map[string]Record{
				"wallet_1": {"name": "Cash", "balance": "10.5"},
			},
		},
		{
			name: "bad number defaults to zero",
			in:   "id,name,balance\nwallet_1,Cash,not-a-number\n",
			want: map[string]Record{
				"wallet_1": {"name": "Cash", "balance": "0"},
			},
		},
		{
			name: "empty id skipped",
			in:   "id,name,balance\n,Cash,10\nwallet_2,Bank,20\n",
			want: map[string]Record{
				"wallet_2": {"name": "Bank", "balance": "20"},
			},
		},
		{
			name: "duplicate id last write wins",
			in:   "id,name,balance\nwallet_1,Cash,10\nwallet_1,Bank,20\n",
			want: map[string]Record{
				"wallet_1": {"name": "Bank", "balance": "20"},
			},
		},
		{
			name: "short row reads missing cells as empty",
			in:   "id,name,balance\nwallet_1,Cash\n",
			want: map[string]Record{
				"wallet_1": {"name": "Cash", "balance": "0"},
			},
		},
		{
			name: "extra cells ignored",
			in:   "id,name,balance,legacy\nwallet_1,Cash,10,junk\n",
			want: map[string]Record{
				"wallet_1": {"name": "Cash", "balance": "10"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeKeyedTable(strings.NewReader(tc.in), walletSchema)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d records, want %d: %v", len(got), len(tc.want), got)
			}
			for id, wantRec := range tc.want {
				gotRec, ok := got[id]
				if !ok {
					t.Fatalf("missing record %q", id)
				}
				for _, field := range []string{"name", "balance"} {
					if gotRec[field] != wantRec[field] {
						t.Errorf("record %q field %q = %q, want %q", id, field, gotRec[field], wantRec[field])
					}
				}
			}
		})
	}
}

func TestEncodeKeyedTableWritesHeaderAndSynthesizesID(t *testing.T) {
	var b strings.Builder
	records := map[string]Record{
		"wallet_2": {"name": "Bank", "balance": "20"},
		"wallet_1": {"name": "Cash", "balance": "10"},
	}
	if err := EncodeKeyedTable(&b, walletSchema, records); err != nil {
		t.Fatal(err)
	}
	want := "id,name,balance\nwallet_1,Cash,10\nwallet_2,Bank,20\n"
	if b.String() != want {
		t.Errorf("encoded table:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestEncodeKeyedTableEmpty(t *testing.T) {
	var b strings.Builder
	if err := EncodeKeyedTable(&b, walletSchema, nil); err != nil {
		t.Fatal(err)
	}
	if b.String() != "id,name,balance\n" {
		t.Errorf("empty table = %q, want header only", b.String())
	}
}

func TestTableRoundTrip(t *testing.T) {
	rows := []Record{
		{
			"date": "2025-01-02", "time": "09:30", "timestamp": "2025-01-02 09:30",
			"title": "Coffee, extra hot", "wallet": "Cash", "amount": "-3.5",
			"category": "Dining", "type": "expense",
			"from_account": "", "to_account": "", "linked_budget": "", "linked_goal": "",
		},
	}
	var b strings.Builder
	if err := EncodeTable(&b, transactionSchema, rows); err != nil {
		t.Fatal(err)
	}
	got := DecodeTable(strings.NewReader(b.String()), transactionSchema)
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	for field, want := range rows[0] {
		if got[0][field] != want {
			t.Errorf("field %q = %q, want %q", field, got[0][field], want)
		}
	}
}
