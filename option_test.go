package optionbook

import (
	"testing"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "call", want: Call},
		{in: "put", want: Put},
		{in: "CALL", want: Call},
		{in: " Put ", want: Put},
		{in: "", wantErr: true},
		{in: "straddle", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseKind(tc.in)
		if tc.wantErr {
			if !IsValidation(err) {
				t.Errorf("ParseKind(%q) error = %v, want a ValidationError", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestBook_CreateOption(t *testing.T) {
	b := New()

	o := mustOption(t, b, "AAPL", Call, 150, "2025-06-20")
	if o.ID != 1 || o.Symbol != "AAPL" || o.Kind != Call {
		t.Errorf("CreateOption() = %+v", o)
	}
	if !o.Strike.Equal(S(150)) || o.Expiration != D("2025-06-20") {
		t.Errorf("CreateOption() = %+v", o)
	}

	// Past-dated expirations are permitted.
	if _, err := b.CreateOption("XYZ", Put, S(10), D("1999-01-15")); err != nil {
		t.Errorf("CreateOption(past expiration) error = %v, want nil", err)
	}

	testCases := []struct {
		name       string
		symbol     string
		kind       Kind
		strike     float64
		expiration Date
	}{
		{name: "empty symbol", symbol: "", kind: Call, strike: 100, expiration: D("2025-06-20")},
		{name: "blank symbol", symbol: "  ", kind: Call, strike: 100, expiration: D("2025-06-20")},
		{name: "unknown kind", symbol: "AAPL", kind: Kind(7), strike: 100, expiration: D("2025-06-20")},
		{name: "negative strike", symbol: "AAPL", kind: Call, strike: -1, expiration: D("2025-06-20")},
		{name: "zero expiration", symbol: "AAPL", kind: Call, strike: 100},
	}
	for _, tc := range testCases {
		_, err := b.CreateOption(tc.symbol, tc.kind, S(tc.strike), tc.expiration)
		if !IsValidation(err) {
			t.Errorf("%s: CreateOption() error = %v, want a ValidationError", tc.name, err)
		}
	}

	// Failed creations left no trace.
	if got := b.Options(); len(got) != 2 {
		t.Errorf("Options() = %+v, want the 2 valid options only", got)
	}
}

func TestOption_Expired(t *testing.T) {
	o := Option{Expiration: D("2025-06-20")}
	if o.Expired(D("2025-06-20")) {
		t.Error("Expired() on expiration day = true, want false")
	}
	if !o.Expired(D("2025-06-21")) {
		t.Error("Expired() after expiration = false, want true")
	}
}
