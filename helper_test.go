package optionbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

// S is a helper for tests to create a strike from a const.
func S(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// D is a helper for tests to create a date from an ISO string.
func D(s string) Date { return MustParseDate(s) }

// mustUser creates a user or fails the test.
func mustUser(t *testing.T, b *Book, name string) User {
	t.Helper()
	u, err := b.CreateUser(name)
	if err != nil {
		t.Fatalf("CreateUser(%q) error = %v", name, err)
	}
	return u
}

// mustOption creates an option or fails the test.
func mustOption(t *testing.T, b *Book, symbol string, kind Kind, strike float64, expiration string) Option {
	t.Helper()
	o, err := b.CreateOption(symbol, kind, S(strike), D(expiration))
	if err != nil {
		t.Fatalf("CreateOption(%q) error = %v", symbol, err)
	}
	return o
}
