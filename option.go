package optionbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the contract type of an option. It is a closed two-variant type:
// every stored option is either a call or a put.
type Kind int

const (
	// Call is the right to buy the underlying at the strike price.
	Call Kind = iota
	// Put is the right to sell the underlying at the strike price.
	Put
)

func (k Kind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	default:
		return 0, invalidf("unknown option kind: %q, want \"call\" or \"put\"", s)
	}
}

// MarshalJSON encodes the kind as its lowercase name.
func (k Kind) MarshalJSON() ([]byte, error) {
	if k != Call && k != Put {
		return nil, fmt.Errorf("cannot marshal unknown option kind %d", int(k))
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON decodes a kind from its lowercase name.
func (k *Kind) UnmarshalJSON(bytes []byte) error {
	s := strings.Trim(string(bytes), `"`)
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Option is a contract definition. All descriptive fields are required at
// creation and immutable thereafter; changing one means delete and recreate.
type Option struct {
	ID         int64           `json:"id"`
	Symbol     string          `json:"symbol"`
	Kind       Kind            `json:"kind"`
	Strike     decimal.Decimal `json:"strike"`
	Expiration Date            `json:"expiration"`
}

// Label returns a one-line display form like "AAPL call 150 2025-06-20".
func (o Option) Label() string {
	return fmt.Sprintf("%s %s %s %s", o.Symbol, o.Kind, o.Strike, o.Expiration)
}

// Expired reports whether the option's expiration is past on a given day.
// Past-dated options are still stored; expiry is a display concern.
func (o Option) Expired(on Date) bool {
	return o.Expiration.Before(on)
}

// CreateOption registers a new contract definition and returns it with a
// fresh id. The expiration is not checked against today: recording contracts
// that have already expired is legitimate.
func (b *Book) CreateOption(symbol string, kind Kind, strike decimal.Decimal, expiration Date) (Option, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Option{}, invalidf("option symbol cannot be empty")
	}
	if kind != Call && kind != Put {
		return Option{}, invalidf("unknown option kind %d", int(kind))
	}
	if strike.IsNegative() {
		return Option{}, invalidf("option strike cannot be negative, got %s", strike)
	}
	if expiration.IsZero() {
		return Option{}, invalidf("option expiration is required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastOptionID++
	o := Option{ID: b.lastOptionID, Symbol: symbol, Kind: kind, Strike: strike, Expiration: expiration}
	b.options = append(b.options, o)
	return o, nil
}

// Options returns all live options in insertion order.
func (b *Book) Options() []Option {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.options)
}

// DeleteOption removes an option and every ownership record referencing it.
// Deleting an id that is not live is an error, even if it was live once.
func (b *Book) DeleteOption(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.optionIndex(id)
	if i < 0 {
		return notFoundf("option %d not found", id)
	}
	b.options = slices.Delete(b.options, i, i+1)
	b.removeAllForOption(id)
	return nil
}
