package optionbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a book as a JSONL stream, one record per line with a
// "record" discriminator, so the file stays human-readable and git-friendly.
//
// The stream lists users first, then options, then ownership records, so a
// decoder can check referential integrity line by line.

const (
	recUser   = "user"
	recOption = "option"
	recOwn    = "own"
)

type juser struct {
	Record string `json:"record"`
	ID     int64  `json:"id"`
	Name   string `json:"name"`
}

type joption struct {
	Record     string          `json:"record"`
	ID         int64           `json:"id"`
	Symbol     string          `json:"symbol"`
	Kind       Kind            `json:"kind"`
	Strike     decimal.Decimal `json:"strike"`
	Expiration Date            `json:"expiration"`
}

type jown struct {
	Record   string `json:"record"`
	UserID   int64  `json:"user_id"`
	OptionID int64  `json:"option_id"`
	Quantity int64  `json:"quantity"`
}

// Encode writes the book to w in canonical JSONL form.
func Encode(w io.Writer, b *Book) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	enc := json.NewEncoder(w)
	for _, u := range b.users {
		if err := enc.Encode(juser{Record: recUser, ID: u.ID, Name: u.Name}); err != nil {
			return fmt.Errorf("cannot encode user %d: %w", u.ID, err)
		}
	}
	for _, o := range b.options {
		jo := joption{Record: recOption, ID: o.ID, Symbol: o.Symbol, Kind: o.Kind, Strike: o.Strike, Expiration: o.Expiration}
		if err := enc.Encode(jo); err != nil {
			return fmt.Errorf("cannot encode option %d: %w", o.ID, err)
		}
	}
	for _, own := range b.ownerships() {
		jo := jown{Record: recOwn, UserID: own.UserID, OptionID: own.OptionID, Quantity: own.Quantity}
		if err := enc.Encode(jo); err != nil {
			return fmt.Errorf("cannot encode ownership (%d,%d): %w", own.UserID, own.OptionID, err)
		}
	}
	return nil
}

// DecodeBook reads a JSONL stream and rebuilds a book.
//
// The decoder re-validates what the book guarantees: unique ids, live
// references, at most one record per pair. A corrupt file yields an error,
// never an inconsistent book. Identity counters resume above the highest
// decoded id, so ids stay unique across a save/load cycle.
func DecodeBook(r io.Reader) (*Book, error) {
	b := New()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recUser:
			var ju juser
			if err := json.Unmarshal(line, &ju); err != nil {
				return nil, fmt.Errorf("invalid user line %q: %w", string(line), err)
			}
			if ju.ID <= 0 {
				return nil, fmt.Errorf("invalid user line %q: id must be positive", string(line))
			}
			if b.userIndex(ju.ID) >= 0 {
				return nil, fmt.Errorf("invalid user line %q: id %d is already defined", string(line), ju.ID)
			}
			if strings.TrimSpace(ju.Name) == "" {
				return nil, fmt.Errorf("invalid user line %q: name is empty", string(line))
			}
			b.users = append(b.users, User{ID: ju.ID, Name: ju.Name})
			b.lastUserID = max(b.lastUserID, ju.ID)

		case recOption:
			var jo joption
			if err := json.Unmarshal(line, &jo); err != nil {
				return nil, fmt.Errorf("invalid option line %q: %w", string(line), err)
			}
			if jo.ID <= 0 {
				return nil, fmt.Errorf("invalid option line %q: id must be positive", string(line))
			}
			if b.optionIndex(jo.ID) >= 0 {
				return nil, fmt.Errorf("invalid option line %q: id %d is already defined", string(line), jo.ID)
			}
			if strings.TrimSpace(jo.Symbol) == "" {
				return nil, fmt.Errorf("invalid option line %q: symbol is empty", string(line))
			}
			if jo.Strike.IsNegative() {
				return nil, fmt.Errorf("invalid option line %q: strike is negative", string(line))
			}
			o := Option{ID: jo.ID, Symbol: jo.Symbol, Kind: jo.Kind, Strike: jo.Strike, Expiration: jo.Expiration}
			b.options = append(b.options, o)
			b.lastOptionID = max(b.lastOptionID, jo.ID)

		case recOwn:
			var jo jown
			if err := json.Unmarshal(line, &jo); err != nil {
				return nil, fmt.Errorf("invalid ownership line %q: %w", string(line), err)
			}
			if b.userIndex(jo.UserID) < 0 {
				return nil, fmt.Errorf("invalid ownership line %q: user %d is not defined", string(line), jo.UserID)
			}
			if b.optionIndex(jo.OptionID) < 0 {
				return nil, fmt.Errorf("invalid ownership line %q: option %d is not defined", string(line), jo.OptionID)
			}
			if jo.Quantity <= 0 {
				return nil, fmt.Errorf("invalid ownership line %q: quantity must be positive", string(line))
			}
			key := ownKey{user: jo.UserID, option: jo.OptionID}
			if _, exists := b.owns[key]; exists {
				return nil, fmt.Errorf("invalid ownership line %q: pair (%d,%d) is already defined", string(line), jo.UserID, jo.OptionID)
			}
			b.owns[key] = jo.Quantity

		default:
			return nil, fmt.Errorf("unknown record %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read book: %w", err)
	}
	return b, nil
}
