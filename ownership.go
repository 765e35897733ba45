package optionbook

import (
	"sort"
)

// Ownership records that a user holds a quantity of an option.
//
// The ledger is sparse: the absence of a record for a pair means quantity 0,
// and setting a quantity to 0 removes the record. Queries cannot tell the
// two apart.
type Ownership struct {
	UserID   int64 `json:"user_id"`
	OptionID int64 `json:"option_id"`
	Quantity int64 `json:"quantity"`
}

// SetOwnership records the absolute quantity a user holds of an option,
// replacing any prior record for the pair. Setting 0 clears the record.
//
// Both ids are checked against the registries at call time, so a record can
// never reference a deleted user or option. There is no increment primitive:
// callers read the current quantity and write the new absolute target.
func (b *Book) SetOwnership(userID, optionID, quantity int64) error {
	if quantity < 0 {
		return invalidf("quantity cannot be negative, got %d", quantity)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.userIndex(userID) < 0 {
		return notFoundf("user %d not found", userID)
	}
	if b.optionIndex(optionID) < 0 {
		return notFoundf("option %d not found", optionID)
	}

	key := ownKey{user: userID, option: optionID}
	if quantity == 0 {
		delete(b.owns, key)
		return nil
	}
	b.owns[key] = quantity
	return nil
}

// Ownerships returns every record, sorted by option id then user id.
func (b *Book) Ownerships() []Ownership {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ownerships()
}

// ownerships is the lock-free variant for callers already holding the lock.
func (b *Book) ownerships() []Ownership {
	list := make([]Ownership, 0, len(b.owns))
	for key, qty := range b.owns {
		list = append(list, Ownership{UserID: key.user, OptionID: key.option, Quantity: qty})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].OptionID != list[j].OptionID {
			return list[i].OptionID < list[j].OptionID
		}
		return list[i].UserID < list[j].UserID
	})
	return list
}

// removeAllForUser sweeps the ledger after a user deletion. A no-op when
// the user holds nothing. The caller must hold the lock.
func (b *Book) removeAllForUser(userID int64) {
	for key := range b.owns {
		if key.user == userID {
			delete(b.owns, key)
		}
	}
}

// removeAllForOption sweeps the ledger after an option deletion. A no-op
// when nobody holds the option. The caller must hold the lock.
func (b *Book) removeAllForOption(optionID int64) {
	for key := range b.owns {
		if key.option == optionID {
			delete(b.owns, key)
		}
	}
}
