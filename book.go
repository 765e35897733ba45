package optionbook

import (
	"sync"
)

// Book is the single source of truth: the user registry, the option
// registry, and the ownership ledger, guarded together by one lock.
//
// The lock spans all three collections because deletions cascade from a
// registry into the ledger; a narrower lock would let a reader observe a
// half-applied cascade.
type Book struct {
	mu sync.RWMutex

	users   []User   // live users, in insertion order
	options []Option // live options, in insertion order
	owns    map[ownKey]int64

	// Identity counters. They only ever grow, so ids are never reused
	// within a process lifetime, even after deletion.
	lastUserID   int64
	lastOptionID int64
}

// ownKey identifies one ownership record; at most one record exists per key.
type ownKey struct {
	user   int64
	option int64
}

// New creates an empty book.
func New() *Book {
	return &Book{
		owns: make(map[ownKey]int64),
	}
}

// userIndex returns the position of the live user with this id, or -1.
// The caller must hold the lock.
func (b *Book) userIndex(id int64) int {
	for i, u := range b.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// optionIndex returns the position of the live option with this id, or -1.
// The caller must hold the lock.
func (b *Book) optionIndex(id int64) int {
	for i, o := range b.options {
		if o.ID == id {
			return i
		}
	}
	return -1
}
