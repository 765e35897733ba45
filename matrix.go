package optionbook

import (
	"slices"
)

// MatrixView is the dense user-by-option projection of the book.
//
// Quantities in every row are positionally aligned with Users: index i in
// any row is the quantity held by Users[i]. Callers take the column headers
// from Users and must not re-derive them per row.
type MatrixView struct {
	Users []User      `json:"users"`
	Rows  []MatrixRow `json:"rows"`
}

// MatrixRow is one option's row across all users. A user holding nothing
// shows as 0.
type MatrixRow struct {
	Option     Option  `json:"option"`
	Quantities []int64 `json:"quantities"`
}

// MatrixView projects the registries and the ledger into a dense matrix.
//
// The projection is fully recomputed on every call from the current state;
// nothing is cached between calls. Rows follow option insertion order,
// columns follow user insertion order.
func (b *Book) MatrixView() MatrixView {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v := MatrixView{
		Users: slices.Clone(b.users),
		Rows:  make([]MatrixRow, 0, len(b.options)),
	}
	// One cell lookup per (user, option) pair straight off the ledger map,
	// so the projection costs O(users x options) regardless of ledger size.
	for _, o := range b.options {
		row := MatrixRow{Option: o, Quantities: make([]int64, len(b.users))}
		for i, u := range b.users {
			row.Quantities[i] = b.owns[ownKey{user: u.ID, option: o.ID}]
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
