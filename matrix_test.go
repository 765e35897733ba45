package optionbook

import (
	"reflect"
	"testing"
)

func TestBook_MatrixView(t *testing.T) {
	b := New()
	alice := mustUser(t, b, "Alice")
	bob := mustUser(t, b, "Bob")
	aapl := mustOption(t, b, "AAPL", Call, 150, "2025-06-20")

	if err := b.SetOwnership(alice.ID, aapl.ID, 5); err != nil {
		t.Fatalf("SetOwnership() error = %v", err)
	}
	if err := b.SetOwnership(bob.ID, aapl.ID, 0); err != nil {
		t.Fatalf("SetOwnership() error = %v", err)
	}

	v := b.MatrixView()
	if want := []User{alice, bob}; !reflect.DeepEqual(v.Users, want) {
		t.Errorf("MatrixView().Users = %+v, want %+v", v.Users, want)
	}
	if len(v.Rows) != 1 {
		t.Fatalf("MatrixView().Rows has %d rows, want 1", len(v.Rows))
	}
	// Column i is Users[i]: Alice holds 5, Bob holds nothing.
	if want := []int64{5, 0}; !reflect.DeepEqual(v.Rows[0].Quantities, want) {
		t.Errorf("MatrixView() quantities = %v, want %v", v.Rows[0].Quantities, want)
	}
	if v.Rows[0].Option.ID != aapl.ID {
		t.Errorf("MatrixView() row option = %+v, want AAPL", v.Rows[0].Option)
	}
}

func TestBook_MatrixView_Orders(t *testing.T) {
	b := New()
	var users []User
	for _, name := range []string{"Carol", "Alice", "Bob"} {
		users = append(users, mustUser(t, b, name))
	}
	var options []Option
	for _, sym := range []string{"TSLA", "AAPL", "GOOG"} {
		options = append(options, mustOption(t, b, sym, Put, 100, "2025-06-20"))
	}

	v := b.MatrixView()
	// Rows and columns follow insertion order, not alphabetical order.
	if !reflect.DeepEqual(v.Users, users) {
		t.Errorf("MatrixView().Users = %+v, want insertion order %+v", v.Users, users)
	}
	for i, row := range v.Rows {
		if row.Option.ID != options[i].ID {
			t.Errorf("MatrixView() row %d option = %+v, want %+v", i, row.Option, options[i])
		}
		if len(row.Quantities) != len(users) {
			t.Errorf("MatrixView() row %d has %d columns, want %d", i, len(row.Quantities), len(users))
		}
	}
}

func TestBook_MatrixView_Idempotent(t *testing.T) {
	b := New()
	alice := mustUser(t, b, "Alice")
	aapl := mustOption(t, b, "AAPL", Call, 150, "2025-06-20")
	if err := b.SetOwnership(alice.ID, aapl.ID, 5); err != nil {
		t.Fatalf("SetOwnership() error = %v", err)
	}

	first := b.MatrixView()
	second := b.MatrixView()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("MatrixView() twice differ:\n%+v\n%+v", first, second)
	}
}

func TestBook_MatrixView_ReflectsDeletes(t *testing.T) {
	b := New()
	alice := mustUser(t, b, "Alice")
	bob := mustUser(t, b, "Bob")
	aapl := mustOption(t, b, "AAPL", Call, 150, "2025-06-20")
	if err := b.SetOwnership(alice.ID, aapl.ID, 5); err != nil {
		t.Fatalf("SetOwnership() error = %v", err)
	}

	if err := b.DeleteUser(alice.ID); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	// The projection is recomputed from scratch: Alice's column is gone.
	v := b.MatrixView()
	if want := []User{bob}; !reflect.DeepEqual(v.Users, want) {
		t.Errorf("MatrixView().Users = %+v, want %+v", v.Users, want)
	}
	if want := []int64{0}; !reflect.DeepEqual(v.Rows[0].Quantities, want) {
		t.Errorf("MatrixView() quantities = %v, want %v", v.Rows[0].Quantities, want)
	}
}

func TestBook_MatrixView_Empty(t *testing.T) {
	v := New().MatrixView()
	if len(v.Users) != 0 || len(v.Rows) != 0 {
		t.Errorf("MatrixView() on empty book = %+v, want empty", v)
	}
}
