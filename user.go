package optionbook

import (
	"slices"
	"strings"
)

// User is a participant holding option contracts.
//
// The id is assigned by the book on creation and is immutable. The name is an
// opaque display string; two users may share a name.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateUser registers a new participant and returns it with a fresh id.
func (b *Book) CreateUser(name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, invalidf("user name cannot be empty")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastUserID++
	u := User{ID: b.lastUserID, Name: name}
	b.users = append(b.users, u)
	return u, nil
}

// Users returns all live users in insertion order.
func (b *Book) Users() []User {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.users)
}

// DeleteUser removes a user and every ownership record referencing it.
// Deleting an id that is not live is an error, even if it was live once.
func (b *Book) DeleteUser(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.userIndex(id)
	if i < 0 {
		return notFoundf("user %d not found", id)
	}
	b.users = slices.Delete(b.users, i, i+1)
	b.removeAllForUser(id)
	return nil
}
