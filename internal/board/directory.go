package board

import (
	"log/slog"
	"sort"

	"github.com/M0hammed-Reda/askme/internal/record"
	"github.com/M0hammed-Reda/askme/internal/storage"
)

// UserDirectory is the authoritative in-memory user registry, loaded once
// at construction from its backing file and fully rewritten after every
// successful mutation.
//
// Not safe for concurrent use; the board is single-writer by design.
type UserDirectory struct {
	path  string
	users map[int]User
}

// NewUserDirectory loads the directory from the file at path. A missing
// file yields an empty directory; malformed lines are skipped with a
// logged warning and never abort the load.
func NewUserDirectory(path string) *UserDirectory {
	d := &UserDirectory{
		path:  path,
		users: make(map[int]User),
	}
	for _, line := range storage.Lines(path) {
		u, err := decodeUser(record.Decode(line))
		if err != nil {
			slog.Warn("skipping malformed user line", "line", line, "error", err)
			continue
		}
		d.users[u.ID] = u
	}
	return d
}

// GetByID returns the user with the given id, or a NOT_FOUND error.
// Callers are expected to have validated existence first; this is the one
// lookup that fails loudly.
func (d *UserDirectory) GetByID(id int) (User, error) {
	u, ok := d.users[id]
	if !ok {
		return User{}, NewError(ErrCodeNotFound, "user %d not found", id)
	}
	return u, nil
}

// Add inserts a new user and persists the directory. Returns false if the
// id is already taken (the existing record is left intact) or if the
// persist fails.
func (d *UserDirectory) Add(u User) bool {
	if _, exists := d.users[u.ID]; exists {
		slog.Error("user id already exists", "id", u.ID)
		return false
	}
	d.users[u.ID] = u
	return d.persist()
}

// Update replaces an existing user's record and persists. Returns false
// if the id is absent.
func (d *UserDirectory) Update(u User) bool {
	if _, exists := d.users[u.ID]; !exists {
		slog.Error("user not found for update", "id", u.ID)
		return false
	}
	d.users[u.ID] = u
	return d.persist()
}

// Delete removes the user with the given id and persists. Returns false
// if the id is absent.
func (d *UserDirectory) Delete(id int) bool {
	if _, exists := d.users[id]; !exists {
		return false
	}
	delete(d.users, id)
	return d.persist()
}

// Authenticate reports whether the user exists and the password matches
// exactly. Plaintext comparison, case-sensitive; see the package
// documentation for why this is not hashed.
func (d *UserDirectory) Authenticate(id int, password string) bool {
	u, ok := d.users[id]
	return ok && u.VerifyPassword(password)
}

// NextID returns the next available user id: max existing id + 1, or 1
// when the directory is empty. Ids are not reserved, so deleting the
// current max makes its id available again.
func (d *UserDirectory) NextID() int {
	maxID := 0
	for id := range d.users {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// All returns every user sorted by id, for stable listings.
func (d *UserDirectory) All() []User {
	users := make([]User, 0, len(d.users))
	for _, u := range d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// Len returns the number of users in the directory.
func (d *UserDirectory) Len() int {
	return len(d.users)
}

// persist rewrites the backing file with the full directory. On failure
// the in-memory state stays ahead of disk until the next successful
// persist; there is no rollback.
func (d *UserDirectory) persist() bool {
	lines := make([]string, 0, len(d.users))
	for _, u := range d.All() {
		lines = append(lines, u.EncodeRecord())
	}
	return storage.Rewrite(d.path, lines)
}
