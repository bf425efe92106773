package board

import (
	"strconv"

	"github.com/M0hammed-Reda/askme/internal/record"
)

// Role is a user's privilege level.
type Role int

const (
	// RoleAdmin grants full system access: user management, the global
	// question feed, and deletion of any question.
	RoleAdmin Role = iota

	// RoleRegular is the standard privilege level.
	RoleRegular
)

// String returns the display label for the role.
func (r Role) String() string {
	if r == RoleAdmin {
		return "Admin"
	}
	return "User"
}

// User is an account in the system. The id is immutable once created;
// everything else changes only through explicit directory updates.
//
// Password is stored and compared in plaintext by design; see the package
// documentation.
type User struct {
	ID             int
	Name           string
	Password       string
	Username       string
	Email          string
	AllowAnonymous bool
	Role           Role
}

// VerifyPassword reports whether the given password matches exactly.
// The comparison is case-sensitive.
func (u User) VerifyPassword(password string) bool {
	return u.Password == password
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// EncodeRecord serializes the user to its file line:
// id,name,password,username,email,allowAnonymous,role.
func (u User) EncodeRecord() string {
	return record.Encode([]string{
		strconv.Itoa(u.ID),
		u.Name,
		u.Password,
		u.Username,
		u.Email,
		encodeBool(u.AllowAnonymous),
		strconv.Itoa(int(u.Role)),
	})
}

// decodeUser parses a user from decoded line fields. At least 7 fields
// are required; numeric fields must parse. An unrecognized role value
// falls back to RoleRegular rather than failing, so legacy or
// hand-edited lines keep loading.
func decodeUser(fields []string) (User, error) {
	if len(fields) < 7 {
		return User{}, NewError(ErrCodeMalformedRecord, "user line has %d fields, need 7", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return User{}, &Error{Code: ErrCodeMalformedRecord, Message: "bad user id", Err: err}
	}

	role := RoleRegular
	if fields[6] == "0" {
		role = RoleAdmin
	}

	return User{
		ID:             id,
		Name:           fields[1],
		Password:       fields[2],
		Username:       fields[3],
		Email:          fields[4],
		AllowAnonymous: decodeBool(fields[5]),
		Role:           role,
	}, nil
}

// encodeBool matches the historical flag format: "1" or "0".
func encodeBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// decodeBool accepts the historical flag spellings "1" and "true";
// everything else is false.
func decodeBool(token string) bool {
	return token == "1" || token == "true"
}
