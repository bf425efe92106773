// Package session implements login, registration and the current-user
// state consumed by the command layer. The board core stays
// authorization-agnostic where the contract says so (answering); this
// package and the commands own those caller-side checks.
package session

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/M0hammed-Reda/askme/internal/board"
)

// Service tracks the authenticated user for one interactive run.
type Service struct {
	dir      *board.UserDirectory
	validate *validator.Validate
	current  *board.User
}

// New creates a session service over the given directory.
func New(dir *board.UserDirectory) *Service {
	return &Service{
		dir:      dir,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Login authenticates by user id and password. Credentials are compared
// exactly; a miss returns an UNAUTHORIZED error without revealing whether
// the id exists.
func (s *Service) Login(id int, password string) (board.User, error) {
	if !s.dir.Authenticate(id, password) {
		return board.User{}, board.NewError(board.ErrCodeUnauthorized,
			"invalid credentials for user %d", id)
	}
	u, err := s.dir.GetByID(id)
	if err != nil {
		return board.User{}, err
	}
	s.current = &u
	return u, nil
}

// SignUpInput is the validated registration form.
type SignUpInput struct {
	Name           string `validate:"required,min=1,max=100"`
	Password       string `validate:"required,min=1,max=128"`
	Username       string `validate:"required,min=1,max=64"`
	Email          string `validate:"required,email,max=255"`
	AllowAnonymous bool
}

// SignUp registers a new regular user with a generated id and logs them
// in. The generated id must be reported to the user; it is the login
// identifier.
func (s *Service) SignUp(in SignUpInput) (board.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return board.User{}, &board.Error{
			Code:    board.ErrCodeValidationFailed,
			Message: "invalid registration input",
			Err:     err,
		}
	}

	u := board.User{
		ID:             s.dir.NextID(),
		Name:           in.Name,
		Password:       in.Password,
		Username:       in.Username,
		Email:          in.Email,
		AllowAnonymous: in.AllowAnonymous,
		Role:           board.RoleRegular,
	}
	if !s.dir.Add(u) {
		return board.User{}, board.NewError(board.ErrCodePersistenceFailed,
			"could not register user %d", u.ID)
	}

	s.current = &u
	return u, nil
}

// Current returns the logged-in user, or an error if nobody is.
func (s *Service) Current() (board.User, error) {
	if s.current == nil {
		return board.User{}, fmt.Errorf("no user currently logged in")
	}
	return *s.current, nil
}

// LoggedIn reports whether a user is authenticated.
func (s *Service) LoggedIn() bool {
	return s.current != nil
}

// Logout clears the current user.
func (s *Service) Logout() {
	s.current = nil
}
