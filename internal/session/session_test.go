package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M0hammed-Reda/askme/internal/board"
)

func newFixture(t *testing.T) (*board.UserDirectory, *Service) {
	t.Helper()
	dir := board.NewUserDirectory(filepath.Join(t.TempDir(), "users.txt"))
	require.True(t, dir.Add(board.User{
		ID: 1, Name: "Ada", Password: "pw", Username: "ada", Email: "ada@x.com",
	}))
	return dir, New(dir)
}

func TestLogin_Success(t *testing.T) {
	_, svc := newFixture(t)

	u, err := svc.Login(1, "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.True(t, svc.LoggedIn())

	cur, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, u, cur)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, svc := newFixture(t)

	_, err := svc.Login(1, "PW")
	require.Error(t, err)
	assert.True(t, board.IsUnauthorized(err))
	assert.False(t, svc.LoggedIn())
}

func TestLogin_UnknownUser(t *testing.T) {
	_, svc := newFixture(t)

	_, err := svc.Login(9, "pw")
	require.Error(t, err)
	assert.True(t, board.IsUnauthorized(err))
}

func TestSignUp_AssignsNextID(t *testing.T) {
	dir, svc := newFixture(t)

	u, err := svc.SignUp(SignUpInput{
		Name:           "Grace",
		Password:       "hopper",
		Username:       "grace",
		Email:          "grace@x.com",
		AllowAnonymous: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, u.ID)
	assert.Equal(t, board.RoleRegular, u.Role)
	assert.True(t, svc.LoggedIn())

	stored, err := dir.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, u, stored)
}

func TestSignUp_RejectsInvalidInput(t *testing.T) {
	_, svc := newFixture(t)

	cases := []SignUpInput{
		{Name: "", Password: "p", Username: "u", Email: "u@x.com"},
		{Name: "N", Password: "", Username: "u", Email: "u@x.com"},
		{Name: "N", Password: "p", Username: "", Email: "u@x.com"},
		{Name: "N", Password: "p", Username: "u", Email: "not-an-email"},
	}
	for _, in := range cases {
		_, err := svc.SignUp(in)
		require.Error(t, err, "input %+v", in)
		var be *board.Error
		require.ErrorAs(t, err, &be)
		assert.Equal(t, board.ErrCodeValidationFailed, be.Code)
	}
	assert.False(t, svc.LoggedIn())
}

func TestLogout(t *testing.T) {
	_, svc := newFixture(t)

	_, err := svc.Login(1, "pw")
	require.NoError(t, err)
	svc.Logout()

	assert.False(t, svc.LoggedIn())
	_, err = svc.Current()
	assert.Error(t, err)
}
