package cli

import (
	"github.com/M0hammed-Reda/askme/internal/board"
	"github.com/M0hammed-Reda/askme/internal/config"
	"github.com/M0hammed-Reda/askme/internal/session"
)

// openBoard loads configuration and constructs the two stores. Both
// stores tolerate missing or partially malformed files, so this only
// fails on configuration problems.
func openBoard(opts *RootOptions) (*board.UserDirectory, *board.QuestionStore, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	dir := board.NewUserDirectory(cfg.Storage.UsersFile)
	store := board.NewQuestionStore(cfg.Storage.QuestionsFile, dir)
	return dir, store, nil
}

// requireLogin authenticates the acting user from the global --user and
// --password flags.
func requireLogin(opts *RootOptions, dir *board.UserDirectory) (board.User, error) {
	if opts.UserID <= 0 {
		return board.User{}, NewExitError(ExitCommandError, "this command requires --user and --password")
	}
	u, err := session.New(dir).Login(opts.UserID, opts.Password)
	if err != nil {
		return board.User{}, WrapExitError(ExitFailure, "login failed", err)
	}
	return u, nil
}

// requireAdmin authenticates the acting user and rejects non-admins.
func requireAdmin(opts *RootOptions, dir *board.UserDirectory) (board.User, error) {
	u, err := requireLogin(opts, dir)
	if err != nil {
		return board.User{}, err
	}
	if !u.IsAdmin() {
		return board.User{}, NewExitError(ExitFailure, "access denied: administrators only")
	}
	return u, nil
}
