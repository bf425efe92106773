package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M0hammed-Reda/askme/internal/board"
)

// setupBoardFiles points the CLI at temp record files and seeds three
// users: admin 1/adminpw, and regulars 2/openpw (accepts anonymous) and
// 3/shypw (does not).
func setupBoardFiles(t *testing.T) {
	t.Helper()
	base := t.TempDir()
	usersPath := filepath.Join(base, "users.txt")
	questionsPath := filepath.Join(base, "questions.txt")
	t.Setenv("ASKME_USERS_FILE", usersPath)
	t.Setenv("ASKME_QUESTIONS_FILE", questionsPath)

	dir := board.NewUserDirectory(usersPath)
	require.True(t, dir.Add(board.User{ID: 1, Name: "Root", Password: "adminpw", Username: "root", Email: "root@x.com", Role: board.RoleAdmin}))
	require.True(t, dir.Add(board.User{ID: 2, Name: "Open", Password: "openpw", Username: "open", Email: "open@x.com", AllowAnonymous: true, Role: board.RoleRegular}))
	require.True(t, dir.Add(board.User{ID: 3, Name: "Shy", Password: "shypw", Username: "shy", Email: "shy@x.com", Role: board.RoleRegular}))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_InvalidFormatRejected(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "--format", "xml", "inbox")
	assert.Error(t, err)
}

func TestCLI_SignupAssignsID(t *testing.T) {
	setupBoardFiles(t)

	out, err := runCLI(t, "signup",
		"--name", "Jane Doe",
		"--username", "jane",
		"--email", "jane@example.com",
		"--new-password", "pw",
		"--allow-anonymous")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, Jane Doe")
	assert.Contains(t, out, "Your user ID is: 4")
}

func TestCLI_SignupRejectsBadEmail(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "signup",
		"--name", "Jane",
		"--username", "jane",
		"--email", "not-an-email",
		"--new-password", "pw")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCLI_AskAndInbox(t *testing.T) {
	setupBoardFiles(t)

	out, err := runCLI(t, "ask", "-u", "2", "-p", "openpw",
		"--to", "3", "--text", "What is your favorite book?")
	require.NoError(t, err)
	assert.Contains(t, out, "Question ID: 1")

	out, err = runCLI(t, "inbox", "-u", "3", "-p", "shypw")
	require.NoError(t, err)
	assert.Contains(t, out, "From: User ID 2")
	assert.Contains(t, out, "What is your favorite book?")
	assert.Contains(t, out, "Not answered yet")
}

func TestCLI_AskRequiresValidLogin(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "ask", "-u", "2", "-p", "wrong",
		"--to", "3", "--text", "hi")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = runCLI(t, "ask", "--to", "3", "--text", "hi")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err), "missing --user is a usage error")
}

func TestCLI_AnonymousAskRejectedByRecipient(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "ask", "-u", "2", "-p", "openpw",
		"--to", "3", "--text", "who?", "--anonymous")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCLI_AnonymousInboxHidesSender(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "ask", "-u", "3", "-p", "shypw",
		"--to", "2", "--text", "guess who?", "--anonymous")
	require.NoError(t, err)

	out, err := runCLI(t, "inbox", "-u", "2", "-p", "openpw")
	require.NoError(t, err)
	assert.Contains(t, out, "From: Anonymous")
	assert.NotContains(t, out, "From: User ID 3")
}

func TestCLI_AnswerOnlyByRecipient(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "ask", "-u", "2", "-p", "openpw",
		"--to", "3", "--text", "how are you?")
	require.NoError(t, err)

	// The asker may not answer their own question to someone else.
	_, err = runCLI(t, "answer", "1", "-u", "2", "-p", "openpw", "--text", "fine")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out, err := runCLI(t, "answer", "1", "-u", "3", "-p", "shypw", "--text", "doing well")
	require.NoError(t, err)
	assert.Contains(t, out, "Answer submitted successfully!")

	// Revising an existing answer is allowed, for the recipient.
	out, err = runCLI(t, "answer", "1", "-u", "3", "-p", "shypw", "--text", "even better now")
	require.NoError(t, err)
	assert.Contains(t, out, "Answer updated successfully!")

	out, err = runCLI(t, "outbox", "-u", "2", "-p", "openpw")
	require.NoError(t, err)
	assert.Contains(t, out, "even better now")
}

func TestCLI_ThreadListing(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "ask", "-u", "2", "-p", "openpw", "--to", "3", "--text", "parent")
	require.NoError(t, err)
	_, err = runCLI(t, "ask", "-u", "2", "-p", "openpw", "--to", "3", "--parent", "1", "--text", "reply")
	require.NoError(t, err)

	out, err := runCLI(t, "thread", "1", "-u", "2", "-p", "openpw")
	require.NoError(t, err)
	assert.Contains(t, out, "├─ Thread Question ID: 2")

	_, err = runCLI(t, "thread", "99", "-u", "2", "-p", "openpw")
	require.Error(t, err, "listing an unknown parent fails")
}

func TestCLI_DeleteCascade(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "ask", "-u", "2", "-p", "openpw", "--to", "3", "--text", "parent")
	require.NoError(t, err)
	_, err = runCLI(t, "ask", "-u", "2", "-p", "openpw", "--to", "3", "--parent", "1", "--text", "own reply")
	require.NoError(t, err)
	_, err = runCLI(t, "ask", "-u", "3", "-p", "shypw", "--to", "2", "--parent", "1", "--text", "foreign reply")
	require.NoError(t, err)

	// A third party may not delete user 2's question.
	_, err = runCLI(t, "delete", "1", "-u", "3", "-p", "shypw")
	require.Error(t, err)

	out, err := runCLI(t, "delete", "1", "-u", "2", "-p", "openpw")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted question ID: 1")

	// The foreign reply survives with a dangling parent.
	out, err = runCLI(t, "feed", "-u", "1", "-p", "adminpw")
	require.NoError(t, err)
	assert.Contains(t, out, "foreign reply")
	assert.NotContains(t, out, "own reply")
}

func TestCLI_FeedAdminOnly(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "feed", "-u", "2", "-p", "openpw")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out, err := runCLI(t, "feed", "-u", "1", "-p", "adminpw")
	require.NoError(t, err)
	assert.Contains(t, out, "No questions in the system yet.")
}

func TestCLI_UsersListAdminOnly(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "users", "list", "-u", "2", "-p", "openpw")
	require.Error(t, err)

	out, err := runCLI(t, "users", "list", "-u", "1", "-p", "adminpw")
	require.NoError(t, err)
	assert.Contains(t, out, "ID: 1\tName: Root\tRole: Admin")
	assert.Contains(t, out, "ID: 2\tName: Open\tRole: User")
}

func TestCLI_UsersDelete(t *testing.T) {
	setupBoardFiles(t)

	out, err := runCLI(t, "users", "delete", "3", "-u", "1", "-p", "adminpw")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted user ID: 3")

	_, err = runCLI(t, "users", "delete", "3", "-u", "1", "-p", "adminpw")
	require.Error(t, err, "second delete finds nothing")
}

func TestCLI_JSONOutput(t *testing.T) {
	setupBoardFiles(t)

	_, err := runCLI(t, "ask", "-u", "3", "-p", "shypw",
		"--to", "2", "--text", "secret admirer?", "--anonymous")
	require.NoError(t, err)

	out, err := runCLI(t, "--format", "json", "inbox", "-u", "2", "-p", "openpw")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), `"from"`, "anonymous sender must be omitted from JSON")
}
