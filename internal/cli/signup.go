package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/M0hammed-Reda/askme/internal/session"
)

// SignupOptions holds flags for the signup command.
type SignupOptions struct {
	*RootOptions
	Name           string
	Username       string
	Email          string
	NewPassword    string
	AllowAnonymous bool
}

// NewSignupCommand creates the signup command.
func NewSignupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SignupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new user account",
		Long: `Register a new user account with a generated numeric id.

The assigned id is the login identifier for all other commands, so keep
it. New accounts always start as regular users.

Example:
  askme signup --name "Jane Doe" --username jane --email jane@example.com --new-password s3cret --allow-anonymous`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "full display name (required)")
	cmd.Flags().StringVar(&opts.Username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "contact email (required)")
	cmd.Flags().StringVar(&opts.NewPassword, "new-password", "", "account password (required)")
	cmd.Flags().BoolVar(&opts.AllowAnonymous, "allow-anonymous", false, "accept anonymous questions")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("new-password")

	return cmd
}

func runSignup(opts *SignupOptions, cmd *cobra.Command) error {
	dir, _, err := openBoard(opts.RootOptions)
	if err != nil {
		return err
	}

	u, err := session.New(dir).SignUp(session.SignUpInput{
		Name:           opts.Name,
		Password:       opts.NewPassword,
		Username:       opts.Username,
		Email:          opts.Email,
		AllowAnonymous: opts.AllowAnonymous,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "registration failed", err)
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.SuccessJSON(map[string]any{"id": u.ID, "username": u.Username})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registration successful! Welcome, %s.\n", u.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "Your user ID is: %d (keep it, it is your login)\n", u.ID)
	return nil
}
