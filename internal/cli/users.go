package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command group (admin only).
func NewUsersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer user accounts",
	}
	cmd.AddCommand(newUsersListCommand(rootOpts))
	cmd.AddCommand(newUsersDeleteCommand(rootOpts))
	return cmd
}

func newUsersListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List all user accounts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _, err := openBoard(opts)
			if err != nil {
				return err
			}
			if _, err := requireAdmin(opts, dir); err != nil {
				return err
			}

			out := newFormatter(opts, cmd.OutOrStdout())
			users := dir.All()
			if out.JSON() {
				type userView struct {
					ID             int    `json:"id"`
					Name           string `json:"name"`
					Username       string `json:"username"`
					Email          string `json:"email"`
					AllowAnonymous bool   `json:"allow_anonymous"`
					Role           string `json:"role"`
				}
				views := make([]userView, len(users))
				for i, u := range users {
					views[i] = userView{
						ID:             u.ID,
						Name:           u.Name,
						Username:       u.Username,
						Email:          u.Email,
						AllowAnonymous: u.AllowAnonymous,
						Role:           u.Role.String(),
					}
				}
				return out.SuccessJSON(views)
			}

			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found")
				return nil
			}
			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\tName: %s\tRole: %s\n", u.ID, u.Name, u.Role)
			}
			return nil
		},
	}
}

func newUsersDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <user-id>",
		Short:         "Delete a user account",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid user id", err)
			}

			dir, _, err := openBoard(opts)
			if err != nil {
				return err
			}
			if _, err := requireAdmin(opts, dir); err != nil {
				return err
			}

			if !dir.Delete(id) {
				return NewExitError(ExitFailure, fmt.Sprintf("user %d not found", id))
			}

			out := newFormatter(opts, cmd.OutOrStdout())
			if out.JSON() {
				return out.SuccessJSON(map[string]any{"deleted": id})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user ID: %d\n", id)
			return nil
		},
	}
}
