package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command for questions.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <question-id>",
		Short: "Delete a question and its thread replies",
		Long: `Delete a question you asked (or any question, as an admin).

Thread replies are deleted under the same rule, one by one: replies asked
by someone else are skipped and stay in place. A skipped reply does not
fail the overall delete.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			questionID, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid question id", err)
			}

			dir, store, err := openBoard(opts)
			if err != nil {
				return err
			}
			actor, err := requireLogin(opts, dir)
			if err != nil {
				return err
			}

			if !store.Delete(questionID, actor) {
				return NewExitError(ExitFailure,
					fmt.Sprintf("could not delete question %d: not found or not yours", questionID))
			}

			out := newFormatter(opts, cmd.OutOrStdout())
			if out.JSON() {
				return out.SuccessJSON(map[string]any{"deleted": questionID})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted question ID: %d\n", questionID)
			return nil
		},
	}
}
