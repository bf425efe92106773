package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewThreadCommand creates the thread command: replies to a parent
// question.
func NewThreadCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "thread <parent-question-id>",
		Short:         "Show the replies in a question thread",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parentID, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid question id", err)
			}

			dir, store, err := openBoard(opts)
			if err != nil {
				return err
			}
			if _, err := requireLogin(opts, dir); err != nil {
				return err
			}

			if _, err := store.GetByID(parentID); err != nil {
				return WrapExitError(ExitFailure, "parent question not found", err)
			}

			children := store.ThreadChildren(parentID)
			out := newFormatter(opts, cmd.OutOrStdout())
			if out.JSON() {
				return out.SuccessJSON(viewsOf(children))
			}
			renderQuestionList(cmd.OutOrStdout(),
				fmt.Sprintf("Threads for question ID %d", parentID), children,
				"No thread questions found for this parent question.")
			return nil
		},
	}
}
