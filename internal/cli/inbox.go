package cli

import (
	"github.com/spf13/cobra"
)

// NewInboxCommand creates the inbox command: questions addressed to the
// acting user.
func NewInboxCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "inbox",
		Short:         "Show questions addressed to you",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, store, err := openBoard(opts)
			if err != nil {
				return err
			}
			actor, err := requireLogin(opts, dir)
			if err != nil {
				return err
			}

			questions := store.QuestionsTo(actor.ID)
			out := newFormatter(opts, cmd.OutOrStdout())
			if out.JSON() {
				return out.SuccessJSON(viewsOf(questions))
			}
			renderQuestionList(cmd.OutOrStdout(), "Questions To You", questions,
				"No questions found addressed to you.")
			return nil
		},
	}
}
