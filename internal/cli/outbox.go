package cli

import (
	"github.com/spf13/cobra"
)

// NewOutboxCommand creates the outbox command: questions asked by the
// acting user. The sender sees their own questions in full, anonymous or
// not.
func NewOutboxCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "outbox",
		Short:         "Show questions you have asked",
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

			questions := store.QuestionsFrom(actor.ID)
			out := newFormatter(opts, cmd.OutOrStdout())
			if out.JSON() {
				return out.SuccessJSON(viewsOf(questions))
			}
			renderQuestionList(cmd.OutOrStdout(), "Questions From You", questions,
				"You haven't asked any questions yet.")
			return nil
		},
	}
}
