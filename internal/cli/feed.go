package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFeedCommand creates the feed command: every question in the system,
// administrators only.
func NewFeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "feed",
		Short:         "Show all questions in the system (admin)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, store, err := openBoard(opts)
			if err != nil {
				return err
			}
			if _, err := requireAdmin(opts, dir); err != nil {
				return err
			}

			questions := store.All()
			out := newFormatter(opts, cmd.OutOrStdout())
			if out.JSON() {
				return out.SuccessJSON(viewsOf(questions))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "─── System Questions Feed ───")
			if len(questions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No questions in the system yet.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total questions: %d\n\n", len(questions))
			for _, q := range questions {
				renderQuestion(cmd.OutOrStdout(), q)
			}
			return nil
		},
	}
}
