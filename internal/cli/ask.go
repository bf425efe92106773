package cli

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/M0hammed-Reda/askme/internal/board"
)

// AskOptions holds flags for the ask command.
type AskOptions struct {
	*RootOptions
	To        int    `validate:"required,gt=0"`
	Text      string `validate:"required"`
	Parent    int
	Anonymous bool
}

// NewAskCommand creates the ask command.
func NewAskCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AskOptions{RootOptions: rootOpts, Parent: board.TopLevel}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a question to another user",
		Long: `Ask a question to another user, optionally anonymously or as a reply
inside an existing thread.

Anonymous questions are rejected if the recipient does not accept them.
A --parent id attaches the question to that thread; the parent is not
checked for existence, matching how the data files have always worked.

Example:
  askme ask -u 2 -p s3cret --to 5 --text "What is your favorite book?"
  askme ask -u 2 -p s3cret --to 5 --parent 7 --anonymous --text "And why?"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.To, "to", 0, "recipient user id (required)")
	cmd.Flags().StringVar(&opts.Text, "text", "", "question text (required)")
	cmd.Flags().IntVar(&opts.Parent, "parent", board.TopLevel, "parent question id for thread replies")
	cmd.Flags().BoolVar(&opts.Anonymous, "anonymous", false, "hide your identity from the recipient")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func runAsk(opts *AskOptions, cmd *cobra.Command) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(opts); err != nil {
		return WrapExitError(ExitCommandError, "invalid ask input", err)
	}

	dir, store, err := openBoard(opts.RootOptions)
	if err != nil {
		return err
	}
	actor, err := requireLogin(opts.RootOptions, dir)
	if err != nil {
		return err
	}

	q := board.Question{
		ID:         store.NextID(),
		ParentID:   opts.Parent,
		FromUserID: actor.ID,
		ToUserID:   opts.To,
		Anonymous:  opts.Anonymous,
		Text:       opts.Text,
	}
	if !store.Create(q) {
		return NewExitError(ExitFailure, "question rejected: recipient missing, id clash, or anonymous questions not accepted")
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.SuccessJSON(viewOf(q))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Question submitted successfully!")
	fmt.Fprintf(cmd.OutOrStdout(), "  Question ID: %d\n", q.ID)
	if q.IsThread() {
		fmt.Fprintf(cmd.OutOrStdout(), "  Thread to question ID: %d\n", q.ParentID)
	}
	return nil
}
