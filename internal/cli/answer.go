package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// AnswerOptions holds flags for the answer command.
type AnswerOptions struct {
	*RootOptions
	Text string
}

// NewAnswerCommand creates the answer command.
func NewAnswerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnswerOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "answer <question-id>",
		Short: "Answer a question addressed to you",
		Long: `Answer a question addressed to you, or revise an existing answer.

Only the question's recipient may answer it. The check happens here, in
the command layer; the store's update operation is a plain replace by
contract.

Example:
  askme answer 7 -u 5 -p s3cret --text "Probably The Dispossessed."`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnswer(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Text, "text", "", "answer text (required)")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func runAnswer(opts *AnswerOptions, arg string, cmd *cobra.Command) error {
	questionID, err := strconv.Atoi(arg)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid question id", err)
	}

	dir, store, err := openBoard(opts.RootOptions)
	if err != nil {
		return err
	}
	actor, err := requireLogin(opts.RootOptions, dir)
	if err != nil {
		return err
	}

	q, err := store.GetByID(questionID)
	if err != nil {
		return WrapExitError(ExitFailure, "question not found", err)
	}

	// Recipient-only rule, enforced caller-side.
	if q.ToUserID != actor.ID {
		return NewExitError(ExitFailure, "you can only answer questions addressed to you")
	}

	revised := q.Answered()
	q.Answer = opts.Text
	if !store.Update(q) {
		return NewExitError(ExitFailure, "could not record answer")
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.SuccessJSON(viewOf(q))
	}
	if revised {
		fmt.Fprintln(cmd.OutOrStdout(), "Answer updated successfully!")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Answer submitted successfully!")
	}
	return nil
}
