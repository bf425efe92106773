package cli

import (
	"fmt"
	"io"

	"github.com/M0hammed-Reda/askme/internal/board"
)

// questionView is the JSON projection of a question. From is omitted for
// anonymous questions; the stored sender identity never leaves the core
// through display paths.
type questionView struct {
	ID        int    `json:"id"`
	ParentID  int    `json:"parent_id"`
	From      *int   `json:"from,omitempty"`
	To        int    `json:"to"`
	Anonymous bool   `json:"anonymous"`
	Text      string `json:"text"`
	Answer    string `json:"answer,omitempty"`
	Answered  bool   `json:"answered"`
}

func viewOf(q board.Question) questionView {
	v := questionView{
		ID:        q.ID,
		ParentID:  q.ParentID,
		To:        q.ToUserID,
		Anonymous: q.Anonymous,
		Text:      q.Text,
		Answer:    q.Answer,
		Answered:  q.Answered(),
	}
	if !q.Anonymous {
		from := q.FromUserID
		v.From = &from
	}
	return v
}

func viewsOf(questions []board.Question) []questionView {
	views := make([]questionView, len(questions))
	for i, q := range questions {
		views[i] = viewOf(q)
	}
	return views
}

// renderQuestion writes one question in the board's text format. Thread
// replies get a prefix and drop the recipient line; anonymous senders
// display as "Anonymous".
func renderQuestion(w io.Writer, q board.Question) {
	thread := q.IsThread()
	if thread {
		fmt.Fprint(w, "├─ Thread ")
	}
	fmt.Fprintf(w, "Question ID: %d\n", q.ID)
	if !thread {
		fmt.Fprintf(w, "To: User ID %d\n", q.ToUserID)
	}
	if !q.Anonymous || !thread {
		from := "Anonymous"
		if !q.Anonymous {
			from = fmt.Sprintf("User ID %d", q.FromUserID)
		}
		fmt.Fprintf(w, "From: %s\n", from)
	}
	fmt.Fprintf(w, "Question: %s\n", q.Text)
	answer := "Not answered yet"
	if q.Answered() {
		answer = q.Answer
	}
	fmt.Fprintf(w, "Answer: %s\n", answer)
	if thread {
		fmt.Fprint(w, "  ───\n")
	} else {
		fmt.Fprint(w, "───\n")
	}
}

// renderQuestionList writes a heading and every question, or the empty
// message when there are none.
func renderQuestionList(w io.Writer, heading string, questions []board.Question, emptyMsg string) {
	fmt.Fprintf(w, "─── %s ───\n", heading)
	if len(questions) == 0 {
		fmt.Fprintln(w, emptyMsg)
		return
	}
	for _, q := range questions {
		renderQuestion(w, q)
	}
}
