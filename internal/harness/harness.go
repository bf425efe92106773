// Package harness replays scripted board scenarios against real stores
// in a scratch directory and records a plain-text transcript. Golden
// files pin the transcripts, so authorization and cascade behavior stay
// visible in review when they change.
package harness

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/M0hammed-Reda/askme/internal/board"
)

// Run executes the scenario against fresh stores rooted at baseDir and
// returns the transcript. Step-level rejections (denied deletes, refused
// anonymous questions) are part of the transcript, not errors; only a
// malformed scenario fails Run itself.
func Run(s *Scenario, baseDir string) ([]byte, error) {
	dir := board.NewUserDirectory(filepath.Join(baseDir, "users.txt"))
	for _, seed := range s.Users {
		role := board.RoleRegular
		if seed.Admin {
			role = board.RoleAdmin
		}
		ok := dir.Add(board.User{
			ID:             seed.ID,
			Name:           seed.Name,
			Password:       seed.Password,
			Username:       seed.Username,
			Email:          seed.Email,
			AllowAnonymous: seed.AllowAnonymous,
			Role:           role,
		})
		if !ok {
			return nil, fmt.Errorf("scenario %s: could not seed user %d", s.Name, seed.ID)
		}
	}

	store := board.NewQuestionStore(filepath.Join(baseDir, "questions.txt"), dir)

	var b strings.Builder
	for i, step := range s.Steps {
		if err := runStep(&b, step, dir, store); err != nil {
			return nil, fmt.Errorf("scenario %s: step %d: %w", s.Name, i, err)
		}
	}
	fmt.Fprintf(&b, "final: %d questions\n", store.Len())
	return []byte(b.String()), nil
}

func runStep(b *strings.Builder, step Step, dir *board.UserDirectory, store *board.QuestionStore) error {
	switch step.Op {
	case "ask":
		parent := step.Parent
		if parent == 0 {
			parent = board.TopLevel
		}
		q := board.Question{
			ID:         store.NextID(),
			ParentID:   parent,
			FromUserID: step.Actor,
			ToUserID:   step.To,
			Anonymous:  step.Anonymous,
			Text:       step.Text,
		}
		if store.Create(q) {
			fmt.Fprintf(b, "ask actor=%d to=%d -> id=%d\n", step.Actor, step.To, q.ID)
		} else {
			fmt.Fprintf(b, "ask actor=%d to=%d -> rejected\n", step.Actor, step.To)
		}

	case "answer":
		// The harness plays the calling layer, so the recipient-only
		// rule is applied here, before the store update.
		q, err := store.GetByID(step.ID)
		if err != nil {
			fmt.Fprintf(b, "answer id=%d actor=%d -> not found\n", step.ID, step.Actor)
			return nil
		}
		if q.ToUserID != step.Actor {
			fmt.Fprintf(b, "answer id=%d actor=%d -> denied\n", step.ID, step.Actor)
			return nil
		}
		q.Answer = step.Text
		if store.Update(q) {
			fmt.Fprintf(b, "answer id=%d actor=%d -> ok\n", step.ID, step.Actor)
		} else {
			fmt.Fprintf(b, "answer id=%d actor=%d -> failed\n", step.ID, step.Actor)
		}

	case "delete":
		actor, err := dir.GetByID(step.Actor)
		if err != nil {
			return err
		}
		if store.Delete(step.ID, actor) {
			fmt.Fprintf(b, "delete id=%d actor=%d -> ok\n", step.ID, step.Actor)
		} else {
			fmt.Fprintf(b, "delete id=%d actor=%d -> rejected\n", step.ID, step.Actor)
		}

	case "inbox":
		fmt.Fprintf(b, "inbox actor=%d -> %s\n", step.Actor, idList(store.QuestionsTo(step.Actor)))

	case "outbox":
		fmt.Fprintf(b, "outbox actor=%d -> %s\n", step.Actor, idList(store.QuestionsFrom(step.Actor)))

	case "thread":
		fmt.Fprintf(b, "thread parent=%d -> %s\n", step.ID, idList(store.ThreadChildren(step.ID)))

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	return nil
}

// idList formats question ids like "[1 3]"; results are already sorted
// by id.
func idList(questions []board.Question) string {
	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return fmt.Sprintf("%v", ids)
}
