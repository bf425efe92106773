package board

import (
	"log/slog"
	"sort"

	"github.com/M0hammed-Reda/askme/internal/record"
	"github.com/M0hammed-Reda/askme/internal/storage"
)

// QuestionStore is the threaded question/answer registry. It owns every
// Question record and consults the UserDirectory for authorization; it
// never mutates the directory.
//
// Not safe for concurrent use; the board is single-writer by design.
type QuestionStore struct {
	path      string
	questions map[int]Question
	dir       *UserDirectory
}

// NewQuestionStore loads the store from the file at path. Lines with
// fewer than 6 fields or unparsable numbers are skipped with a logged
// warning; the optional 7th field is the answer and defaults to empty.
func NewQuestionStore(path string, dir *UserDirectory) *QuestionStore {
	s := &QuestionStore{
		path:      path,
		questions: make(map[int]Question),
		dir:       dir,
	}
	for _, line := range storage.Lines(path) {
		q, err := decodeQuestion(record.Decode(line))
		if err != nil {
			slog.Warn("skipping malformed question line", "line", line, "error", err)
			continue
		}
		s.questions[q.ID] = q
	}
	return s
}

// GetByID returns the question with the given id, or a NOT_FOUND error.
func (s *QuestionStore) GetByID(id int) (Question, error) {
	q, ok := s.questions[id]
	if !ok {
		return Question{}, NewError(ErrCodeNotFound, "question %d not found", id)
	}
	return q, nil
}

// NextID returns the next available question id: max existing id + 1, or
// 1 when the store is empty. Like user ids, question ids are reusable
// after deleting the current max.
func (s *QuestionStore) NextID() int {
	maxID := 0
	for id := range s.questions {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Create validates and inserts a new question, then persists the full
// set. It fails (false, logged, no partial write) when:
//   - the id is already taken,
//   - the recipient does not exist, or
//   - the question is anonymous and the recipient does not allow
//     anonymous questions.
//
// ParentID is deliberately NOT validated: a reply referencing an unknown
// parent is accepted and simply forms an orphan thread. Existing data
// relies on this permissiveness.
func (s *QuestionStore) Create(q Question) bool {
	if _, exists := s.questions[q.ID]; exists {
		slog.Error("question id already exists", "id", q.ID)
		return false
	}

	recipient, err := s.dir.GetByID(q.ToUserID)
	if err != nil {
		slog.Error("question recipient not found", "to", q.ToUserID)
		return false
	}
	if q.Anonymous && !recipient.AllowAnonymous {
		slog.Error("recipient does not accept anonymous questions", "to", q.ToUserID)
		return false
	}

	s.questions[q.ID] = q
	return s.persist()
}

// Update replaces an existing question's record and persists. Returns
// false if the id is absent. This is also the answer path: recording an
// answer is an Update with the Answer field set. The store does not
// re-check that the updater is the recipient; that authorization belongs
// to the calling layer, by contract.
func (s *QuestionStore) Update(q Question) bool {
	if _, exists := s.questions[q.ID]; !exists {
		slog.Error("question not found for update", "id", q.ID)
		return false
	}
	s.questions[q.ID] = q
	return s.persist()
}

// Delete removes a question and cascades over its thread children, then
// persists the full set once.
//
// Authorization: only the asking user or an admin may delete a question.
// The same rule applies per child during the cascade; children owned by
// someone else are skipped and logged, left in place with their ParentID
// now referencing a deleted question. A partial cascade is not an overall
// failure.
func (s *QuestionStore) Delete(questionID int, actor User) bool {
	q, exists := s.questions[questionID]
	if !exists {
		slog.Error("question not found for delete", "id", questionID)
		return false
	}
	if !actor.IsAdmin() && q.FromUserID != actor.ID {
		slog.Warn("delete denied: not the asker and not an admin",
			"id", questionID, "actor", actor.ID)
		return false
	}

	for _, child := range s.ThreadChildren(questionID) {
		if !actor.IsAdmin() && child.FromUserID != actor.ID {
			slog.Warn("skipping thread reply owned by another user",
				"id", child.ID, "actor", actor.ID)
			continue
		}
		delete(s.questions, child.ID)
	}

	delete(s.questions, questionID)
	return s.persist()
}

// QuestionsTo returns every question addressed to the given user, sorted
// by id.
func (s *QuestionStore) QuestionsTo(userID int) []Question {
	return s.filter(func(q Question) bool { return q.ToUserID == userID })
}

// QuestionsFrom returns every question asked by the given user, sorted
// by id.
func (s *QuestionStore) QuestionsFrom(userID int) []Question {
	return s.filter(func(q Question) bool { return q.FromUserID == userID })
}

// ThreadChildren returns every question whose ParentID equals parentID,
// sorted by id. This is a scan, not a maintained index.
func (s *QuestionStore) ThreadChildren(parentID int) []Question {
	return s.filter(func(q Question) bool { return q.ParentID == parentID })
}

// All returns every question sorted by id. Used for the admin feed.
func (s *QuestionStore) All() []Question {
	return s.filter(func(Question) bool { return true })
}

// Len returns the number of questions in the store.
func (s *QuestionStore) Len() int {
	return len(s.questions)
}

func (s *QuestionStore) filter(keep func(Question) bool) []Question {
	var out []Question
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// persist rewrites the backing file with the full question set, sorted by
// id so the file is stable across runs.
func (s *QuestionStore) persist() bool {
	lines := make([]string, 0, len(s.questions))
	for _, q := range s.All() {
		lines = append(lines, q.EncodeRecord())
	}
	return storage.Rewrite(s.path, lines)
}
