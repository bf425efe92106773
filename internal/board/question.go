package board

import (
	"strconv"

	"github.com/M0hammed-Reda/askme/internal/record"
)

// TopLevel is the ParentID of a question that starts its own thread.
const TopLevel = -1

// Question is a question/answer record between two users.
//
// ParentID links thread replies: TopLevel (-1) marks a top-level
// question, any other value names the parent question's id. Parent ids
// are not validated at creation, so a reply can reference a parent that
// does not (or no longer) exists; thread lookups are query-time scans,
// not a maintained index.
//
// FromUserID is always stored, even for anonymous questions; anonymity
// only suppresses it from display.
type Question struct {
	ID         int
	ParentID   int
	FromUserID int
	ToUserID   int
	Anonymous  bool
	Text       string
	Answer     string
}

// Answered reports whether the question has a non-empty answer.
func (q Question) Answered() bool {
	return q.Answer != ""
}

// IsThread reports whether the question is a reply inside a thread.
func (q Question) IsThread() bool {
	return q.ParentID != TopLevel
}

// EncodeRecord serializes the question to its file line:
// id,parentId,fromUserId,toUserId,anonymous,text,answer.
func (q Question) EncodeRecord() string {
	return record.Encode([]string{
		strconv.Itoa(q.ID),
		strconv.Itoa(q.ParentID),
		strconv.Itoa(q.FromUserID),
		strconv.Itoa(q.ToUserID),
		encodeBool(q.Anonymous),
		q.Text,
		q.Answer,
	})
}

// decodeQuestion parses a question from decoded line fields. At least 6
// fields are required; the answer field is optional and defaults to
// empty (unanswered).
func decodeQuestion(fields []string) (Question, error) {
	if len(fields) < 6 {
		return Question{}, NewError(ErrCodeMalformedRecord, "question line has %d fields, need 6", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Question{}, &Error{Code: ErrCodeMalformedRecord, Message: "bad question id", Err: err}
	}
	parentID, err := strconv.Atoi(fields[1])
	if err != nil {
		return Question{}, &Error{Code: ErrCodeMalformedRecord, Message: "bad parent id", Err: err}
	}
	fromID, err := strconv.Atoi(fields[2])
	if err != nil {
		return Question{}, &Error{Code: ErrCodeMalformedRecord, Message: "bad sender id", Err: err}
	}
	toID, err := strconv.Atoi(fields[3])
	if err != nil {
		return Question{}, &Error{Code: ErrCodeMalformedRecord, Message: "bad recipient id", Err: err}
	}

	answer := ""
	if len(fields) >= 7 {
		answer = fields[6]
	}

	return Question{
		ID:         id,
		ParentID:   parentID,
		FromUserID: fromID,
		ToUserID:   toID,
		Anonymous:  decodeBool(fields[4]),
		Text:       fields[5],
		Answer:     answer,
	}, nil
}
