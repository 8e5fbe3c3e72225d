package play

import (
	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/engine"
	sess "github.com/abhisek/cogniz/internal/session"
)

// sessionStartedMsg is sent when the sitting has been opened.
type sessionStartedMsg struct {
	State *sess.SessionState
	Err   error
}

// roundReadyMsg is sent when the next round has been planned and resolved.
// A nil activity with a nil error means the sitting reached its recap or
// the library has nothing playable for the learner's band.
type roundReadyMsg struct {
	Activity *content.Activity
	Err      error
}

// answerResultMsg is sent after an answer has been graded and persisted.
type answerResultMsg struct {
	Result *engine.AnswerResult
	Err    error
}

// sessionClosedMsg is sent after the end-of-session event has been written.
type sessionClosedMsg struct {
	Err error
}
