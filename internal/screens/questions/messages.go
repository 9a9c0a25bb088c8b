package questions

import (
	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/catalog"
)

// questionsLoadedMsg carries the result of a catalog load. Token ties the
// result to the load that requested it; stale results are dropped.
type questionsLoadedMsg struct {
	Token     int
	Questions []catalog.Question
	Err       error
}

// submittedMsg carries the result of the answer batch round-trip. The
// session is only mutated when the message is applied in Update.
type submittedMsg struct {
	Sub assessment.Submission
	Err error
}
