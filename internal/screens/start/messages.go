package start

import (
	"github.com/priyal/worklens/internal/assessment"
)

// startedMsg carries the result of the participant registration round-trip.
// The session is only mutated when the message is applied in Update.
type startedMsg struct {
	Res assessment.StartResult
	Err error
}
