package practice

import (
	"time"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
)

// challengeReadyMsg is sent when the next challenge has been generated.
type challengeReadyMsg struct {
	Challenge *challenge.Challenge
	Err       error
}

// timerTickMsg is sent every second to refresh the elapsed clock.
type timerTickMsg time.Time

// persistDoneMsg confirms that the attempt event and state snapshot
// were written.
type persistDoneMsg struct {
	Err error
}
