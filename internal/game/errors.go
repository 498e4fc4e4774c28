// internal/game/errors.go
//
// Error kinds surfaced by the guess engine.
// All failures here are local to the offending call: invalid input is
// recoverable (re-prompt the player), invalid state is a caller usage
// error. Neither mutates round state.

package game

// InvalidInputReason identifies why a guess was rejected before
// comparison.
type InvalidInputReason string

const (
	ReasonEmpty          InvalidInputReason = "empty"
	ReasonLengthMismatch InvalidInputReason = "length_mismatch"
	ReasonNonAlphabetic  InvalidInputReason = "non_alphabetic"
)

// InvalidInputError rejects a malformed guess. The caller is expected
// to re-prompt the player; round state is untouched.
type InvalidInputError struct {
	Reason InvalidInputReason
}

func (e *InvalidInputError) Error() string {
	return "invalid guess: " + string(e.Reason)
}

// InvalidStateError reports a guess submitted after the round reached a
// terminal outcome.
type InvalidStateError struct {
	Outcome Outcome
}

func (e *InvalidStateError) Error() string {
	return "round_already_ended: outcome is " + string(e.Outcome)
}
