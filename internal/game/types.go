// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Outcome: status of a round (in_progress/won/abandoned).
//   - Round: state for a single in-progress or finished round.
//   - GuessResult: per-guess verdict returned to the caller.

package game

import (
	"time"

	"github.com/puzzleword/go-server/internal/puzzle"
)

// Outcome represents the status of a round.
// Possible values:
//   - "in_progress": the round accepts further guesses.
//   - "won":         the player matched the puzzle word.
//   - "abandoned":   the caller gave up the round.
//
// Transitions only move forward: in_progress → won or abandoned; the
// terminal states never revert.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeAbandoned  Outcome = "abandoned"
)

// Terminal reports whether o accepts no further transitions.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeAbandoned
}

// Round holds the state of a single puzzle round. It exclusively owns
// its puzzle word for the round's duration; nothing is shared between
// rounds.
type Round struct {
	ID        string              // Unique round identifier (random hex string).
	Word      puzzle.Word         // The secret answer (always lowercase).
	Hint      puzzle.HintPattern  // Revealed/masked rendering shown before any guess.
	Outcome   Outcome             // Current status; mutated only by the engine.
	Guesses   int                 // Number of well-formed guesses submitted so far.
	StartedAt time.Time           // Round creation time (UTC).
}

// GuessResult is the verdict for one submitted guess.
type GuessResult struct {
	Correct bool    `json:"correct"`
	Outcome Outcome `json:"outcome"`
}
