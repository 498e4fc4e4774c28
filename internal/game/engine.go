// internal/game/engine.go
//
// Core guess engine for a single puzzle round.
// Responsibilities:
//   - Start rounds from a puzzle word + hint pattern supplied by the
//     puzzle source.
//   - Validate guesses in order: terminal-state check, empty,
//     length mismatch, non-alphabetic. Comparison is case-insensitive.
//   - Track state transitions: in_progress → won/abandoned.
//
// Notes:
//   - There is no attempt cap: any number of well-formed wrong guesses
//     leaves the round in progress.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/puzzleword/go-server/internal/puzzle"
)

// StartRound constructs a fresh round around word and hint.
// No side effects beyond allocation; outcome starts as in_progress.
func StartRound(word puzzle.Word, hint puzzle.HintPattern) *Round {
	return &Round{
		ID:        randomID(),
		Word:      word,
		Hint:      hint,
		Outcome:   OutcomeInProgress,
		StartedAt: time.Now().UTC(),
	}
}

// SubmitGuess validates and applies one guess, mutating the round only
// on a correct match.
//
// Validation rules, in order:
//   - Round must still be in progress (InvalidStateError otherwise).
//   - Guess must be non-empty after trimming (InvalidInputError: empty).
//   - Guess must have exactly as many letters as the puzzle word
//     (InvalidInputError: length_mismatch).
//   - Guess must be alphabetic a–z (InvalidInputError: non_alphabetic).
//
// A well-formed wrong guess returns Correct=false and leaves the
// outcome in_progress; retries are unlimited.
func (r *Round) SubmitGuess(guess string) (GuessResult, error) {
	if r.Outcome.Terminal() {
		return GuessResult{Outcome: r.Outcome}, &InvalidStateError{Outcome: r.Outcome}
	}

	guess = strings.ToLower(strings.TrimSpace(guess))
	if guess == "" {
		return GuessResult{Outcome: r.Outcome}, &InvalidInputError{Reason: ReasonEmpty}
	}
	if utf8.RuneCountInString(guess) != r.Word.Len() {
		return GuessResult{Outcome: r.Outcome}, &InvalidInputError{Reason: ReasonLengthMismatch}
	}
	if !isAlpha(guess) {
		return GuessResult{Outcome: r.Outcome}, &InvalidInputError{Reason: ReasonNonAlphabetic}
	}

	r.Guesses++
	if guess == r.Word.String() {
		r.Outcome = OutcomeWon
		return GuessResult{Correct: true, Outcome: r.Outcome}, nil
	}
	return GuessResult{Correct: false, Outcome: r.Outcome}, nil
}

// Abandon moves an in-progress round to abandoned.
// Idempotent: calling it on a terminal round is a no-op.
func (r *Round) Abandon() {
	if r.Outcome == OutcomeInProgress {
		r.Outcome = OutcomeAbandoned
	}
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
