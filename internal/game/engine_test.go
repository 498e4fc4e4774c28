package game

import (
	"errors"
	"testing"

	"github.com/puzzleword/go-server/internal/puzzle"
)

func mustWord(t *testing.T, s string) puzzle.Word {
	t.Helper()
	w, err := puzzle.NewWord(s)
	if err != nil {
		t.Fatalf("NewWord(%q): %v", s, err)
	}
	return w
}

func startTestRound(t *testing.T, s string) *Round {
	t.Helper()
	w := mustWord(t, s)
	return StartRound(w, puzzle.ComputeHint(w))
}

func TestStartRound(t *testing.T) {
	r := startTestRound(t, "fame")
	if r.Outcome != OutcomeInProgress {
		t.Errorf("new round outcome = %q, want %q", r.Outcome, OutcomeInProgress)
	}
	if r.ID == "" {
		t.Error("new round has empty ID")
	}
	if r.Guesses != 0 {
		t.Errorf("new round guesses = %d, want 0", r.Guesses)
	}
	if got := r.Hint.Masked(); got != "f--e" {
		t.Errorf("hint rendering = %q, want %q", got, "f--e")
	}
}

func TestSubmitGuessValidation(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		guess      string
		wantReason InvalidInputReason
	}{
		{name: "empty", word: "fame", guess: "", wantReason: ReasonEmpty},
		{name: "whitespace only", word: "fame", guess: "   ", wantReason: ReasonEmpty},
		{name: "too long", word: "fame", guess: "fames", wantReason: ReasonLengthMismatch},
		{name: "too short", word: "fame", guess: "fam", wantReason: ReasonLengthMismatch},
		{name: "digit", word: "fame", guess: "g4me", wantReason: ReasonNonAlphabetic},
		{name: "punctuation", word: "fame", guess: "fa-e", wantReason: ReasonNonAlphabetic},
		{name: "non ascii letter", word: "fame", guess: "famé", wantReason: ReasonNonAlphabetic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := startTestRound(t, tt.word)
			_, err := r.SubmitGuess(tt.guess)
			var inputErr *InvalidInputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("SubmitGuess(%q) error = %v, want InvalidInputError", tt.guess, err)
			}
			if inputErr.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", inputErr.Reason, tt.wantReason)
			}
			if r.Outcome != OutcomeInProgress {
				t.Errorf("rejected input mutated outcome to %q", r.Outcome)
			}
			if r.Guesses != 0 {
				t.Errorf("rejected input counted as guess: %d", r.Guesses)
			}
		})
	}
}

func TestSubmitGuessCaseInsensitive(t *testing.T) {
	for _, guess := range []string{"game", "GAME", "GaMe", " game "} {
		r := startTestRound(t, "game")
		res, err := r.SubmitGuess(guess)
		if err != nil {
			t.Fatalf("SubmitGuess(%q): %v", guess, err)
		}
		if !res.Correct {
			t.Errorf("SubmitGuess(%q) correct = false, want true", guess)
		}
		if r.Outcome != OutcomeWon {
			t.Errorf("outcome after %q = %q, want %q", guess, r.Outcome, OutcomeWon)
		}
	}
}

func TestSubmitGuessWrongLeavesRoundOpen(t *testing.T) {
	r := startTestRound(t, "fame")

	res, err := r.SubmitGuess("game")
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if res.Correct {
		t.Error("wrong guess reported correct")
	}
	if r.Outcome != OutcomeInProgress {
		t.Errorf("outcome after wrong guess = %q, want in_progress", r.Outcome)
	}

	// Retries are unlimited: many wrong guesses never end the round.
	for i := 0; i < 50; i++ {
		if _, err := r.SubmitGuess("dame"); err != nil {
			t.Fatalf("wrong guess #%d: %v", i, err)
		}
	}
	if r.Outcome != OutcomeInProgress {
		t.Errorf("outcome after repeated wrong guesses = %q", r.Outcome)
	}

	res, err = r.SubmitGuess("fame")
	if err != nil {
		t.Fatalf("winning guess: %v", err)
	}
	if !res.Correct || r.Outcome != OutcomeWon {
		t.Errorf("winning guess: correct=%v outcome=%q", res.Correct, r.Outcome)
	}
}

func TestSubmitGuessAfterTerminal(t *testing.T) {
	r := startTestRound(t, "game")
	if _, err := r.SubmitGuess("game"); err != nil {
		t.Fatalf("winning guess: %v", err)
	}

	_, err := r.SubmitGuess("game")
	var stateErr *InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("guess after win error = %v, want InvalidStateError", err)
	}
	if r.Outcome != OutcomeWon {
		t.Errorf("outcome changed after terminal guess: %q", r.Outcome)
	}

	// Also holds for abandoned rounds, including malformed input.
	r2 := startTestRound(t, "game")
	r2.Abandon()
	if _, err := r2.SubmitGuess("g4me"); !errors.As(err, &stateErr) {
		t.Errorf("guess after abandon error = %v, want InvalidStateError", err)
	}
}

func TestAbandon(t *testing.T) {
	r := startTestRound(t, "fame")
	r.Abandon()
	if r.Outcome != OutcomeAbandoned {
		t.Fatalf("outcome after abandon = %q, want %q", r.Outcome, OutcomeAbandoned)
	}

	// Idempotent: second call is a no-op.
	r.Abandon()
	if r.Outcome != OutcomeAbandoned {
		t.Errorf("second abandon changed outcome to %q", r.Outcome)
	}

	// Abandon never downgrades a win.
	r2 := startTestRound(t, "game")
	if _, err := r2.SubmitGuess("game"); err != nil {
		t.Fatalf("winning guess: %v", err)
	}
	r2.Abandon()
	if r2.Outcome != OutcomeWon {
		t.Errorf("abandon after win changed outcome to %q", r2.Outcome)
	}
}

func TestOutcomeTerminal(t *testing.T) {
	if OutcomeInProgress.Terminal() {
		t.Error("in_progress reported terminal")
	}
	if !OutcomeWon.Terminal() || !OutcomeAbandoned.Terminal() {
		t.Error("won/abandoned not reported terminal")
	}
}

func TestEndToEndScenario(t *testing.T) {
	// word = "fame", hint reveals first and last → "f--e".
	r := startTestRound(t, "fame")
	if got := r.Hint.Masked(); got != "f--e" {
		t.Fatalf("hint = %q, want f--e", got)
	}

	res, err := r.SubmitGuess("game")
	if err != nil || res.Correct {
		t.Fatalf("guess game: res=%+v err=%v", res, err)
	}
	if r.Outcome != OutcomeInProgress {
		t.Fatalf("outcome = %q, want in_progress", r.Outcome)
	}

	res, err = r.SubmitGuess("fame")
	if err != nil || !res.Correct {
		t.Fatalf("guess fame: res=%+v err=%v", res, err)
	}
	if r.Outcome != OutcomeWon {
		t.Fatalf("outcome = %q, want won", r.Outcome)
	}
	if r.Guesses != 2 {
		t.Errorf("guesses = %d, want 2", r.Guesses)
	}
}
