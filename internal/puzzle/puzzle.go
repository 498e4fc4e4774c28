// internal/puzzle/puzzle.go
//
// Puzzle source for the game engine.
// Responsibilities:
//   - Select a puzzle word (1–5 letters) from the loaded word list.
//   - Compute the hint pattern: which positions are revealed to the player
//     before any guess, and the dash-masked rendering derived from it.
//
// Notes:
//   - Word selection uses crypto/rand for a uniform pick.
//   - The hint reveals the first and last letter of multi-letter words
//     (e.g. "fame" → "f--e"). A one-letter word has only its single letter
//     to reveal, which fully exposes the answer; that degenerate case is
//     kept as-is rather than special-cased.

package puzzle

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/puzzleword/go-server/internal/words"
)

// ConfigurationError reports that no valid puzzle word is available.
// It is fatal to starting a round; there is nothing to retry.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return "puzzle: " + e.Msg }

// Word is the secret answer for one round.
// Letters are fixed at creation, always lowercase, length 1–5.
type Word struct {
	letters string
}

// NewWord validates and normalizes a candidate answer.
func NewWord(s string) (Word, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 1 || len(s) > words.MaxLen {
		return Word{}, &ConfigurationError{Msg: fmt.Sprintf("word %q must be 1-%d letters", s, words.MaxLen)}
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return Word{}, &ConfigurationError{Msg: fmt.Sprintf("word %q must be alphabetic", s)}
		}
	}
	return Word{letters: s}, nil
}

// String returns the answer letters.
func (w Word) String() string { return w.letters }

// Len returns the number of letters.
func (w Word) Len() int { return len(w.letters) }

// Select returns a uniformly random word from the loaded list.
// Fails with ConfigurationError when the list is empty.
func Select() (Word, error) {
	all := words.All()
	if len(all) == 0 {
		return Word{}, &ConfigurationError{Msg: "no word satisfies the length constraint"}
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(all))))
	if err != nil {
		return Word{}, &ConfigurationError{Msg: "random selection failed: " + err.Error()}
	}
	return NewWord(all[nBig.Int64()])
}

// SelectAt returns the list word at idx (used by the daily puzzle,
// which derives idx deterministically from the date).
func SelectAt(idx int) (Word, error) {
	all := words.All()
	if len(all) == 0 {
		return Word{}, &ConfigurationError{Msg: "no word satisfies the length constraint"}
	}
	if idx < 0 || idx >= len(all) {
		return Word{}, &ConfigurationError{Msg: fmt.Sprintf("word index %d out of range", idx)}
	}
	return NewWord(all[idx])
}

// HintPattern is the partially-revealed form of a puzzle word.
// Derived once at round start; immutable for the round.
type HintPattern struct {
	word     string
	revealed []bool // indexed by letter position
}

// ComputeHint reveals the first and last letters of w.
// A two-letter word reveals only its first letter so at least one
// position stays hidden. For a one-letter word the single position is
// revealed, which by construction exposes the whole answer.
func ComputeHint(w Word) HintPattern {
	n := w.Len()
	rev := make([]bool, n)
	rev[0] = true
	if n > 2 {
		rev[n-1] = true
	}
	return HintPattern{word: w.letters, revealed: rev}
}

// Masked returns the dash-masked rendering, one slot per letter,
// e.g. "f--e" for "fame" with first and last revealed.
func (h HintPattern) Masked() string {
	var b strings.Builder
	for i := 0; i < len(h.word); i++ {
		if h.revealed[i] {
			b.WriteByte(h.word[i])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Revealed reports whether position i is shown to the player.
func (h HintPattern) Revealed(i int) bool {
	return i >= 0 && i < len(h.revealed) && h.revealed[i]
}

// Len returns the number of character slots in the pattern.
func (h HintPattern) Len() int { return len(h.word) }
