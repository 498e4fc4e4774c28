// internal/words/words.go
//
// Provides word list management for the puzzle game.
//
// Responsibilities:
//   - Load the puzzle word list from an environment-provided file or fall back
//     to the embedded default list.
//   - Normalize and filter entries to valid puzzle words (1–5 lowercase letters).
//   - Supply lookup helpers: All, Count, IsValid.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load words from that file.
//   2. Otherwise, fall back to the embedded list in `assets/words.txt`.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • Words must be 1–5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/puzzleword/go-server/assets"
)

// MaxLen is the longest puzzle word accepted into the list.
const MaxLen = 5

var (
	initOnce   sync.Once
	list       []string            // puzzle words, load order preserved
	wordSet    map[string]struct{} // for membership lookups
	initialErr error
)

// Init loads the word list exactly once.
// Returns an error if the list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var loaded []string

		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			loaded, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			embedded, err := assets.WordList()
			if err != nil {
				initialErr = err
				return
			}
			loaded = keepValid(embedded)
		}

		list = loaded
		wordSet = toSet(loaded)

		if len(list) == 0 {
			initialErr = errors.New("words: word list is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 1–5 letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if okLen(w) && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keepValid filters an already-lowercased list down to valid puzzle words.
func keepValid(in []string) []string {
	var out []string
	for _, w := range in {
		if okLen(w) && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(l []string) map[string]struct{} {
	m := make(map[string]struct{}, len(l))
	for _, w := range l {
		m[w] = struct{}{}
	}
	return m
}

// okLen reports whether s has a valid puzzle-word length.
func okLen(s string) bool {
	return len(s) >= 1 && len(s) <= MaxLen
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// All returns the loaded word list. Callers must not mutate it.
func All() []string {
	return list
}

// IsValid reports whether w is in the loaded word list.
func IsValid(w string) bool {
	_, ok := wordSet[strings.ToLower(w)]
	return ok
}

// Count returns the number of loaded puzzle words.
func Count() int {
	return len(list)
}
