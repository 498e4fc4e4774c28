package puzzle

import (
	"errors"
	"strings"
	"testing"

	"github.com/puzzleword/go-server/internal/words"
)

func TestNewWord(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "four letters", in: "fame", want: "fame"},
		{name: "normalized", in: "  FaMe ", want: "fame"},
		{name: "single letter", in: "a", want: "a"},
		{name: "five letters", in: "grape", want: "grape"},
		{name: "empty", in: "", wantErr: true},
		{name: "too long", in: "grapes", wantErr: true},
		{name: "digits", in: "g4me", wantErr: true},
		{name: "hyphen", in: "a-e", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWord(tt.in)
			if tt.wantErr {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("NewWord(%q) error = %v, want ConfigurationError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewWord(%q): %v", tt.in, err)
			}
			if w.String() != tt.want {
				t.Errorf("NewWord(%q) = %q, want %q", tt.in, w.String(), tt.want)
			}
		})
	}
}

func TestComputeHint(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{word: "fame", want: "f--e"},
		{word: "game", want: "g--e"},
		{word: "grape", want: "g---e"},
		{word: "at", want: "a-"}, // two letters: only the first is revealed
		{word: "a", want: "a"},   // degenerate: the only letter is the hint
	}
	for _, tt := range tests {
		w, err := NewWord(tt.word)
		if err != nil {
			t.Fatalf("NewWord(%q): %v", tt.word, err)
		}
		h := ComputeHint(w)
		if got := h.Masked(); got != tt.want {
			t.Errorf("ComputeHint(%q).Masked() = %q, want %q", tt.word, got, tt.want)
		}
		if h.Len() != w.Len() {
			t.Errorf("hint slots = %d, want %d", h.Len(), w.Len())
		}
	}
}

func TestComputeHintMasksAtLeastOneForLongWords(t *testing.T) {
	// Every multi-letter word keeps at least one letter hidden.
	for _, s := range []string{"at", "owl", "fame", "grape"} {
		w, _ := NewWord(s)
		masked := ComputeHint(w).Masked()
		if !strings.Contains(masked, "-") {
			t.Errorf("ComputeHint(%q).Masked() = %q, expected at least one masked slot", s, masked)
		}
	}
}

func TestHintRevealed(t *testing.T) {
	w, _ := NewWord("fame")
	h := ComputeHint(w)
	if !h.Revealed(0) || !h.Revealed(3) {
		t.Error("first/last positions not revealed")
	}
	if h.Revealed(1) || h.Revealed(2) {
		t.Error("middle positions revealed")
	}
	if h.Revealed(-1) || h.Revealed(4) {
		t.Error("out-of-range positions reported revealed")
	}
}

func TestSelect(t *testing.T) {
	if err := words.Init(); err != nil {
		t.Fatalf("words.Init: %v", err)
	}
	for i := 0; i < 20; i++ {
		w, err := Select()
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if w.Len() < 1 || w.Len() > words.MaxLen {
			t.Fatalf("Select returned %q with invalid length %d", w.String(), w.Len())
		}
		if !words.IsValid(w.String()) {
			t.Fatalf("Select returned %q, not in the loaded list", w.String())
		}
	}
}

func TestSelectAt(t *testing.T) {
	if err := words.Init(); err != nil {
		t.Fatalf("words.Init: %v", err)
	}
	all := words.All()

	w, err := SelectAt(0)
	if err != nil {
		t.Fatalf("SelectAt(0): %v", err)
	}
	if w.String() != all[0] {
		t.Errorf("SelectAt(0) = %q, want %q", w.String(), all[0])
	}

	var cfgErr *ConfigurationError
	if _, err := SelectAt(len(all)); !errors.As(err, &cfgErr) {
		t.Errorf("SelectAt(out of range) error = %v, want ConfigurationError", err)
	}
	if _, err := SelectAt(-1); !errors.As(err, &cfgErr) {
		t.Errorf("SelectAt(-1) error = %v, want ConfigurationError", err)
	}
}
