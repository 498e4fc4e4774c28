package words

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitEmbeddedDefaults(t *testing.T) {
	if os.Getenv("WORDS_FILE") != "" {
		t.Skip("WORDS_FILE set; embedded-default path not exercised")
	}
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Count() == 0 {
		t.Fatal("embedded word list is empty")
	}
	for _, w := range All() {
		if !okLen(w) || !isAlpha(w) {
			t.Errorf("loaded invalid word %q", w)
		}
	}
	if !IsValid(All()[0]) {
		t.Errorf("IsValid(%q) = false for a loaded word", All()[0])
	}
	if IsValid("zzzzz") {
		t.Error("IsValid accepted a word not in the list")
	}
}

func TestIsValidCaseInsensitive(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	w := All()[0]
	upper := ""
	for _, r := range w {
		upper += string(r - 'a' + 'A')
	}
	if !IsValid(upper) {
		t.Errorf("IsValid(%q) = false, lookup should be case-insensitive", upper)
	}
}

func TestReadWordFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := "Game\nfame\n\ntoolong word\nGRAPES\ng4me\nsky\n  owl  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readWordFile(path)
	if err != nil {
		t.Fatalf("readWordFile: %v", err)
	}
	want := []string{"game", "fame", "sky", "owl"}
	if len(got) != len(want) {
		t.Fatalf("readWordFile = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadWordFileMissing(t *testing.T) {
	if _, err := readWordFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestKeepValid(t *testing.T) {
	in := []string{"fame", "", "grapes", "g4me", "a", "stone"}
	got := keepValid(in)
	want := []string{"fame", "a", "stone"}
	if len(got) != len(want) {
		t.Fatalf("keepValid = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keepValid[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
