package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)
	if got := DateKey(ts); got != "2024-03-10" {
		t.Errorf("DateKey = %q, want 2024-03-10", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 50)
	b := WordIndex(day, "salt", 50)
	if a != b {
		t.Errorf("same date+salt gave %d and %d", a, b)
	}

	// Any instant on the same UTC date maps to the same word.
	later := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	if got := WordIndex(later, "salt", 50); got != a {
		t.Errorf("same date, different time: %d vs %d", got, a)
	}
}

func TestWordIndexRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		day := start.AddDate(0, 0, i)
		idx := WordIndex(day, "salt", 37)
		if idx < 0 || idx >= 37 {
			t.Fatalf("WordIndex(%s) = %d, out of range", DateKey(day), idx)
		}
	}
}

func TestWordIndexSaltChangesSelection(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	same := 0
	for i := 0; i < 30; i++ {
		d := day.AddDate(0, 0, i)
		if WordIndex(d, "salt_a", 1000) == WordIndex(d, "salt_b", 1000) {
			same++
		}
	}
	// A handful of collisions is possible; all 30 matching means the
	// salt is not being mixed in.
	if same == 30 {
		t.Error("salt has no effect on word selection")
	}
}

func TestWordIndexEmptyList(t *testing.T) {
	if got := WordIndex(time.Now(), "salt", 0); got != 0 {
		t.Errorf("WordIndex with empty list = %d, want 0", got)
	}
}
