package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndContains(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("silo\nSEED\n  sold  \n\ndoes\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, w := range []string{"silo", "seed", "sold", "does"} {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if d.Contains("missing") {
		t.Error("Contains(missing) = true, want false")
	}
	if d.Size() != 4 {
		t.Errorf("Size() = %d, want 4", d.Size())
	}
}

func TestLoadRejectsMalformedWord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("silo\nab3d\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for non-alphabetic entry, got nil")
	}
}

func TestLoadRejectsOutOfRangeLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for single-letter word, got nil")
	}
}

func TestNewFromWordsCaseInsensitive(t *testing.T) {
	d := NewFromWords([]string{"Silo", "SEED"})
	if !d.Contains("silo") || !d.Contains("seed") {
		t.Error("NewFromWords() should normalize case for membership checks")
	}
}
