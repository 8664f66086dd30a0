package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "highscore.txt"))

	for _, score := range []int{0, 3, 12, 1} {
		if err := store.Save(score); err != nil {
			t.Fatalf("Save(%d) error = %v", score, err)
		}
		if got := store.Load(); got != score {
			t.Errorf("Load() = %d, want %d", got, score)
		}
	}
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"plain", "7", 7},
		{"trailing newline", "7\n", 7},
		{"padded", "  42 ", 42},
		{"corrupt", "seven", 0},
		{"empty", "", 0},
		{"negative", "-3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if got := NewStore(path).Load(); got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.txt"))
	if got := store.Load(); got != 0 {
		t.Errorf("Load() = %d, want 0", got)
	}
}

func TestStore_SaveCreatesDirAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "highscore.txt")
	store := NewStore(path)

	if err := store.Save(100); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	if err := store.Save(5); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5" {
		t.Errorf("file content = %q, want %q", data, "5")
	}
}

func TestStore_Reset(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "highscore.txt"))

	if err := store.Reset(); err != nil {
		t.Errorf("Reset() on missing file error = %v", err)
	}
	if err := store.Save(9); err != nil {
		t.Fatal(err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if got := store.Load(); got != 0 {
		t.Errorf("Load() after Reset = %d, want 0", got)
	}
}
