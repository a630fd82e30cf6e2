package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("max_speed: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "tuning.yaml" || !IsTuningFile(got) {
			t.Fatalf("unexpected event %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for %s", path)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestPrefabPaths(t *testing.T) {
	tests := []struct{ in, want string }{
		{"prefabs/tuning.yaml", "tuning.yaml"},
		{"/abs/game/prefabs/courses/a.yaml", "courses/a.yaml"},
		{"courses/a.yaml", "courses/a.yaml"},
	}
	for _, tc := range tests {
		if got := cleanPrefabPath(tc.in); got != tc.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := cleanScriptPath("giant_slalom.tengo"); got != "scripts/giant_slalom.tengo" {
		t.Fatalf("unexpected script path %q", got)
	}
}
