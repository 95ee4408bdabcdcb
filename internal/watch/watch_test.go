package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSkipRel(t *testing.T) {
	tests := []struct {
		rel  string
		want bool
	}{
		{"app.py", false},
		{"pkg/app.py", false},
		{"__pycache__/app.cpython-312.pyc", true},
		{"pkg/__pycache__/app.pyc", true},
		{".git/hooks/app.py", true},
		{"pkg/.venv/lib/site.py", true},
		{"./app.py", false},
		{"../pkg/app.py", false},
	}

	for _, tt := range tests {
		if got := skipRel(tt.rel); got != tt.want {
			t.Errorf("skipRel(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestSkipJudgesOnlyBelowRoot(t *testing.T) {
	w := &Watcher{root: "/home/u/.config/proj"}

	if w.skip("/home/u/.config/proj/a.py") {
		t.Error("skip() dropped a file directly under the root")
	}
	if w.skip("/home/u/.config/proj/pkg/a.py") {
		t.Error("skip() dropped a file in a plain subdirectory")
	}
	if !w.skip("/home/u/.config/proj/.venv/lib/site.py") {
		t.Error("skip() kept a file under a hidden subdirectory")
	}
	if !w.skip("/home/u/.config/proj/__pycache__/a.pyc") {
		t.Error("skip() kept a bytecode cache file")
	}
}

func TestWatcherBatchesWrites(t *testing.T) {
	dir := t.TempDir()

	batches := make(chan []string, 1)
	w, err := New(dir, 50*time.Millisecond, func(paths []string) {
		batches <- paths
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = w.Run(ctx)
		close(done)
	}()

	a := filepath.Join(dir, "a.py")
	b := filepath.Join(dir, "b.py")
	if err := os.WriteFile(a, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("y = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case paths := <-batches:
		if len(paths) == 0 {
			t.Fatal("empty batch")
		}
		for _, p := range paths {
			if filepath.Ext(p) != ".py" {
				t.Errorf("unexpected path in batch: %s", p)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for batch")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatcherRootUnderHiddenAncestor(t *testing.T) {
	// A root like ~/.config/proj must still deliver events; only
	// components below the root are subject to the hidden-dir filter.
	base := t.TempDir()
	root := filepath.Join(base, ".config", "proj")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}

	batches := make(chan []string, 1)
	w, err := New(root, 50*time.Millisecond, func(paths []string) {
		batches <- paths
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(root, "a.py"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case paths := <-batches:
		if len(paths) != 1 || filepath.Base(paths[0]) != "a.py" {
			t.Errorf("unexpected batch: %v", paths)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no batch delivered for a root under a hidden ancestor")
	}
}

func TestWatcherIgnoresNonPython(t *testing.T) {
	dir := t.TempDir()

	batches := make(chan []string, 1)
	w, err := New(dir, 50*time.Millisecond, func(paths []string) {
		batches <- paths
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case paths := <-batches:
		t.Fatalf("unexpected batch for non-python file: %v", paths)
	case <-time.After(300 * time.Millisecond):
	}
}
