package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsResource(t *testing.T) {
	cases := map[string]bool{
		"desc_1.txt":    true,
		"tasks_12.txt":  true,
		"content_1.txt": true,
		"notes.txt":     false,
		"desc_1.md":     false,
		".desc_1.swp":   false,
	}
	for name, want := range cases {
		if got := IsResource(name); got != want {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}
}

func TestWatch_ReportsChange(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 4)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Watch(ctx, func(name string) { changed <- name })
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "ignored.log"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "desc_1.txt"), []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-changed:
		if name != "desc_1.txt" {
			t.Errorf("got change for %q, want desc_1.txt", name)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("watch returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

func TestWatch_MissingDir(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope"))
	if err := s.Watch(context.Background(), func(string) {}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
