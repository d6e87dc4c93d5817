package assets

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDefault is the debounce interval for file events.
const debounceDefault = 200 * time.Millisecond

// IsResource reports whether name looks like a persona resource file.
func IsResource(name string) bool {
	if !strings.HasSuffix(name, ".txt") {
		return false
	}
	for _, kind := range []string{KindDescription, KindTasks, KindContent} {
		if strings.HasPrefix(name, kind+"_") {
			return true
		}
	}
	return false
}

// Watch calls onChange with the base name of every resource file that is
// created, written, renamed or removed. Blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context, onChange func(name string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch dir: %w", err)
	}

	slog.Info("watching assets", "dir", s.dir)

	var mu sync.Mutex
	pending := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			for _, t := range pending {
				t.Stop()
			}
			mu.Unlock()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			name := filepath.Base(event.Name)
			if !IsResource(name) {
				continue
			}

			mu.Lock()
			if t, exists := pending[name]; exists {
				t.Stop()
			}
			pending[name] = time.AfterFunc(debounceDefault, func() {
				mu.Lock()
				delete(pending, name)
				mu.Unlock()
				if ctx.Err() != nil {
					return
				}
				slog.Debug("resource changed", "name", name)
				onChange(name)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)
		}
	}
}
