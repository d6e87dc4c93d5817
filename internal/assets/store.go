package assets

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ppiankov/scribeforge/internal/task"
)

// Resource kinds, one file per persona id each.
const (
	KindDescription = "desc"
	KindTasks       = "tasks"
	KindContent     = "content"
)

// Assets holds the three resources of a persona.
type Assets struct {
	Description string
	TaskList    string
	Tasks       []task.Task
	Content     string
}

// Store reads persona resources from a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. An empty dir means the working directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// ResourceName returns the file name of a resource, e.g. "tasks_1.txt".
func ResourceName(kind string, id int) string {
	return fmt.Sprintf("%s_%d.txt", kind, id)
}

// NotFound is the placeholder returned in place of a missing resource.
func NotFound(name string) string {
	return fmt.Sprintf("File %s not found.", name)
}

// Read returns the contents of the named resource, or the NotFound
// placeholder if it cannot be read.
func (s *Store) Read(name string) string {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("resource missing", "name", name, "dir", s.dir)
		} else {
			slog.Warn("resource unreadable", "name", name, "dir", s.dir, "error", err)
		}
		return NotFound(name)
	}
	return string(data)
}

// Load reads the description, task list and finished content of persona id.
// Each resource degrades to its placeholder independently.
func (s *Store) Load(id int) Assets {
	a := Assets{
		Description: s.Read(ResourceName(KindDescription, id)),
		TaskList:    s.Read(ResourceName(KindTasks, id)),
		Content:     s.Read(ResourceName(KindContent, id)),
	}
	a.Tasks = task.ParseList(a.TaskList)
	slog.Debug("assets loaded", "id", id, "tasks", len(a.Tasks))
	return a
}
