package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/scribeforge/internal/task"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_ExactContents(t *testing.T) {
	dir := t.TempDir()
	desc := "A developer relations writer.\n\nSecond paragraph.  \n"
	tasks := "2: Research topic\n1: Draft outline\n"
	content := "<h1>Hello</h1>\n<p>World &amp; more</p>"
	writeFile(t, dir, "desc_1.txt", desc)
	writeFile(t, dir, "tasks_1.txt", tasks)
	writeFile(t, dir, "content_1.txt", content)

	a := NewStore(dir).Load(1)
	if a.Description != desc {
		t.Errorf("description: got %q, want %q", a.Description, desc)
	}
	if a.TaskList != tasks {
		t.Errorf("task list: got %q, want %q", a.TaskList, tasks)
	}
	if a.Content != content {
		t.Errorf("content: got %q, want %q", a.Content, content)
	}
	want := []task.Task{{Duration: 2, Label: "Research topic"}, {Duration: 1, Label: "Draft outline"}}
	if len(a.Tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(a.Tasks))
	}
	for i := range want {
		if a.Tasks[i] != want[i] {
			t.Errorf("task %d: got %+v, want %+v", i, a.Tasks[i], want[i])
		}
	}
}

func TestLoad_AllMissing(t *testing.T) {
	a := NewStore(t.TempDir()).Load(7)
	if a.Description != "File desc_7.txt not found." {
		t.Errorf("description: got %q", a.Description)
	}
	if a.TaskList != "File tasks_7.txt not found." {
		t.Errorf("task list: got %q", a.TaskList)
	}
	if a.Content != "File content_7.txt not found." {
		t.Errorf("content: got %q", a.Content)
	}
	if len(a.Tasks) != 1 {
		t.Fatalf("expected 1 fallback task, got %d", len(a.Tasks))
	}
	want := task.Task{Duration: task.DefaultDuration, Label: "File tasks_7.txt not found."}
	if a.Tasks[0] != want {
		t.Errorf("fallback task: got %+v, want %+v", a.Tasks[0], want)
	}
}

func TestLoad_Independent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tasks_2.txt", "Write intro")

	a := NewStore(dir).Load(2)
	if a.Description != NotFound("desc_2.txt") {
		t.Errorf("description: got %q", a.Description)
	}
	if a.TaskList != "Write intro" {
		t.Errorf("task list: got %q", a.TaskList)
	}
	if a.Content != NotFound("content_2.txt") {
		t.Errorf("content: got %q", a.Content)
	}
	if len(a.Tasks) != 1 || a.Tasks[0] != (task.Task{Duration: 3, Label: "Write intro"}) {
		t.Errorf("tasks: got %+v", a.Tasks)
	}
}

func TestLoad_UnreadableDegrades(t *testing.T) {
	dir := t.TempDir()
	// a directory where a file is expected cannot be read as a file
	if err := os.Mkdir(filepath.Join(dir, "desc_1.txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	a := NewStore(dir).Load(1)
	if a.Description != NotFound("desc_1.txt") {
		t.Errorf("description: got %q", a.Description)
	}
}

func TestLoad_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "desc_1.txt", "desc")
	writeFile(t, dir, "tasks_1.txt", "1: a\nb")
	s := NewStore(dir)

	first := s.Load(1)
	second := s.Load(1)
	if first.Description != second.Description || first.TaskList != second.TaskList || first.Content != second.Content {
		t.Error("repeated loads differ")
	}
	if len(first.Tasks) != len(second.Tasks) {
		t.Fatal("repeated loads parsed differently")
	}
	for i := range first.Tasks {
		if first.Tasks[i] != second.Tasks[i] {
			t.Errorf("task %d differs: %+v vs %+v", i, first.Tasks[i], second.Tasks[i])
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "tasks_1.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1: a\nb" {
		t.Error("load must not modify the store")
	}
}

func TestResourceName(t *testing.T) {
	if got := ResourceName(KindTasks, 3); got != "tasks_3.txt" {
		t.Errorf("got %q", got)
	}
}

func TestNewStore_DefaultDir(t *testing.T) {
	if got := NewStore("").Dir(); got != "." {
		t.Errorf("got %q, want .", got)
	}
}
