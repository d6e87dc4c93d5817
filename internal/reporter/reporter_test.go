package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/scribeforge/internal/persona"
	"github.com/ppiankov/scribeforge/internal/runner"
	"github.com/ppiankov/scribeforge/internal/task"
)

var writer = persona.Persona{Name: "Vercel Devrel", ID: 1}

func instantRunner(render runner.LineRenderer) *runner.Runner {
	return &runner.Runner{Sleep: func(time.Duration) {}, Render: render, Now: time.Now}
}

func TestHTMLLines(t *testing.T) {
	var r HTMLLines
	if got := r.Line(task.StateRunning, "Research topic"); got != "<p style='color: blue;'>🔄 Research topic</p>" {
		t.Errorf("running: got %q", got)
	}
	if got := r.Line(task.StateDone, "Research topic"); got != "<p style='color: green;'>✅ Research topic</p>" {
		t.Errorf("done: got %q", got)
	}
	if got := r.Line(task.StatePending, "x"); got != "" {
		t.Errorf("pending: got %q", got)
	}
	if got := r.Line(task.StateDone, "<b>bold</b>"); strings.Contains(got, "<b>") {
		t.Errorf("label should be escaped: %q", got)
	}
}

func TestPlainLines(t *testing.T) {
	var r PlainLines
	if got := r.Line(task.StateRunning, "a"); got != "🔄 a\n" {
		t.Errorf("running: got %q", got)
	}
	if got := r.Line(task.StateDone, "a"); got != "✅ a\n" {
		t.Errorf("done: got %q", got)
	}
	if got := r.Line(task.StatePending, "a"); got != "" {
		t.Errorf("pending: got %q", got)
	}
}

func TestTerminalLines(t *testing.T) {
	var r TerminalLines
	got := r.Line(task.StateDone, "Draft outline")
	if !strings.Contains(got, "✅ Draft outline") {
		t.Errorf("done: got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("terminal lines should end with a newline")
	}
}

func TestTextReporter_Drive(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTextReporter(&buf, false)
	run := runner.NewRun(writer, task.ParseList("0: Research topic\n0: Draft outline"))

	Drive(instantRunner(PlainLines{}), run, rep)

	out := buf.String()
	for _, want := range []string{
		"Executing steps for the article",
		"Vercel Devrel",
		"🔄 Research topic",
		"✅ Research topic",
		"🔄 Draft outline",
		"✅ Draft outline",
		"Done: 2/2",
		run.ID,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "✅ Research topic") > strings.Index(out, "🔄 Draft outline") {
		t.Error("first task must finish before second starts")
	}
	if strings.Contains(out, "\033[") {
		t.Error("color disabled output must not contain ANSI codes")
	}
}

func TestTextReporter_PrintPlan(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTextReporter(&buf, false)
	rep.PrintPlan(task.ParseListDetailed("2: Research topic\nWrite intro"))

	out := buf.String()
	if !strings.Contains(out, "2 steps, 5s") {
		t.Errorf("expected plan summary, got:\n%s", out)
	}
	if !strings.Contains(out, "Write intro  (default duration)") {
		t.Errorf("expected fallback marker, got:\n%s", out)
	}
	if strings.Contains(out, "Research topic  (default duration)") {
		t.Error("parsed line should not be marked as fallback")
	}
}

func TestLiveReporter_Render(t *testing.T) {
	var buf bytes.Buffer
	lr := NewLiveReporter(&buf)
	run := runner.NewRun(writer, []task.Task{{Label: "a"}, {Label: "b"}, {Label: "c"}})
	rn := instantRunner(PlainLines{})

	var snapshots [][]string
	for range rn.Events(run) {
		snapshots = append(snapshots, lr.Render(run))
	}
	if len(snapshots) != 6 {
		t.Fatalf("expected 6 snapshots, got %d", len(snapshots))
	}

	first := strings.Join(snapshots[0], "\n")
	if !strings.Contains(first, "🔄 a") || strings.Contains(first, "b") {
		t.Errorf("first snapshot: %q", first)
	}
	if !strings.Contains(first, "1 running") || !strings.Contains(first, "2 pending") {
		t.Errorf("first snapshot progress: %q", first)
	}

	last := strings.Join(snapshots[5], "\n")
	for _, want := range []string{"✅ a", "✅ b", "✅ c", "3 done"} {
		if !strings.Contains(last, want) {
			t.Errorf("last snapshot missing %q: %q", want, last)
		}
	}
}

func TestLiveReporter_Redraws(t *testing.T) {
	var buf bytes.Buffer
	lr := NewLiveReporter(&buf)
	run := runner.NewRun(writer, []task.Task{{Label: "a"}})

	Drive(instantRunner(PlainLines{}), run, lr)

	out := buf.String()
	if !strings.Contains(out, "\033[") {
		t.Error("expected cursor movement between frames")
	}
	if !strings.Contains(out, "finished in") {
		t.Error("expected finish line")
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	run := runner.NewRun(writer, []task.Task{{Duration: 0, Label: "a"}})
	Drive(instantRunner(PlainLines{}), run, NewJSONReporter(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 json lines, got %d:\n%s", len(lines), buf.String())
	}

	var types []string
	var states []string
	for _, line := range lines {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json %q: %v", line, err)
		}
		if m["run_id"] != run.ID {
			t.Errorf("run_id: got %v", m["run_id"])
		}
		types = append(types, m["type"].(string))
		if s, ok := m["state"].(string); ok {
			states = append(states, s)
		}
	}
	wantTypes := []string{"run_started", "task", "task", "run_finished"}
	for i := range wantTypes {
		if types[i] != wantTypes[i] {
			t.Errorf("line %d type: got %q, want %q", i, types[i], wantTypes[i])
		}
	}
	if strings.Join(states, ",") != "running,done" {
		t.Errorf("states: got %v", states)
	}
}

func TestHTMLReporter(t *testing.T) {
	var buf bytes.Buffer
	run := runner.NewRun(writer, []task.Task{{Label: "a"}, {Label: "b"}})
	Drive(instantRunner(HTMLLines{}), run, NewHTMLReporter(&buf))

	out := buf.String()
	if !strings.HasPrefix(out, "<b>Executing steps for the article</b>") {
		t.Errorf("unexpected header: %q", out)
	}
	final := "<p style='color: green;'>✅ a</p><p style='color: green;'>✅ b</p>"
	if !strings.Contains(out, final) {
		t.Errorf("expected final snapshot %q in:\n%s", final, out)
	}
}
