package task

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultDuration is the duration, in seconds, given to lines that do not parse.
const DefaultDuration = 3

// separator divides a task line into duration and label.
const separator = ": "

// MaxDuration is the longest duration, in seconds, a task line may carry.
// Larger values do not fit a time.Duration and fall back like any other
// unparsable line.
const MaxDuration = math.MaxInt64 / int64(time.Second)

// State represents the progress of a single task within a run.
type State int

const (
	StatePending State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateRunning:
		return "RUNNING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the state in its lowercase wire form.
func (s State) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// Task is one simulated unit of work.
type Task struct {
	Duration int    `json:"duration"` // seconds
	Label    string `json:"label"`
}

// Wait returns the task's duration as a time.Duration. Values outside
// [0, MaxDuration] are clamped.
func (t Task) Wait() time.Duration {
	switch {
	case t.Duration <= 0:
		return 0
	case int64(t.Duration) > MaxDuration:
		return math.MaxInt64
	}
	return time.Duration(t.Duration) * time.Second
}

// ParseResult is the outcome of parsing one task line. Parsed is false when
// the line fell back to DefaultDuration with the raw line as its label.
type ParseResult struct {
	Task   Task
	Parsed bool
}

// ParseLine parses "<duration>: <label>". Anything else, including a negative
// duration or one above MaxDuration, yields the whole line as label with
// DefaultDuration.
func ParseLine(line string) ParseResult {
	head, label, ok := strings.Cut(line, separator)
	if ok {
		if n, ok := parseSeconds(head); ok {
			return ParseResult{Task: Task{Duration: n, Label: label}, Parsed: true}
		}
	}
	return ParseResult{Task: Task{Duration: DefaultDuration, Label: line}}
}

// parseSeconds reads a non-negative decimal integer. Surrounding whitespace,
// a leading sign and single underscores between digits are accepted.
func parseSeconds(s string) (int, bool) {
	s = strings.TrimSpace(s)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	if s == "" || s[0] == '_' || s[len(s)-1] == '_' || strings.Contains(s, "__") {
		return 0, false
	}
	n, err := strconv.Atoi(sign + strings.ReplaceAll(s, "_", ""))
	if err != nil || n < 0 || int64(n) > MaxDuration {
		return 0, false
	}
	return n, true
}

// SplitLines splits text into lines. \r\n, \n, \r, \v, \f, the file, group
// and record separators, NEL and the Unicode line and paragraph separators all
// end a line. A trailing terminator does not produce an extra empty line;
// empty text produces no lines.
func SplitLines(text string) []string {
	var lines []string
	for text != "" {
		i := strings.IndexFunc(text, isLineBreak)
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		_, size := utf8.DecodeRuneInString(text[i:])
		if text[i] == '\r' && strings.HasPrefix(text[i+1:], "\n") {
			size = 2
		}
		text = text[i+size:]
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// ParseList parses every line of text, in order, into a task.
func ParseList(text string) []Task {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return nil
	}
	tasks := make([]Task, 0, len(lines))
	for _, line := range lines {
		tasks = append(tasks, ParseLine(line).Task)
	}
	return tasks
}

// ParseListDetailed is ParseList keeping the per-line parse outcome.
func ParseListDetailed(text string) []ParseResult {
	lines := SplitLines(text)
	results := make([]ParseResult, 0, len(lines))
	for _, line := range lines {
		results = append(results, ParseLine(line))
	}
	return results
}

// TotalDuration sums the wait of every task, saturating at the largest
// representable duration.
func TotalDuration(tasks []Task) time.Duration {
	var total time.Duration
	for _, t := range tasks {
		w := t.Wait()
		if total > math.MaxInt64-w {
			return math.MaxInt64
		}
		total += w
	}
	return total
}
