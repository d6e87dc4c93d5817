package tui

import (
	"fmt"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ppiankov/scribeforge/internal/assets"
	"github.com/ppiankov/scribeforge/internal/persona"
	"github.com/ppiankov/scribeforge/internal/reporter"
	"github.com/ppiankov/scribeforge/internal/runner"
	"github.com/ppiankov/scribeforge/internal/task"
)

const (
	descriptionHeight = 8
	contentHeight     = 15
	maxTextWidth      = 100
)

type screen int

const (
	screenSelect screen = iota
	screenDescribe
	screenRunning
	screenFinished
)

// eventMsg carries the next event of the active run. ok is false once the
// run has no more events.
type eventMsg struct {
	runID string
	event runner.Event
	ok    bool
}

// assetChangedMsg reports a modified resource file.
type assetChangedMsg struct {
	name string
}

// personaItem wraps a selection label for the list display.
type personaItem string

func (i personaItem) Title() string       { return string(i) }
func (i personaItem) Description() string { return "" }
func (i personaItem) FilterValue() string { return string(i) }

// Model is the Bubbletea model for the writer demo.
type Model struct {
	personas *persona.Registry
	store    *assets.Store
	runner   *runner.Runner
	changes  <-chan string

	screen   screen
	picker   list.Model
	desc     textarea.Model
	content  viewport.Model
	selected persona.Persona
	assets   assets.Assets

	run      *runner.Run
	next     func() (runner.Event, bool)
	stop     func()
	status   []task.State
	rendered string

	width  int
	height int
}

// New creates the model. rn renders and paces runs; changes, if not nil,
// delivers names of resource files modified on disk.
func New(personas *persona.Registry, store *assets.Store, rn *runner.Runner, changes <-chan string) Model {
	items := make([]list.Item, 0, personas.Len()+1)
	for _, opt := range personas.Options() {
		items = append(items, personaItem(opt))
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	picker := list.New(items, delegate, 0, 0)
	picker.Title = persona.NoSelection
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)

	desc := textarea.New()
	desc.CharLimit = 0
	desc.MaxHeight = 0
	desc.ShowLineNumbers = false
	desc.SetHeight(descriptionHeight)

	return Model{
		personas: personas,
		store:    store,
		runner:   rn,
		changes:  changes,
		picker:   picker,
		desc:     desc,
		content:  viewport.New(maxTextWidth, contentHeight),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func waitForChange(changes <-chan string) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		name, ok := <-changes
		if !ok {
			return nil
		}
		return assetChangedMsg{name: name}
	}
}

func pullCmd(runID string, next func() (runner.Event, bool)) tea.Cmd {
	return func() tea.Msg {
		ev, ok := next()
		return eventMsg{runID: runID, event: ev, ok: ok}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case assetChangedMsg:
		m.reloadIfSelected(msg.name)
		return m, waitForChange(m.changes)

	case eventMsg:
		return m.handleEvent(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenSelect:
			return m.updateSelect(msg)
		case screenDescribe:
			return m.updateDescribe(msg)
		case screenRunning:
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		case screenFinished:
			return m.updateFinished(msg)
		}
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	textWidth := min(width-4, maxTextWidth)
	if textWidth < 20 {
		textWidth = 20
	}
	listHeight := height - 4
	if listHeight < 5 {
		listHeight = 5
	}
	m.picker.SetSize(textWidth, listHeight)
	m.desc.SetWidth(textWidth)
	m.content.Width = textWidth
	m.content.Height = min(contentHeight, max(height/2, 5))
	if m.screen == screenFinished {
		m.content.SetContent(reporter.ContentText(m.assets.Content, textWidth))
	}
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		item, ok := m.picker.SelectedItem().(personaItem)
		if !ok {
			return m, nil
		}
		p, ok := m.personas.Lookup(string(item))
		if !ok {
			// NoSelection keeps the picker open
			return m, nil
		}
		m.selected = p
		m.assets = m.store.Load(p.ID)
		m.desc.SetValue(m.assets.Description)
		m.screen = screenDescribe
		slog.Info("writer selected", "persona", p.Name, "id", p.ID, "tasks", len(m.assets.Tasks))
		return m, m.desc.Focus()
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) updateDescribe(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.desc.Blur()
		m.screen = screenSelect
		return m, nil
	case "ctrl+w":
		return m.startRun()
	}
	var cmd tea.Cmd
	m.desc, cmd = m.desc.Update(msg)
	return m, cmd
}

func (m Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenSelect
		return m, nil
	case "r", "ctrl+w":
		return m.startRun()
	}
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

// startRun reloads the selected writer's tasks and begins a fresh run.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	m.desc.Blur()
	m.assets = m.store.Load(m.selected.ID)
	m.run = runner.NewRun(m.selected, m.assets.Tasks)
	m.status = make([]task.State, len(m.run.Tasks))
	m.rendered = ""
	m.screen = screenRunning
	next, stop := iter.Pull(m.runner.Events(m.run))
	m.next, m.stop = next, stop
	return m, pullCmd(m.run.ID, next)
}

func (m Model) handleEvent(msg eventMsg) (tea.Model, tea.Cmd) {
	if m.run == nil || msg.runID != m.run.ID {
		return m, nil
	}
	if !msg.ok {
		m.stop()
		m.screen = screenFinished
		m.content.SetContent(reporter.ContentText(m.assets.Content, m.content.Width))
		m.content.GotoTop()
		return m, nil
	}
	m.status[msg.event.Index] = msg.event.State
	m.rendered = msg.event.Rendered
	return m, pullCmd(m.run.ID, m.next)
}

func (m *Model) reloadIfSelected(name string) {
	if m.screen != screenDescribe {
		return
	}
	suffix := "_" + strconv.Itoa(m.selected.ID) + ".txt"
	if !strings.HasSuffix(name, suffix) {
		return
	}
	m.assets = m.store.Load(m.selected.ID)
	if strings.HasPrefix(name, assets.KindDescription+"_") {
		m.desc.SetValue(m.assets.Description)
	}
	slog.Info("assets reloaded", "persona", m.selected.Name, "resource", name)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	var b strings.Builder
	switch m.screen {
	case screenSelect:
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑↓/jk: move  enter: choose  q: quit"))
	case screenDescribe:
		b.WriteString(m.renderDescribe())
		b.WriteString(helpStyle.Render("ctrl+w: write article  esc: back  ctrl+c: quit"))
	case screenRunning:
		b.WriteString(m.renderHeader())
		b.WriteString(m.renderStatus())
		b.WriteString(helpStyle.Render("q: quit"))
	case screenFinished:
		b.WriteString(m.renderHeader())
		b.WriteString(m.renderStatus())
		b.WriteString(m.renderContent())
		b.WriteString(helpStyle.Render("↑↓: scroll  r: write again  esc: writers  q: quit"))
	}
	return b.String()
}

func (m Model) renderHeader() string {
	return headerStyle.Render(m.selected.Name) + "\n\n"
}

func (m Model) renderDescribe() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(sectionStyle.Render("Describe the article"))
	b.WriteString("\n")
	b.WriteString(m.desc.View())
	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("Steps"))
	b.WriteString("\n")
	for _, res := range task.ParseListDetailed(m.assets.TaskList) {
		line := fmt.Sprintf("  ─ %-4s %s", res.Task.Wait(), res.Task.Label)
		if !res.Parsed {
			line += " " + warnStyle.Render("(default duration)")
		}
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  total %s", task.TotalDuration(m.assets.Tasks))))
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) renderStatus() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Executing steps for the article"))
	b.WriteString("\n")
	b.WriteString(m.rendered)
	if !strings.HasSuffix(m.rendered, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(m.progressLine())
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) progressLine() string {
	var pending, running, done int
	for _, s := range m.status {
		switch s {
		case task.StateRunning:
			running++
		case task.StateDone:
			done++
		default:
			pending++
		}
	}
	var parts []string
	if done > 0 {
		parts = append(parts, doneStyle.Render(fmt.Sprintf("%d done", done)))
	}
	if running > 0 {
		parts = append(parts, runStyle.Render(fmt.Sprintf("%d running", running)))
	}
	if pending > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d pending", pending)))
	}
	return "  " + strings.Join(parts, "  ")
}

// renderContent shows the finished article, only once a run has finished
// for a known writer.
func (m Model) renderContent() string {
	if m.run == nil || !m.run.Finished() {
		return ""
	}
	return frameStyle.Render(m.content.View()) + "\n"
}
