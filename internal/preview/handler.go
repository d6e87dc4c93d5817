package preview

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/ppiankov/scribeforge/internal/assets"
	"github.com/ppiankov/scribeforge/internal/persona"
	"github.com/ppiankov/scribeforge/internal/reporter"
	"github.com/ppiankov/scribeforge/internal/runner"
	"github.com/ppiankov/scribeforge/internal/task"
)

// Handler serves persona descriptions, task plans and finished articles.
type Handler struct {
	personas *persona.Registry
	store    *assets.Store
	tmpl     *template.Template
	mux      *http.ServeMux
}

type pageData struct {
	Title       string
	View        string
	Personas    []persona.Persona
	Persona     persona.Persona
	Description string
	Plan        []task.ParseResult
	Total       time.Duration
	Status      template.HTML
	Content     string
	HasContent  bool
	Height      int
}

// NewHandler creates the preview handler.
func NewHandler(personas *persona.Registry, store *assets.Store) *Handler {
	h := &Handler{
		personas: personas,
		store:    store,
		tmpl:     newTemplates(),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /persona/{name}", h.handlePersona)
	mux.HandleFunc("GET /persona/{name}/status", h.handleStatus)
	mux.HandleFunc("GET /persona/{name}/content", h.handleContent)
	h.mux = mux
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Debug("preview request", "method", r.Method, "path", r.URL.Path)
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageData{Title: persona.NoSelection, View: "index", Personas: h.personas.All()})
}

func (h *Handler) handlePersona(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	a := h.store.Load(p.ID)
	plan := task.ParseListDetailed(a.TaskList)
	h.render(w, pageData{
		Title:       p.Name,
		View:        "persona",
		Persona:     p,
		Description: a.Description,
		Plan:        plan,
		Total:       task.TotalDuration(a.Tasks),
	})
}

// completedRun drives a run of p's tasks without waiting out their durations.
func (h *Handler) completedRun(p persona.Persona) (*runner.Run, assets.Assets) {
	a := h.store.Load(p.ID)
	run := runner.NewRun(p, a.Tasks)
	rn := runner.New(reporter.HTMLLines{})
	rn.Sleep = func(time.Duration) {}
	rn.RunAll(run, nil)
	return run, a
}

// handleStatus renders the status region of a completed run followed by the
// finished article.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	run, a := h.completedRun(p)
	data := pageData{
		Title:   p.Name + " — steps",
		View:    "status",
		Persona: p,
		// lines are built from escaped labels by HTMLLines
		Status: template.HTML(run.Rendered()),
		Height: contentHeight,
	}
	if run.Finished() {
		data.Content = reporter.SanitizeHTML(a.Content)
		data.HasContent = true
	}
	h.render(w, data)
}

// handleContent serves the article frame alone. Like the terminal UI, it
// only shows the article once a run has finished.
func (h *Handler) handleContent(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	run, a := h.completedRun(p)
	if !run.Finished() {
		http.Error(w, "article not written yet", http.StatusConflict)
		return
	}
	h.render(w, pageData{
		Title:      p.Name + " — article",
		View:       "content",
		Persona:    p,
		Content:    reporter.SanitizeHTML(a.Content),
		HasContent: true,
		Height:     contentHeight,
	})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (persona.Persona, bool) {
	name := r.PathValue("name")
	p, ok := h.personas.Lookup(name)
	if !ok {
		http.Error(w, "unknown writer: "+name, http.StatusNotFound)
		return persona.Persona{}, false
	}
	return p, true
}

func (h *Handler) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		slog.Error("render preview page", "view", data.View, "error", err)
	}
}
