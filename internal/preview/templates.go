package preview

import (
	"html/template"
	"net/url"
	"time"
)

// contentHeight is the fixed height, in pixels, of the finished-article frame.
const contentHeight = 600

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"personaPath": func(name string) string { return "/persona/" + url.PathEscape(name) },
		"seconds":     func(d time.Duration) string { return d.String() },
	}
	return template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 2rem; max-width: 72rem; }
    pre.description { white-space: pre-wrap; background: #f6f6f6; padding: 1rem; }
    table.plan td { padding: 0.2rem 0.8rem; }
    .fallback { color: #a60; }
    iframe.content { width: 100%; border: 1px solid #ccc; }
  </style>
</head>
<body>
{{if eq .View "index"}}
  <h1>Select a Writer</h1>
  <ul>
  {{range .Personas}}
    <li><a href="{{personaPath .Name}}">{{.Name}}</a></li>
  {{end}}
  </ul>
{{else if eq .View "persona"}}
  <p><a href="/">&larr; writers</a></p>
  <h1>{{.Persona.Name}}</h1>
  <h2>Describe the article</h2>
  <pre class="description">{{.Description}}</pre>
  <h2>Steps</h2>
  <table class="plan">
  {{range .Plan}}
    <tr><td>{{.Task.Label}}</td><td>{{.Task.Duration}}s</td><td>{{if not .Parsed}}<span class="fallback">default duration</span>{{end}}</td></tr>
  {{end}}
  </table>
  <p>Total: {{seconds .Total}}</p>
  <p><a href="{{personaPath .Persona.Name}}/status">Write article</a></p>
{{else if eq .View "status"}}
  <p><a href="{{personaPath .Persona.Name}}">&larr; {{.Persona.Name}}</a></p>
  <b>Executing steps for the article</b>
  {{.Status}}
  {{if .HasContent}}{{template "article" .}}{{end}}
{{else if eq .View "content"}}
  <p><a href="{{personaPath .Persona.Name}}">&larr; {{.Persona.Name}}</a></p>
  {{template "article" .}}
{{end}}
</body>
</html>
{{define "article"}}<iframe class="content" sandbox="" height="{{.Height}}" scrolling="yes" srcdoc="{{.Content}}"></iframe>{{end}}
`
