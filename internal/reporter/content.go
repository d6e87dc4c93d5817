package reporter

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// blockEnd lists elements whose closing tag ends a paragraph of text.
var blockEnd = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Pre: true, atom.Blockquote: true, atom.Tr: true, atom.Table: true,
	atom.Section: true, atom.Article: true,
}

// hidden lists elements whose text is never shown.
var hidden = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Template: true, atom.Title: true,
}

// ContentText converts a finished HTML article into wrapped terminal text.
// Markup is stripped, never interpreted.
func ContentText(doc string, width int) string {
	if width < 1 {
		width = 1
	}
	text := htmlText(doc)

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return wordwrap.String(strings.TrimSpace(text), width)
}

// htmlText flattens doc to text: list items become "- " lines, block ends
// and <br> become breaks, entities are decoded.
func htmlText(doc string) string {
	z := html.NewTokenizer(strings.NewReader(doc))
	var b strings.Builder
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch a := atom.Lookup(name); {
			case hidden[a]:
				if tt == html.StartTagToken {
					skip++
				}
			case a == atom.Li:
				b.WriteString("\n- ")
			case a == atom.Br:
				b.WriteString("\n")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case hidden[a]:
				if skip > 0 {
					skip--
				}
			case blockEnd[a]:
				b.WriteString("\n\n")
			}
		}
	}
}

// SanitizeHTML strips scripts, event handlers and other unsafe markup while
// keeping ordinary article formatting.
func SanitizeHTML(doc string) string {
	return ugcPolicy().Sanitize(doc)
}

func ugcPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyles("color", "font-weight", "text-align").Globally()
	return p
}
