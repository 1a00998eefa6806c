// Package render holds the HTML templates shared by the server and the
// static exporter.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"ausverity-backend/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Template names
const (
	HomeTemplate         = "home.html"
	StateTemplate        = "state.html"
	PracticeAreaTemplate = "practice_area.html"
	NotFoundTemplate     = "not_found.html"
)

// Renderer executes the page templates
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template returns the parsed template set, for gin's SetHTMLTemplate
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Render executes the named template into w. Output is buffered so a failed
// execution writes nothing.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) Home(w io.Writer, page *models.HomePage) error {
	return r.Render(w, HomeTemplate, page)
}

func (r *Renderer) State(w io.Writer, page *models.StatePage) error {
	return r.Render(w, StateTemplate, page)
}

func (r *Renderer) PracticeArea(w io.Writer, page *models.PracticeAreaPage) error {
	return r.Render(w, PracticeAreaTemplate, page)
}

func (r *Renderer) NotFound(w io.Writer, page *models.NotFoundPage) error {
	return r.Render(w, NotFoundTemplate, page)
}
