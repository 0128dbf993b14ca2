// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/polls/models"
)

// Page names
const (
	PageIndex   = "index.html"
	PageDetail  = "detail.html"
	PageResults = "results.html"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"ago":    humanize.Time,
	"plural": func(n int, singular string) string { return english.Plural(n, singular, "") },
}

// QuestionPage is the data for the detail and results pages.
type QuestionPage struct {
	Question     models.Question
	Choices      []models.Choice
	ErrorMessage string
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageIndex, PageDetail, PageResults} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(files, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render executes a page into a buffer first so that template errors
// still produce a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		slog.Error("unknown page", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "page", page, "error", err)
	}
}

// Must panics if New failed. Templates are embedded, so a parse error is
// a build defect rather than a runtime condition.
func Must(r *Renderer, err error) *Renderer {
	if err != nil {
		panic(err)
	}
	return r
}
