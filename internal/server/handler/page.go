package handler

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/sevigo/review-generator/internal/core"
)

//go:embed templates/*.html
var templateFiles embed.FS

const indexTemplate = "index.html"

// View is the state of the form page for one response.
type View struct {
	Snippet    string
	MaxLength  string
	Error      string
	ErrorField string
	Reviews    []core.GeneratedReview
}

type reviewView struct {
	Heading string
	HTML    string
}

// Page renders the review form. Markdown is converted with goldmark and
// sanitized before it reaches the template.
type Page struct {
	content     *core.FormContent
	description string
	tpl         *pongo2.Template
	markdown    goldmark.Markdown
	policy      *bluemonday.Policy
}

// NewPage parses the embedded form template and pre-renders the description.
func NewPage(content *core.FormContent) (*Page, error) {
	templates, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}

	set := pongo2.NewSet("review-form", pongo2.NewFSLoader(templates))
	tpl, err := set.FromFile(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", indexTemplate, err)
	}

	p := &Page{
		content:  content,
		tpl:      tpl,
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
	}

	p.description, err = p.renderMarkdown(content.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to render description: %w", err)
	}
	return p, nil
}

// Render writes the page for the given view.
func (p *Page) Render(w io.Writer, view View) error {
	reviews := make([]reviewView, 0, len(view.Reviews))
	for _, r := range view.Reviews {
		html, err := p.renderMarkdown(r.Text)
		if err != nil {
			return fmt.Errorf("failed to render %s review: %w", r.Label(), err)
		}
		reviews = append(reviews, reviewView{Heading: p.content.HeadingFor(r), HTML: html})
	}

	maxLength := view.MaxLength
	if maxLength == "" {
		maxLength = strconv.Itoa(core.MinMaxLength)
	}

	ctx := pongo2.Context{
		"content":          p.content,
		"description":      p.description,
		"snippet":          view.Snippet,
		"max_length":       maxLength,
		"min_length":       core.MinMaxLength,
		"max_length_limit": core.MaxMaxLength,
		"max_snippet":      core.MaxSnippetRunes,
		"error":            view.Error,
		"error_field":      view.ErrorField,
		"reviews":          reviews,
	}

	var buf bytes.Buffer
	if err := p.tpl.ExecuteWriter(ctx, &buf); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", indexTemplate, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (p *Page) renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := p.markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return p.policy.Sanitize(buf.String()), nil
}
