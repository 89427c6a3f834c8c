package email

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

//go:embed templates
var templateFS embed.FS

// TemplateService renders Handlebars email templates.
//
// Layout:
//   - layouts/<name>.hbs wraps HTML bodies via {{{content}}}
//   - <name>.hbs is the HTML body
//   - <name>.txt.hbs is the optional plain-text body
type TemplateService struct {
	fsys fs.FS
	log  *slog.Logger

	mu    sync.Mutex
	cache map[string]*raymond.Template
}

// TemplateRenderResult contains the rendered email content
type TemplateRenderResult struct {
	HTML string
	Text string
}

// TemplateContext is the data passed to templates
type TemplateContext map[string]any

// NewTemplateService uses the templates compiled into the binary.
func NewTemplateService(log *slog.Logger) *TemplateService {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return NewTemplateServiceFS(sub, log)
}

// NewTemplateServiceFS reads templates from fsys.
func NewTemplateServiceFS(fsys fs.FS, log *slog.Logger) *TemplateService {
	return &TemplateService{
		fsys:  fsys,
		log:   log.With(logger.Scope("email.template")),
		cache: make(map[string]*raymond.Template),
	}
}

func (ts *TemplateService) load(name string) (*raymond.Template, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if tmpl, ok := ts.cache[name]; ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(ts.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", name)
	}

	tmpl, err := raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	ts.cache[name] = tmpl
	return tmpl, nil
}

func (ts *TemplateService) exec(name string, ctx any) (string, error) {
	tmpl, err := ts.load(name)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return out, nil
}

// Render renders templateName, wrapping the HTML in layoutName when set.
func (ts *TemplateService) Render(templateName string, data TemplateContext, layoutName string) (*TemplateRenderResult, error) {
	html, err := ts.exec(templateName+".hbs", data)
	if err != nil {
		return nil, err
	}

	if layoutName != "" {
		layoutData := TemplateContext{"content": html}
		for k, v := range data {
			if _, ok := layoutData[k]; !ok {
				layoutData[k] = v
			}
		}
		html, err = ts.exec(path.Join("layouts", layoutName+".hbs"), layoutData)
		if err != nil {
			return nil, err
		}
	}

	text, err := ts.exec(templateName+".txt.hbs", data)
	if err != nil {
		ts.log.Debug("no text template, deriving from html", slog.String("template", templateName))
		text = stripTags(html)
	}

	return &TemplateRenderResult{HTML: html, Text: text}, nil
}

// stripTags is a crude HTML-to-text fallback.
func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
