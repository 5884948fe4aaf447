package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"maps"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"
)

// Template file extensions. A template named "contact" is made of "contact.html"
// (required, html/template) and "contact.txt" (optional, text/template).
const (
	htmlExt = ".html"
	textExt = ".txt"
)

// Renderer renders paired HTML and plain-text email templates from a filesystem.
// Parsed templates are cached; rendering with fresh data never touches the filesystem.
type Renderer struct {
	fs    fs.FS
	funcs map[string]any

	htmlCache   map[string]*htmlTemplate
	textCache   map[string]*texttemplate.Template // nil value: no text variant
	layoutCache map[string]*template.Template
	templateDir string
	layoutDir   string

	mu sync.RWMutex
}

type htmlTemplate struct {
	metadata map[string]any
	tmpl     *template.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string         // Default: "."
	LayoutDir   string         // Default: "layouts"
	Funcs       map[string]any // Extra template functions, merged over the defaults
}

// NewRenderer creates a renderer with default config.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom config.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	funcs := defaultFuncs()
	maps.Copy(funcs, cfg.Funcs)

	return &Renderer{
		fs:          filesystem,
		funcs:       funcs,
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
		htmlCache:   make(map[string]*htmlTemplate),
		textCache:   make(map[string]*texttemplate.Template),
		layoutCache: make(map[string]*template.Template),
	}
}

// defaultFuncs are available in every template.
func defaultFuncs() map[string]any {
	return map[string]any{
		// lines splits text on "\n" so templates can join lines with explicit breaks.
		"lines": func(s string) []string { return strings.Split(s, "\n") },
	}
}

// RenderResult contains both bodies and the frontmatter of the HTML template.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Subject returns the "Subject" frontmatter value, if any.
func (r *RenderResult) Subject() (string, bool) {
	s, ok := r.Metadata["Subject"].(string)
	return s, ok && s != ""
}

// Render executes the named template pair with data.
// The HTML body is wrapped in layout unless layout is empty.
// Text is empty when the template has no .txt variant.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	ht, err := r.getHTML(name)
	if err != nil {
		return nil, err
	}

	var content bytes.Buffer
	if err := ht.tmpl.Execute(&content, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	html := content.String()
	if layout != "" {
		lt, err := r.getLayout(layout)
		if err != nil {
			return nil, err
		}

		var wrapped bytes.Buffer
		layoutData := map[string]any{
			"Content":  template.HTML(html),
			"Metadata": ht.metadata,
			"Data":     data,
		}
		if err := lt.Execute(&wrapped, layoutData); err != nil {
			return nil, fmt.Errorf("%w: layout %s: %v", ErrRenderFailed, layout, err)
		}
		html = wrapped.String()
	}

	tt, err := r.getText(name)
	if err != nil {
		return nil, err
	}

	var text bytes.Buffer
	if tt != nil {
		if err := tt.Execute(&text, data); err != nil {
			return nil, fmt.Errorf("%w: %s%s: %v", ErrRenderFailed, name, textExt, err)
		}
	}

	return &RenderResult{
		Metadata: ht.metadata,
		HTML:     html,
		Text:     text.String(),
	}, nil
}

// cachedLoad returns cache[key] or stores the result of load under the write lock.
func cachedLoad[T any](mu *sync.RWMutex, cache map[string]T, key string, load func() (T, error)) (T, error) {
	mu.RLock()
	v, ok := cache[key]
	mu.RUnlock()
	if ok {
		return v, nil
	}

	mu.Lock()
	defer mu.Unlock()

	if v, ok := cache[key]; ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	cache[key] = v
	return v, nil
}

func (r *Renderer) getHTML(name string) (*htmlTemplate, error) {
	return cachedLoad(&r.mu, r.htmlCache, name, func() (*htmlTemplate, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name+htmlExt))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
		}

		parsed, err := ParseTemplate(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
		}

		tmpl, err := template.New(name + htmlExt).Funcs(r.funcs).Parse(parsed.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s%s: %v", ErrRenderFailed, name, htmlExt, err)
		}

		return &htmlTemplate{metadata: parsed.Metadata, tmpl: tmpl}, nil
	})
}

func (r *Renderer) getText(name string) (*texttemplate.Template, error) {
	return cachedLoad(&r.mu, r.textCache, name, func() (*texttemplate.Template, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name+textExt))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s%s: %v", ErrTemplateNotFound, name, textExt, err)
		}

		// Frontmatter is allowed for symmetry with the HTML file but only the
		// HTML frontmatter is reported in RenderResult.Metadata.
		parsed, err := ParseTemplate(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s%s: %v", ErrRenderFailed, name, textExt, err)
		}

		tmpl, err := texttemplate.New(name + textExt).Funcs(r.funcs).Parse(parsed.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s%s: %v", ErrRenderFailed, name, textExt, err)
		}
		return tmpl, nil
	})
}

func (r *Renderer) getLayout(name string) (*template.Template, error) {
	return cachedLoad(&r.mu, r.layoutCache, name, func() (*template.Template, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
		}

		tmpl, err := template.New(name).Funcs(r.funcs).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse layout %s: %v", ErrRenderFailed, name, err)
		}
		return tmpl, nil
	})
}
