package render

import (
	"context"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/robinboening/mobylette"
)

// TemplateDir resolves html/template files from an fs.FS. Files follow the
// Rails-style naming scheme "<name>.<format>.html", e.g. "home.html.html"
// and "home.mobile.html". Parsed templates are kept for the resolver's
// lifetime; missing files are remembered so fallback lookups stay cheap.
type TemplateDir struct {
	fsys  fs.FS
	funcs template.FuncMap

	mu    sync.Mutex
	cache map[string]*template.Template
	miss  map[string]struct{}
}

// TemplateOption configures a TemplateDir.
type TemplateOption func(*TemplateDir)

// WithFuncs adds a function map available to all templates.
func WithFuncs(funcs template.FuncMap) TemplateOption {
	return func(t *TemplateDir) {
		t.funcs = funcs
	}
}

// NewTemplateDir creates a resolver over the given filesystem.
func NewTemplateDir(fsys fs.FS, opts ...TemplateOption) *TemplateDir {
	t := &TemplateDir{
		fsys:  fsys,
		cache: make(map[string]*template.Template),
		miss:  make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Resolve locates and parses the template for the name and format.
func (t *TemplateDir) Resolve(name string, format mobylette.Format) (View, bool) {
	path := name + "." + string(format) + ".html"

	t.mu.Lock()
	defer t.mu.Unlock()

	if tmpl, ok := t.cache[path]; ok {
		return templateView{tmpl}, true
	}
	if _, ok := t.miss[path]; ok {
		return nil, false
	}

	data, err := fs.ReadFile(t.fsys, path)
	if err != nil {
		t.miss[path] = struct{}{}
		return nil, false
	}

	tmpl, err := template.New(path).Funcs(t.funcs).Parse(string(data))
	if err != nil {
		// A present but broken template renders as an error, not a fallback
		return brokenView{path: path, err: err}, true
	}

	t.cache[path] = tmpl
	return templateView{tmpl}, true
}

type templateView struct {
	tmpl *template.Template
}

func (v templateView) Render(ctx context.Context, w io.Writer, data any) error {
	return v.tmpl.Execute(w, data)
}

type brokenView struct {
	path string
	err  error
}

func (v brokenView) Render(ctx context.Context, w io.Writer, data any) error {
	return errors.Join(ErrInvalidTemplate, v.err)
}
