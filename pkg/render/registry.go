package render

import (
	"context"
	"io"
	"sync"

	"github.com/a-h/templ"

	"github.com/robinboening/mobylette"
)

// ComponentFunc builds a templ component for the handler-supplied data.
type ComponentFunc func(data any) templ.Component

// Registry resolves templ components registered under a view name and
// format. Registration happens at startup; lookups are read-mostly.
type Registry struct {
	mu    sync.RWMutex
	views map[viewKey]ComponentFunc
}

type viewKey struct {
	name   string
	format mobylette.Format
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[viewKey]ComponentFunc),
	}
}

// Add registers a component constructor for the name and format,
// replacing any previous registration.
func (r *Registry) Add(name string, format mobylette.Format, fn ComponentFunc) {
	if fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[viewKey{name, format}] = fn
}

// AddComponent registers a static component that ignores render data.
func (r *Registry) AddComponent(name string, format mobylette.Format, c templ.Component) {
	r.Add(name, format, func(any) templ.Component { return c })
}

// Resolve locates a registered component.
func (r *Registry) Resolve(name string, format mobylette.Format) (View, bool) {
	r.mu.RLock()
	fn, ok := r.views[viewKey{name, format}]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}

	return componentView{fn}, true
}

type componentView struct {
	fn ComponentFunc
}

func (v componentView) Render(ctx context.Context, w io.Writer, data any) error {
	return v.fn(data).Render(ctx, w)
}
