package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/robinboening/mobylette"
)

// View is a renderable unit resolved for a specific name and format.
type View interface {
	Render(ctx context.Context, w io.Writer, data any) error
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(ctx context.Context, w io.Writer, data any) error

func (f ViewFunc) Render(ctx context.Context, w io.Writer, data any) error {
	return f(ctx, w, data)
}

// Resolver locates a view for a name and format.
type Resolver interface {
	Resolve(name string, format mobylette.Format) (View, bool)
}

// Renderer renders named views using the request's negotiated format,
// falling back to the configured format when no view exists.
type Renderer struct {
	resolvers     []Resolver
	fallback      mobylette.Format
	defaultFormat mobylette.Format
	log           *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithResolver appends resolvers to the chain.
func WithResolver(resolvers ...Resolver) Option {
	return func(rn *Renderer) {
		rn.resolvers = append(rn.resolvers, resolvers...)
	}
}

// WithFallback sets the format tried when the negotiated format has no view.
// mobylette.FormatNone disables fallback.
func WithFallback(f mobylette.Format) Option {
	return func(rn *Renderer) {
		rn.fallback = f
	}
}

// WithDefaultFormat sets the format used when the request negotiated none.
func WithDefaultFormat(f mobylette.Format) Option {
	return func(rn *Renderer) {
		if f != mobylette.FormatNone {
			rn.defaultFormat = f
		}
	}
}

// WithLogger enables debug logging of fallback decisions.
func WithLogger(log *slog.Logger) Option {
	return func(rn *Renderer) {
		rn.log = log
	}
}

// New creates a Renderer. Defaults: html for both the unnegotiated format
// and the fallback.
func New(opts ...Option) *Renderer {
	rn := &Renderer{
		fallback:      mobylette.FormatHTML,
		defaultFormat: mobylette.FormatHTML,
	}

	for _, opt := range opts {
		opt(rn)
	}

	return rn
}

// Prepend puts a resolver at the front of the chain so it is consulted
// before the existing ones.
func (rn *Renderer) Prepend(r Resolver) {
	rn.resolvers = append([]Resolver{r}, rn.resolvers...)
}

// Render writes the named view to the response using the request's
// negotiated format. When that format has no view it retries with the
// fallback format; only then does it fail with ErrViewNotFound.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data any) error {
	format, ok := mobylette.FormatFromContext(r.Context())
	if !ok || format == mobylette.FormatNone {
		format = rn.defaultFormat
	}

	view, found := rn.resolve(name, format)
	if !found && rn.fallback != mobylette.FormatNone && rn.fallback != format {
		if rn.log != nil {
			rn.log.DebugContext(r.Context(), "view missing, using fallback format",
				slog.String("view", name),
				slog.String("format", string(format)),
				slog.String("fallback", string(rn.fallback)),
			)
		}
		format = rn.fallback
		view, found = rn.resolve(name, format)
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrViewNotFound, name)
	}

	w.Header().Set("Content-Type", contentType(format))
	return view.Render(r.Context(), w, data)
}

func (rn *Renderer) resolve(name string, format mobylette.Format) (View, bool) {
	for _, resolver := range rn.resolvers {
		if view, ok := resolver.Resolve(name, format); ok {
			return view, true
		}
	}
	return nil, false
}

func contentType(format mobylette.Format) string {
	if format == mobylette.FormatJSON {
		return "application/json; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}
