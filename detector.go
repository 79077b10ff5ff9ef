package mobylette

import (
	"log/slog"
	"net/http"

	"github.com/robinboening/mobylette/pkg/useragent"
)

const (
	defaultFormatParam = "format"
	defaultSkipParam   = "skip_mobile"
)

// Detector holds the process-wide mobile handling configuration. Build it
// once at startup; it is read-only afterwards and safe for concurrent use.
type Detector struct {
	fallback    Format
	skipXHR     bool
	formatParam string
	skipParam   string
	matcher     *useragent.Matcher
	log         *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithFallbackFormat sets the format rendering falls back to when no mobile
// view exists. FormatNone disables fallback.
func WithFallbackFormat(f Format) Option {
	return func(d *Detector) {
		d.fallback = f
	}
}

// WithSkipXHR controls whether XMLHttpRequest calls bypass mobile detection.
// Enabled by default: ajax endpoints usually serve both variants of a page.
func WithSkipXHR(skip bool) Option {
	return func(d *Detector) {
		d.skipXHR = skip
	}
}

// WithFormatParam overrides the query parameter carrying an explicit format.
func WithFormatParam(name string) Option {
	return func(d *Detector) {
		if name != "" {
			d.formatParam = name
		}
	}
}

// WithSkipParam overrides the query parameter that bypasses mobile handling
// for a single request.
func WithSkipParam(name string) Option {
	return func(d *Detector) {
		if name != "" {
			d.skipParam = name
		}
	}
}

// WithMatcher sets a custom user-agent matcher.
func WithMatcher(m *useragent.Matcher) Option {
	return func(d *Detector) {
		if m != nil {
			d.matcher = m
		}
	}
}

// WithLogger enables debug logging of per-request decisions.
func WithLogger(log *slog.Logger) Option {
	return func(d *Detector) {
		d.log = log
	}
}

// New creates a Detector with the given options.
func New(opts ...Option) *Detector {
	d := &Detector{
		fallback:    FormatHTML,
		skipXHR:     true,
		formatParam: defaultFormatParam,
		skipParam:   defaultSkipParam,
		matcher:     useragent.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// FallbackFormat returns the configured fallback format.
func (d *Detector) FallbackFormat() Format { return d.fallback }

// Middleware rewrites the negotiated format to mobile for eligible requests.
// It must run after the session middleware so the override flag is visible.
func (d *Detector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Session ignore-override wins over every other signal.
		if OverrideFromContext(r.Context()) == OverrideIgnoreMobile {
			next.ServeHTTP(w, r)
			return
		}

		if d.RespondAsMobile(r) {
			if d.log != nil {
				d.log.DebugContext(r.Context(), "serving mobile format",
					slog.String("path", r.URL.Path),
					slog.String("device", d.matcher.DeviceName(r.UserAgent())),
				)
			}
			r = r.WithContext(WithFormat(r.Context(), FormatMobile))
		}

		next.ServeHTTP(w, r)
	})
}

// RespondAsMobile reports whether the request should get the mobile format:
// no bypass (XHR when configured, explicit skip parameter) and at least one
// mobile signal (session force, mobile user agent, explicit format param).
func (d *Detector) RespondAsMobile(r *http.Request) bool {
	if d.skipXHR && IsXHR(r) {
		return false
	}

	if r.URL.Query().Get(d.skipParam) != "" {
		return false
	}

	if OverrideFromContext(r.Context()) == OverrideForceMobile {
		return true
	}

	if queryFormat(r, d.formatParam) == FormatMobile {
		return true
	}

	return d.IsMobileRequest(r)
}

// IsMobileRequest reports whether the request's user agent matches the
// mobile pattern, ignoring overrides and bypass parameters.
func (d *Detector) IsMobileRequest(r *http.Request) bool {
	return d.matcher.IsMobile(r.UserAgent())
}
