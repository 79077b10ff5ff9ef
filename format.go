package mobylette

import (
	"context"
	"net/http"
)

// Format identifies a response format. Values are free-form; the constants
// below cover the formats the module itself reasons about.
type Format string

const (
	// FormatHTML is the default desktop format
	FormatHTML Format = "html"

	// FormatMobile is the format installed for mobile requests
	FormatMobile Format = "mobile"

	// FormatJSON identifies JSON responses
	FormatJSON Format = "json"

	// FormatNone disables format fallback when used as a fallback format
	FormatNone Format = ""
)

type formatContextKey struct{}

// WithFormat returns a context carrying the negotiated response format.
func WithFormat(ctx context.Context, f Format) context.Context {
	return context.WithValue(ctx, formatContextKey{}, f)
}

// FormatFromContext returns the negotiated response format, if any.
func FormatFromContext(ctx context.Context) (Format, bool) {
	f, ok := ctx.Value(formatContextKey{}).(Format)
	return f, ok
}

// RequestedFormat returns the explicit format query parameter using the
// default parameter name. An absent or empty parameter yields FormatNone.
func RequestedFormat(r *http.Request) Format {
	return queryFormat(r, defaultFormatParam)
}

func queryFormat(r *http.Request, param string) Format {
	return Format(r.URL.Query().Get(param))
}
