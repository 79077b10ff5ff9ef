// Package mobylette redirects responses for mobile devices to a mobile
// response format.
//
// It provides middleware that inspects each request's User-Agent header,
// explicit format parameter, and per-session override flag, and rewrites the
// negotiated response format to "mobile" when the request is judged to come
// from a mobile device. View resolution (pkg/render) then tries the mobile
// variant of a view and falls back to the configured format when none exists.
//
// Minimal wiring:
//
//	detector := mobylette.New(mobylette.WithFallbackFormat(mobylette.FormatHTML))
//	mux.Handle("/", detector.Middleware(handler))
//
// Inside a handler the negotiated format is available from the context:
//
//	if format, ok := mobylette.FormatFromContext(r.Context()); ok && format == mobylette.FormatMobile {
//		// mobile rendering path
//	}
//
// Visitors can pin behavior for a whole session: ForceMobile makes every
// request mobile regardless of user agent, IgnoreMobile suppresses mobile
// handling entirely and takes precedence over all other signals.
package mobylette
