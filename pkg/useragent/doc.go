// Package useragent classifies HTTP User-Agent strings as mobile or not.
//
// Detection is a pattern match over well-known device tokens, not a lookup
// against a maintained device database. The default Matcher covers the common
// smartphone families; additional keywords and regular expressions can be
// supplied programmatically or loaded from a YAML pattern file.
//
// Example:
//
//	m := useragent.New()
//	if m.IsMobile(r.UserAgent()) {
//		// serve the mobile variant
//	}
//
// Tablets are classified separately and are not treated as mobile unless
// TreatTabletAsMobile is set.
package useragent
