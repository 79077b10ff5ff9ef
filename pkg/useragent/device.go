package useragent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Device family display names that title casing would mangle.
var deviceNameMap = map[string]string{
	"iphone":        "iPhone",
	"ipod":          "iPod",
	"ipad":          "iPad",
	"android":       "Android",
	"blackberry":    "BlackBerry",
	"bb10":          "BlackBerry",
	"windows phone": "Windows Phone",
	"iemobile":      "Windows Phone",
	"webos":         "webOS",
}

// DeviceName returns a human-readable device family for logging and
// diagnostics, or "Unknown" when no token matches.
func (m *Matcher) DeviceName(ua string) string {
	lower := strings.ToLower(ua)
	if lower == "" {
		return "Unknown"
	}

	for token, name := range deviceNameMap {
		if strings.Contains(lower, token) {
			return name
		}
	}

	title := cases.Title(language.English)
	for _, token := range append(append([]string(nil), m.tablets...), m.keywords...) {
		if strings.Contains(lower, token) {
			return title.String(token)
		}
	}

	return "Unknown"
}
