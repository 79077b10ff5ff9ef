package useragent

import (
	"regexp"
	"strings"
)

// device is the internal classification result.
type device int

const (
	deviceOther device = iota
	deviceMobile
	deviceTablet
)

// Default mobile tokens. Android is handled separately because Android
// tablets omit the "mobile" keyword that Android phones carry.
var mobileKeywords = []string{
	"iphone", "ipod", "blackberry", "bb10", "windows phone", "iemobile",
	"opera mini", "opera mobi", "nokia", "symbian", "webos", "palm",
	"vodafone", "netfront", "smartphone", "up.browser", "midp", "wap",
	"mobile",
}

var tabletKeywords = []string{
	"ipad", "kindle", "silk", "playbook", "tablet",
}

// Matcher decides whether a user agent belongs to a mobile device.
// The zero value is not usable; construct with New.
type Matcher struct {
	keywords       []string
	tablets        []string
	patterns       []*regexp.Regexp
	tabletAsMobile bool
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithKeywords adds extra mobile tokens matched as lowercase substrings.
func WithKeywords(words ...string) Option {
	return func(m *Matcher) {
		for _, w := range words {
			if w != "" {
				m.keywords = append(m.keywords, strings.ToLower(w))
			}
		}
	}
}

// WithTabletKeywords adds extra tablet tokens.
func WithTabletKeywords(words ...string) Option {
	return func(m *Matcher) {
		for _, w := range words {
			if w != "" {
				m.tablets = append(m.tablets, strings.ToLower(w))
			}
		}
	}
}

// WithPattern adds a compiled regular expression matched against the
// lowercased user agent.
func WithPattern(re *regexp.Regexp) Option {
	return func(m *Matcher) {
		if re != nil {
			m.patterns = append(m.patterns, re)
		}
	}
}

// TreatTabletAsMobile makes tablet user agents count as mobile.
func TreatTabletAsMobile() Option {
	return func(m *Matcher) {
		m.tabletAsMobile = true
	}
}

// New creates a Matcher with the built-in token sets plus any options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		keywords: append([]string(nil), mobileKeywords...),
		tablets:  append([]string(nil), tabletKeywords...),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMatcher = New()

// Default returns the shared Matcher with built-in token sets.
// It must not be mutated; construct a new Matcher for custom patterns.
func Default() *Matcher { return defaultMatcher }

// IsMobile reports whether ua identifies a mobile device.
// Empty or unrecognized user agents are not mobile.
func (m *Matcher) IsMobile(ua string) bool {
	switch m.classify(strings.ToLower(ua)) {
	case deviceMobile:
		return true
	case deviceTablet:
		return m.tabletAsMobile
	default:
		return false
	}
}

// IsTablet reports whether ua identifies a tablet device.
func (m *Matcher) IsTablet(ua string) bool {
	return m.classify(strings.ToLower(ua)) == deviceTablet
}

// classify orders checks so the unambiguous iOS tokens win before the
// Android mobile/tablet split and the generic token sets.
func (m *Matcher) classify(lower string) device {
	if lower == "" {
		return deviceOther
	}

	if strings.Contains(lower, "ipad") {
		return deviceTablet
	}

	if strings.Contains(lower, "iphone") || strings.Contains(lower, "ipod") {
		return deviceMobile
	}

	if strings.Contains(lower, "android") {
		if strings.Contains(lower, "mobile") {
			return deviceMobile
		}
		return deviceTablet
	}

	if containsAny(lower, m.tablets) {
		return deviceTablet
	}

	if containsAny(lower, m.keywords) {
		return deviceMobile
	}

	for _, re := range m.patterns {
		if re.MatchString(lower) {
			return deviceMobile
		}
	}

	return deviceOther
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
