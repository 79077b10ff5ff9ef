package useragent

import (
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// PatternSet is a supplemental set of detection tokens, typically loaded
// from a YAML file shipped alongside the application:
//
//	keywords:
//	  - sailfish
//	  - kaios
//	tablets:
//	  - mediapad
//	patterns:
//	  - 'huawei[a-z0-9-]+'
type PatternSet struct {
	Keywords []string `yaml:"keywords"`
	Tablets  []string `yaml:"tablets"`
	Patterns []string `yaml:"patterns"`

	compiled []*regexp.Regexp
}

// ParsePatterns decodes a YAML pattern set and compiles its regular
// expressions. Invalid expressions fail the whole set.
func ParsePatterns(data []byte) (PatternSet, error) {
	var set PatternSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return PatternSet{}, errors.Join(ErrInvalidPatternSet, err)
	}

	set.compiled = make([]*regexp.Regexp, 0, len(set.Patterns))
	for _, expr := range set.Patterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return PatternSet{}, errors.Join(ErrInvalidPatternSet, fmt.Errorf("pattern %q: %w", expr, err))
		}
		set.compiled = append(set.compiled, re)
	}

	return set, nil
}

// WithPatternSet merges a parsed pattern set into the Matcher.
func WithPatternSet(set PatternSet) Option {
	return func(m *Matcher) {
		WithKeywords(set.Keywords...)(m)
		WithTabletKeywords(set.Tablets...)(m)
		m.patterns = append(m.patterns, set.compiled...)
	}
}
