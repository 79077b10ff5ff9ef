package useragent

import "errors"

var (
	// ErrInvalidPatternSet indicates a pattern file failed to parse or compile
	ErrInvalidPatternSet = errors.New("useragent.invalid_pattern_set")
)
