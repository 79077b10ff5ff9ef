package render

import "errors"

var (
	// ErrViewNotFound indicates no resolver had the view in the negotiated
	// or fallback format
	ErrViewNotFound = errors.New("render.view_not_found")

	// ErrInvalidTemplate indicates a template file failed to parse
	ErrInvalidTemplate = errors.New("render.invalid_template")
)
