package gui

import "errors"

var (
	// ErrDuplicateID is reported when two clickable widgets in the same
	// frame hash to the same ID.
	ErrDuplicateID = errors.New("duplicate widget id")

	// ErrInvalidSizeKind is returned when parsing an unknown size kind.
	ErrInvalidSizeKind = errors.New("invalid size kind")

	// ErrInvalidColor is returned when parsing a malformed hex color.
	ErrInvalidColor = errors.New("invalid color")
)
