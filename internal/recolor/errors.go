package recolor

import (
	"errors"

	"github.com/ironsheep/image-recolor/internal/imaging"
)

var (
	// ErrColorParse means a color string is not exactly "#" followed by six
	// hex digits. It is always reported before any file is touched.
	ErrColorParse = errors.New("invalid color")

	// ErrInvalidThreshold means the threshold is negative.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// File and codec failures, shared with the imaging package.
	ErrInputNotFound     = imaging.ErrInputNotFound
	ErrDecode            = imaging.ErrDecode
	ErrUnsupportedFormat = imaging.ErrUnsupportedFormat
	ErrOutputWrite       = imaging.ErrOutputWrite
)
