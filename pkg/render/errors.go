package render

import "errors"

// Configuration errors returned by Builder.Build.
var (
	ErrNoSize             = errors.New("image size not specified")
	ErrInvalidSize        = errors.New("image size must be positive")
	ErrInvalidScale       = errors.New("scale must be positive and finite")
	ErrInvalidBailout     = errors.New("bailout must be positive")
	ErrUnsupportedVariant = errors.New("unsupported fractal variant")
)

// ErrAlreadyRendered is returned by Render.Run when the buffer has already been rendered.
var ErrAlreadyRendered = errors.New("render already run")

// ErrNotRendered is returned by Render.Save when the buffer has not been fully rendered.
var ErrNotRendered = errors.New("render not complete")
