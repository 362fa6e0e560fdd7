package render

import (
	"fmt"
	"strings"
)

// Variant selects which escape-time set is drawn.
type Variant int

const (
	// Julia iterates each pixel's point under the configured parameter.
	Julia Variant = iota
	// Mandelbrot iterates the origin with each pixel's point as the parameter.
	Mandelbrot
	// Buddhabrot is reserved. Building a configuration with it fails.
	Buddhabrot
)

var variantNames = map[Variant]string{
	Julia:      "julia",
	Mandelbrot: "mandelbrot",
	Buddhabrot: "buddhabrot",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Supported reports whether the rasterizer can draw v.
func (v Variant) Supported() bool {
	switch v {
	case Julia, Mandelbrot:
		return true
	default:
		return false
	}
}

// ParseVariant returns the Variant named s, ignoring case.
// Reserved variants parse successfully; Builder.Build rejects them.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
}
