package render

import (
	"fmt"
	"image"
	"math"
	"runtime"

	"github.com/willbeason/juliaset/pkg/geometry"
	"seehuhn.de/go/geom/rect"
)

// Defaults applied by NewBuilder.
const (
	DefaultScale    = 0.001
	DefaultBailout  = 255
	DefaultFilename = "julia.png"
)

// Builder accumulates render options. Every method returns a modified copy,
// so a partially configured Builder can be reused as a template.
//
// The image size has no default and must be set with Size.
type Builder struct {
	width, height int
	sized         bool

	center complex128
	scale  float64
	bounds *rect.Rect

	variant  Variant
	c        complex128
	bailout  uint32
	filename string
	workers  int
}

// NewBuilder returns a Builder with the default options: centred on the
// origin, DefaultScale plane units per pixel, a Julia set with c = 0 and
// DefaultBailout iterations.
func NewBuilder() Builder {
	return Builder{
		scale:    DefaultScale,
		variant:  Julia,
		bailout:  DefaultBailout,
		filename: DefaultFilename,
	}
}

// Size sets the image dimensions in pixels.
func (b Builder) Size(width, height int) Builder {
	b.width, b.height = width, height
	b.sized = true
	return b
}

// Center sets the point of the plane at the middle of the image.
func (b Builder) Center(re, im float64) Builder {
	b.center = complex(re, im)
	b.bounds = nil
	return b
}

// Scale sets the size of a pixel in plane units.
func (b Builder) Scale(scale float64) Builder {
	b.scale = scale
	b.bounds = nil
	return b
}

// Bounds frames r: the image is centred on r and its real extent fills the image width.
// It replaces any Center and Scale set before it, and is itself replaced by later calls to either.
func (b Builder) Bounds(r rect.Rect) Builder {
	b.bounds = &r
	return b
}

// Variant sets which fractal is drawn.
func (b Builder) Variant(v Variant) Builder {
	b.variant = v
	return b
}

// C sets the Julia parameter. Mandelbrot renders ignore it.
func (b Builder) C(re, im float64) Builder {
	b.c = complex(re, im)
	return b
}

// Bailout sets the maximum number of iterations per pixel.
func (b Builder) Bailout(bailout uint32) Builder {
	b.bailout = bailout
	return b
}

// Filename sets where Render.Save writes the image.
func (b Builder) Filename(filename string) Builder {
	b.filename = filename
	return b
}

// Workers sets how many goroutines render rows. Zero or less means one per CPU.
func (b Builder) Workers(n int) Builder {
	b.workers = n
	return b
}

// Build validates the options and allocates the output buffer.
func (b Builder) Build() (*Render, error) {
	cfg, err := b.Config()
	if err != nil {
		return nil, err
	}

	return &Render{
		cfg: cfg,
		img: image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}, nil
}

// Config validates the options without allocating a buffer.
func (b Builder) Config() (Config, error) {
	if !b.sized {
		return Config{}, ErrNoSize
	}
	if b.width <= 0 || b.height <= 0 {
		return Config{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, b.width, b.height)
	}
	if b.width > math.MaxInt/4/b.height {
		return Config{}, fmt.Errorf("%w: %dx%d pixels do not fit in memory", ErrInvalidSize, b.width, b.height)
	}

	center, scale := b.center, b.scale
	if b.bounds != nil {
		center, scale = geometry.FitWidth(*b.bounds, b.width)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return Config{}, fmt.Errorf("%w: got %v", ErrInvalidScale, scale)
	}

	if b.bailout == 0 {
		return Config{}, ErrInvalidBailout
	}
	if !b.variant.Supported() {
		return Config{}, fmt.Errorf("%w: %v", ErrUnsupportedVariant, b.variant)
	}

	workers := b.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return Config{
		Width:    b.width,
		Height:   b.height,
		Viewport: geometry.NewViewport(center, scale, b.width, b.height),
		Variant:  b.variant,
		C:        b.c,
		Bailout:  b.bailout,
		Filename: b.filename,
		Workers:  workers,
	}, nil
}

// Config is a validated set of render options.
type Config struct {
	Width, Height int
	Viewport      geometry.Viewport
	Variant       Variant
	C             complex128
	Bailout       uint32
	Filename      string
	Workers       int
}
