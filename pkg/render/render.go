// Package render rasterizes escape-time fractals into RGBA images.
package render

import (
	"context"
	"image"

	"github.com/willbeason/juliaset/pkg/imageio"
	"github.com/willbeason/juliaset/pkg/transforms"
	"golang.org/x/sync/errgroup"
)

// A Render is one validated configuration together with its output buffer.
// It is created by Builder.Build and rendered once with Run.
//
// A Render is not safe for concurrent use.
type Render struct {
	cfg Config
	img *image.RGBA

	started  bool
	complete bool
}

// Config returns the options the Render was built with.
func (r *Render) Config() Config {
	return r.cfg
}

// Image returns the output buffer. Its contents are only meaningful once Run has returned nil.
func (r *Render) Image() *image.RGBA {
	return r.img
}

// Run computes every pixel of the image.
//
// Rows are spread over Config.Workers goroutines. Cancelling ctx stops the
// render between rows and returns the context's error; the image is then
// incomplete and the Render cannot be run again.
func (r *Render) Run(ctx context.Context) error {
	if r.started {
		return ErrAlreadyRendered
	}
	r.started = true

	err := forEachRow(ctx, r.cfg.Height, r.cfg.Workers, r.renderRow)
	if err != nil {
		return err
	}

	r.complete = true
	return nil
}

// Save writes the rendered image to Config.Filename.
func (r *Render) Save() error {
	if !r.complete {
		return ErrNotRendered
	}
	return imageio.Save(r.cfg.Filename, r.img)
}

// renderRow writes row y of the image. Only one goroutine handles a given row.
func (r *Render) renderRow(y int) {
	cfg := r.cfg
	v := cfg.Viewport
	pix := r.img.Pix[y*r.img.Stride : y*r.img.Stride+4*cfg.Width]

	switch cfg.Variant {
	case Julia:
		j := transforms.Julia{C: cfg.C}
		for x := range cfg.Width {
			iter, escaped := j.Escape(v.ToComplex(y, x), cfg.Bailout)
			setPixel(pix, x, y, iter, escaped)
		}
	case Mandelbrot:
		m := transforms.Mandelbrot{}
		for x := range cfg.Width {
			iter, escaped := m.Escape(v.ToComplex(y, x), cfg.Bailout)
			setPixel(pix, x, y, iter, escaped)
		}
	default:
		// Build rejects every other variant.
		panic("render: unsupported variant " + cfg.Variant.String())
	}
}

func setPixel(pix []uint8, x, y int, iter uint32, escaped bool) {
	c := Color(y, x, iter, escaped)
	s := pix[4*x : 4*x+4 : 4*x+4]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	s[3] = c.A
}

// forEachRow calls fn once for every row in [0, height), spread over workers goroutines.
// Each row goes to exactly one goroutine, so fn may write its row without locking.
func forEachRow(ctx context.Context, height, workers int, fn func(y int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	yChannel := make(chan int)

	g.Go(func() error {
		defer close(yChannel)
		for y := 0; y < height; y++ {
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for y := range yChannel {
				fn(y)
			}
			return nil
		})
	}

	return g.Wait()
}
