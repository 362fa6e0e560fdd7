package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/juliaset/pkg/flags"
	"github.com/willbeason/juliaset/pkg/render"
	"seehuhn.de/go/geom/rect"
)

type options struct {
	width, height int
	center        flags.Complex
	scale         float64
	bounds        flags.Rect
	variant       flags.Variant
	c             flags.Complex
	bailout       uint32
	workers       int
	out           string
}

func mainCmd() *cobra.Command {
	opts := &options{
		scale:   render.DefaultScale,
		variant: flags.Variant(render.Julia),
		bailout: render.DefaultBailout,
		out:     render.DefaultFilename,
	}

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render a Julia or Mandelbrot set to an image file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 0, "image width in pixels")
	f.IntVar(&opts.height, "height", 0, "image height in pixels")
	f.Var(&opts.center, "center", "point of the plane at the centre of the image")
	f.Float64Var(&opts.scale, "scale", opts.scale, "plane units per pixel")
	f.Var(&opts.bounds, "bounds", "rectangle of the plane to frame; overrides --center and --scale")
	f.Var(&opts.variant, "type", "fractal to render")
	f.Var(&opts.c, "c", "Julia set parameter")
	f.Uint32Var(&opts.bailout, "bailout", opts.bailout, "maximum iterations per pixel")
	f.IntVar(&opts.workers, "workers", 0, "goroutines rendering rows, 0 for one per CPU")
	f.StringVarP(&opts.out, "out", "o", opts.out, "output file; .png, .bmp or .tiff")

	// Without a size there is nothing to render.
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	b := render.NewBuilder().
		Size(opts.width, opts.height).
		Center(real(opts.center), imag(opts.center)).
		Scale(opts.scale).
		Variant(render.Variant(opts.variant)).
		C(real(opts.c), imag(opts.c)).
		Bailout(opts.bailout).
		Workers(opts.workers).
		Filename(opts.out)
	if cmd.Flags().Changed("bounds") {
		b = b.Bounds(rect.Rect(opts.bounds))
	}

	r, err := b.Build()
	if err != nil {
		return err
	}

	cfg := r.Config()
	log.Printf("rendering %dx%d %v set with %d workers", cfg.Width, cfg.Height, cfg.Variant, cfg.Workers)
	view := cfg.Viewport.Bounds(cfg.Width, cfg.Height)
	log.Printf("framing re [%g, %g], im [%g, %g]", view.LLx, view.URx, view.LLy, view.URy)

	start := time.Now()
	err = r.Run(cmd.Context())
	if err != nil {
		return err
	}
	log.Printf("rendered in %v", time.Since(start))

	err = r.Save()
	if err != nil {
		return err
	}
	log.Printf("saved %q", cfg.Filename)

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		stop()
		os.Exit(1)
	}
}
