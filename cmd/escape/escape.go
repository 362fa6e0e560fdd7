package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/juliaset/pkg/flags"
	"github.com/willbeason/juliaset/pkg/render"
	"seehuhn.de/go/geom/rect"
)

const (
	Width  = 4000
	Height = 3000
)

var (
	// View is the part of the plane both images frame.
	View = rect.Rect{LLx: -1.2, LLy: -0.5, URx: 1.2, URy: 0.5}

	// C is the Julia parameter: a dendrite-like set with spiralling arms.
	C = complex(-0.8, 0.156)
)

type options struct {
	width, height int
	bounds        flags.Rect
	c             flags.Complex
	bailout       uint32
	dir           string
}

func mainCmd() *cobra.Command {
	opts := &options{
		width:   Width,
		height:  Height,
		bounds:  flags.Rect(View),
		c:       flags.Complex(C),
		bailout: render.DefaultBailout,
	}

	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render a Julia set and the Mandelbrot set over the same view",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", opts.width, "image width in pixels")
	f.IntVar(&opts.height, "height", opts.height, "image height in pixels")
	f.Var(&opts.bounds, "bounds", "rectangle of the plane to frame")
	f.Var(&opts.c, "c", "Julia set parameter")
	f.Uint32Var(&opts.bailout, "bailout", opts.bailout, "maximum iterations per pixel")
	f.StringVar(&opts.dir, "dir", ".", "directory to write julia.png and mandelbrot.png to")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	err := os.MkdirAll(opts.dir, os.ModePerm)
	if err != nil {
		return err
	}

	base := render.NewBuilder().
		Size(opts.width, opts.height).
		Bounds(rect.Rect(opts.bounds)).
		C(real(opts.c), imag(opts.c)).
		Bailout(opts.bailout)

	jobs := []render.Builder{
		base.Variant(render.Julia).Filename(filepath.Join(opts.dir, "julia.png")),
		base.Variant(render.Mandelbrot).Filename(filepath.Join(opts.dir, "mandelbrot.png")),
	}

	// Each image succeeds or fails on its own.
	var errs []error
	for _, job := range jobs {
		err := renderAndSave(cmd.Context(), job)
		if err != nil {
			log.Print(err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func renderAndSave(ctx context.Context, b render.Builder) error {
	r, err := b.Build()
	if err != nil {
		return err
	}
	cfg := r.Config()

	start := time.Now()
	err = r.Run(ctx)
	if err != nil {
		return fmt.Errorf("rendering %v: %w", cfg.Variant, err)
	}

	err = r.Save()
	if err != nil {
		return fmt.Errorf("saving %v: %w", cfg.Variant, err)
	}

	log.Printf("%v set saved to %q in %v", cfg.Variant, cfg.Filename, time.Since(start))
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
