package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/juliaset/pkg/server"
)

type options struct {
	port          int
	maxPixels     int
	workers       int
	renderTimeout time.Duration
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Render fractals for websocket clients",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.port, "port", 8080, "HTTP port; the websocket endpoint is /ws")
	f.IntVar(&opts.maxPixels, "max-pixels", server.DefaultMaxPixels, "largest image a client may request")
	f.IntVar(&opts.workers, "workers", 0, "goroutines per render, 0 for one per CPU")
	f.DurationVar(&opts.renderTimeout, "render-timeout", time.Minute, "longest a single render may take")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	h := &server.Handler{
		MaxPixels:     opts.maxPixels,
		Workers:       opts.workers,
		RenderTimeout: opts.renderTimeout,
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.port),
		Handler:           server.NewMux(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Stops the shutdown watcher on return as well as on interrupt.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on ws://localhost:%d/ws", opts.port)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
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
