// Package server renders fractals on request over a websocket.
//
// A client sends a JSON Request as a text message. The server answers each
// request with either the encoded image as one binary message or a JSON
// Response carrying the error as a text message.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/willbeason/juliaset/pkg/imageio"
	"github.com/willbeason/juliaset/pkg/render"
)

// DefaultMaxPixels caps the size of a single requested image.
const DefaultMaxPixels = 4096 * 4096

// ErrTooLarge is reported for requests above the server's pixel limit.
var ErrTooLarge = errors.New("image too large")

// Request describes one image. Omitted fields take the render package defaults.
type Request struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Center  [2]float64 `json:"center"`
	Scale   float64    `json:"scale,omitempty"`
	Type    string     `json:"type,omitempty"`
	C       [2]float64 `json:"c"`
	Bailout uint32     `json:"bailout,omitempty"`
	Format  string     `json:"format,omitempty"`
}

// Response reports a failed request.
type Response struct {
	Error string `json:"error"`
}

// Builder converts r into render options.
func (r Request) Builder() (render.Builder, error) {
	b := render.NewBuilder().Center(r.Center[0], r.Center[1]).C(r.C[0], r.C[1])

	// A request without a size leaves the builder unsized so Build reports it.
	if r.Width != 0 || r.Height != 0 {
		b = b.Size(r.Width, r.Height)
	}
	if r.Scale != 0 {
		b = b.Scale(r.Scale)
	}
	if r.Bailout != 0 {
		b = b.Bailout(r.Bailout)
	}
	if r.Type != "" {
		v, err := render.ParseVariant(r.Type)
		if err != nil {
			return render.Builder{}, err
		}
		b = b.Variant(v)
	}

	return b, nil
}

// Handler serves the websocket endpoint.
type Handler struct {
	// MaxPixels bounds width*height of a request. Zero means DefaultMaxPixels.
	MaxPixels int

	// Workers is the number of goroutines per render. Zero means one per CPU.
	Workers int

	// RenderTimeout bounds a single render. Zero means no limit.
	RenderTimeout time.Duration
}

// NewMux returns a mux with the websocket endpoint at /ws.
func NewMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("got connection from: %s", r.RemoteAddr)

	ctx := r.Context()
	for {
		var req Request
		err := wsjson.Read(ctx, c, &req)
		if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway {
			return
		}
		if err != nil {
			log.Printf("read from %s: %v", r.RemoteAddr, err)
			return
		}

		data, err := h.render(ctx, req)
		if err != nil {
			log.Printf("request from %s failed: %v", r.RemoteAddr, err)
			err = wsjson.Write(ctx, c, Response{Error: err.Error()})
		} else {
			err = c.Write(ctx, websocket.MessageBinary, data)
		}
		if err != nil {
			log.Printf("write to %s: %v", r.RemoteAddr, err)
			return
		}
	}
}

// render builds, runs and encodes the image described by req.
func (h *Handler) render(ctx context.Context, req Request) ([]byte, error) {
	format := imageio.PNG
	if req.Format != "" {
		f, err := imageio.ParseFormat(req.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	b, err := req.Builder()
	if err != nil {
		return nil, err
	}

	maxPixels := h.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if req.Width > 0 && req.Height > 0 && req.Width > maxPixels/req.Height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, req.Width, req.Height, maxPixels)
	}

	rnd, err := b.Workers(h.Workers).Build()
	if err != nil {
		return nil, err
	}

	if h.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.RenderTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := rnd.Run(ctx); err != nil {
		return nil, err
	}
	log.Printf("rendered %dx%d %v in %v", req.Width, req.Height, rnd.Config().Variant, time.Since(start))

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, format, rnd.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
