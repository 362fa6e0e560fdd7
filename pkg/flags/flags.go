// Package flags provides pflag values for fractal render options.
package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/willbeason/juliaset/pkg/render"
	"seehuhn.de/go/geom/rect"
)

// Complex is a complex number flag written as "re,im".
type Complex complex128

var _ pflag.Value = (*Complex)(nil)

func (c *Complex) String() string {
	return formatFloats(real(*c), imag(*c))
}

func (c *Complex) Set(s string) error {
	v, err := parseFloats(s, 2)
	if err != nil {
		return err
	}
	*c = Complex(complex(v[0], v[1]))
	return nil
}

func (c *Complex) Type() string {
	return "re,im"
}

// Rect is a rectangle of the plane written as "llx,lly,urx,ury".
type Rect rect.Rect

var _ pflag.Value = (*Rect)(nil)

func (r *Rect) String() string {
	return formatFloats(r.LLx, r.LLy, r.URx, r.URy)
}

func (r *Rect) Set(s string) error {
	v, err := parseFloats(s, 4)
	if err != nil {
		return err
	}
	if v[0] >= v[2] || v[1] >= v[3] {
		return fmt.Errorf("rectangle %q is empty", s)
	}
	*r = Rect{LLx: v[0], LLy: v[1], URx: v[2], URy: v[3]}
	return nil
}

func (r *Rect) Type() string {
	return "llx,lly,urx,ury"
}

// Variant is a fractal variant flag accepting the names understood by render.ParseVariant.
type Variant render.Variant

var _ pflag.Value = (*Variant)(nil)

func (v *Variant) String() string {
	return render.Variant(*v).String()
}

func (v *Variant) Set(s string) error {
	parsed, err := render.ParseVariant(s)
	if err != nil {
		return err
	}
	*v = Variant(parsed)
	return nil
}

func (v *Variant) Type() string {
	return "julia|mandelbrot"
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}

	result := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		result[i] = f
	}
	return result, nil
}

func formatFloats(fs ...float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
