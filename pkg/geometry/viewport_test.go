package geometry

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
)

const tolerance = 1e-9

func closeTo(a, b complex128) bool {
	return math.Abs(real(a)-real(b)) <= tolerance && math.Abs(imag(a)-imag(b)) <= tolerance
}

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name          string
		center        complex128
		scale         float64
		width, height int
		want          complex128
	}{
		{"origin", 0, 0.002, 1000, 750, complex(-1.0, 0.75)},
		{"shifted", complex(1, -1), 0.5, 4, 2, complex(0, -0.5)},
		{"single pixel", complex(3, 4), 1, 1, 1, complex(2.5, 4.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(tc.center, tc.scale, tc.width, tc.height)
			if v.UpperLeft != tc.want {
				t.Errorf("UpperLeft = %v, want %v", v.UpperLeft, tc.want)
			}
			if v.Scale != tc.scale {
				t.Errorf("Scale = %v, want %v", v.Scale, tc.scale)
			}
		})
	}
}

func TestToComplex(t *testing.T) {
	v := Viewport{UpperLeft: complex(-1, 1), Scale: 0.5}

	tests := []struct {
		row, col int
		want     complex128
	}{
		{0, 0, complex(-1, 1)},
		{0, 2, complex(0, 1)},
		{2, 0, complex(-1, 0)},
		{4, 4, complex(1, -1)},
	}

	for _, tc := range tests {
		if got := v.ToComplex(tc.row, tc.col); got != tc.want {
			t.Errorf("ToComplex(%d, %d) = %v, want %v", tc.row, tc.col, got, tc.want)
		}
	}
}

// Recomputing the upper left corner from any mapped pixel gives back the original.
func TestRoundTrip(t *testing.T) {
	v := NewViewport(complex(-0.75, 0.1), 0.0037, 320, 200)

	for row := 0; row < 200; row += 7 {
		for col := 0; col < 320; col += 11 {
			z := v.ToComplex(row, col)

			upperLeft := z - complex(float64(col)*v.Scale, -float64(row)*v.Scale)
			if !closeTo(upperLeft, v.UpperLeft) {
				t.Fatalf("pixel (%d, %d): recovered %v, want %v", row, col, upperLeft, v.UpperLeft)
			}

			r, c := v.ToPixel(z)
			if math.Abs(r-float64(row)) > 1e-6 || math.Abs(c-float64(col)) > 1e-6 {
				t.Fatalf("ToPixel(ToComplex(%d, %d)) = (%v, %v)", row, col, r, c)
			}
		}
	}
}

func TestToPixelUsesBothAxes(t *testing.T) {
	v := Viewport{UpperLeft: complex(2, 3), Scale: 0.25}

	row, col := v.ToPixel(complex(3, 1))
	if row != 8 || col != 4 {
		t.Errorf("ToPixel = (%v, %v), want (8, 4)", row, col)
	}
}

func TestBounds(t *testing.T) {
	v := NewViewport(0, 0.002, 1000, 750)

	got := v.Bounds(1000, 750)
	want := rect.Rect{LLx: -1, LLy: -0.75, URx: 1, URy: 0.75}
	if math.Abs(got.LLx-want.LLx) > tolerance || math.Abs(got.LLy-want.LLy) > tolerance ||
		math.Abs(got.URx-want.URx) > tolerance || math.Abs(got.URy-want.URy) > tolerance {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestFitWidth(t *testing.T) {
	r := rect.Rect{LLx: -1.0, LLy: -0.75, URx: 1.0, URy: 0.75}

	center, scale := FitWidth(r, 1000)
	if center != 0 {
		t.Errorf("center = %v, want 0", center)
	}
	if want := (1.0 - (-1.0)) / 1000; scale != want {
		t.Errorf("scale = %v, want %v", scale, want)
	}

	v := NewViewport(center, scale, 1000, 750)
	if v.UpperLeft != complex(-1.0, 0.75) {
		t.Errorf("UpperLeft = %v, want (-1+0.75i)", v.UpperLeft)
	}
}
