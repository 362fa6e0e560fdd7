package geometry

import "seehuhn.de/go/geom/rect"

// A Viewport maps the pixel grid of an image onto the complex plane.
//
// Pixel (0, 0) sits at UpperLeft. Columns grow along the real axis and rows
// grow towards decreasing imaginary parts, so the image is not mirrored.
type Viewport struct {
	// UpperLeft is the point of the plane at pixel (0, 0).
	UpperLeft complex128

	// Scale is the size of one pixel in plane units, the same on both axes.
	Scale float64
}

// NewViewport returns the Viewport of a width x height image centred on center.
func NewViewport(center complex128, scale float64, width, height int) Viewport {
	return Viewport{
		UpperLeft: complex(
			real(center)-float64(width)/2.0*scale,
			imag(center)+float64(height)/2.0*scale,
		),
		Scale: scale,
	}
}

// ToComplex returns the point of the plane at pixel (row, col).
func (v Viewport) ToComplex(row, col int) complex128 {
	return complex(
		real(v.UpperLeft)+float64(col)*v.Scale,
		imag(v.UpperLeft)-float64(row)*v.Scale,
	)
}

// ToPixel is the inverse of ToComplex.
// The results are not rounded, so points between pixel centres have fractional coordinates.
func (v Viewport) ToPixel(z complex128) (row, col float64) {
	col = (real(z) - real(v.UpperLeft)) / v.Scale
	row = (imag(v.UpperLeft) - imag(z)) / v.Scale
	return row, col
}

// Bounds is the rectangle of the plane covered by a width x height image.
func (v Viewport) Bounds(width, height int) rect.Rect {
	return rect.Rect{
		LLx: real(v.UpperLeft),
		LLy: imag(v.UpperLeft) - float64(height)*v.Scale,
		URx: real(v.UpperLeft) + float64(width)*v.Scale,
		URy: imag(v.UpperLeft),
	}
}

// FitWidth returns the centre of r and the scale at which its real extent fills width pixels.
// The imaginary extent of r is only used to find the centre; with a
// different aspect ratio than the image it is cropped or padded.
func FitWidth(r rect.Rect, width int) (center complex128, scale float64) {
	center = complex((r.LLx+r.URx)/2.0, (r.LLy+r.URy)/2.0)
	scale = (r.URx - r.LLx) / float64(width)
	return center, scale
}
