package render

import "image/color"

// GradientStep is how much the green and blue channels grow per row and column.
const GradientStep float32 = 0.1

// Color is the color of pixel (row, col) given its escape result.
//
// Red encodes the escape time, brightest for points escaping immediately.
// Points that never escape are drawn with no red at all, which also covers
// escapes after 255 or more iterations. Green and blue are fixed gradients
// down the rows and across the columns.
func Color(row, col int, iter uint32, escaped bool) color.RGBA {
	var red uint8
	if escaped && iter < 255 {
		red = 255 - uint8(iter)
	}

	return color.RGBA{
		R: red,
		G: gradient(row),
		B: gradient(col),
		A: 255,
	}
}

// gradient saturates at 255 instead of wrapping for rows or columns past 2550.
func gradient(i int) uint8 {
	g := GradientStep * float32(i)
	if g >= 255 {
		return 255
	}
	return uint8(g)
}
