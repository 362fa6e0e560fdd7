package transforms

// Mandelbrot iterates the origin, using the point of the plane as the parameter.
type Mandelbrot struct{}

// Escape reports when the orbit of the origin under parameter c leaves the radius 2 disk.
func (Mandelbrot) Escape(c complex128, bailout uint32) (uint32, bool) {
	return Escape(0, c, bailout)
}
