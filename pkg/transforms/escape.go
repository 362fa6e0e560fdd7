package transforms

// EscapeRadiusSq is the squared escape radius.
// Once |z| > 2 the orbit of z*z + c diverges, and comparing squared norms avoids a square root.
const EscapeRadiusSq = 4.0

// Escape iterates z = z*z + c from z0 at most bailout times.
//
// If the orbit leaves the disk of radius 2, Escape returns the 0-based index
// of the step after which that was detected and true. Otherwise it returns
// bailout and false, meaning the point is presumed to be in the set.
func Escape(z0, c complex128, bailout uint32) (uint32, bool) {
	z := z0
	for i := uint32(0); i < bailout; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > EscapeRadiusSq {
			return i, true
		}
	}

	return bailout, false
}
