package transforms

// Julia iterates points of the plane under a fixed parameter C.
type Julia struct {
	C complex128
}

// Escape reports when the orbit starting at z leaves the radius 2 disk.
func (j Julia) Escape(z complex128, bailout uint32) (uint32, bool) {
	return Escape(z, j.C, bailout)
}
