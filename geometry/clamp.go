package geometry

import "math"

// Fits reports whether the source scaled by zoom fits inside the canvas on
// one axis.
func Fits(dimOut, zoom, dimIn float64) bool {
	return dimIn*zoom <= dimOut
}

// PanBounds returns the interval of valid pans on one axis.
//
// The endpoints are the pans at which the canvas edges line up with the
// source edges: output 0 on input 0 (the near boundary) and output dimOut on
// input dimIn (the far boundary). When zoom < 1 and the shrunken source is
// still larger than the canvas, the interval is the near boundary reflected
// about 0.5, so the canvas stays covered by source samples.
func PanBounds(dimOut, zoom, dimIn float64) (lo, hi float64) {
	near := FindPan(0, 0, dimOut, zoom, dimIn)
	if RegimeFor(zoom) == Shrink && !Fits(dimOut, zoom, dimIn) {
		return math.Min(near, 1-near), math.Max(near, 1-near)
	}
	far := FindPan(dimIn, dimOut, dimOut, zoom, dimIn)
	return math.Min(near, far), math.Max(near, far)
}

// ClampPan restricts pan on one axis to PanBounds. NaN resolves to the
// middle of the interval. The result is stable: clamping it again returns
// the same value.
func ClampPan(pan, dimOut, zoom, dimIn float64) float64 {
	lo, hi := PanBounds(dimOut, zoom, dimIn)
	if math.IsNaN(pan) {
		return lo + (hi-lo)/2
	}
	return math.Min(math.Max(pan, lo), hi)
}

// ClampPan2D clamps both axes of pan.
//
// With zoom >= 1, or zoom < 1 and content that fits on both axes, each axis
// is a plain clamp between its boundary pans. Otherwise the overflowing axis
// uses the reflected interval of PanBounds while the fitting axis keeps the
// plain clamp, so a wide frame shrunk onto a tall canvas is not held to the
// centre horizontally just because it overflows vertically.
func ClampPan2D(pan Point, out Size, zoom float64, in Size) Point {
	return Point{
		X: ClampPan(pan.X, out.W, zoom, in.W),
		Y: ClampPan(pan.Y, out.H, zoom, in.H),
	}
}
