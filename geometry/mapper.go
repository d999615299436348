package geometry

// Regime identifies which branch of the coordinate mapping applies.
type Regime int

const (
	// Shrink is the zoom < 1 regime: the whole source is scaled down onto
	// the canvas and pan positions the source centre on the canvas.
	Shrink Regime = iota
	// Magnify is the zoom >= 1 regime: a window of the source is scaled up
	// to fill the canvas and pan positions the window centre in the source.
	Magnify
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case Shrink:
		return "shrink"
	case Magnify:
		return "magnify"
	default:
		return "unknown"
	}
}

// RegimeFor returns the regime selected by zoom.
func RegimeFor(zoom float64) Regime {
	if zoom < 1 {
		return Shrink
	}
	return Magnify
}

// Size is a two-axis dimension in pixels.
type Size struct {
	W, H float64
}

// Point is a two-axis coordinate. For pans both axes are fractions.
type Point struct {
	X, Y float64
}

// Center is the neutral pan.
var Center = Point{X: 0.5, Y: 0.5}

// MapOutputToInput converts an output pixel coordinate on one axis into the
// (possibly fractional) source coordinate it samples.
func MapOutputToInput(pxOut, dimOut, zoom, dimIn, pan float64) float64 {
	if RegimeFor(zoom) == Shrink {
		return (pxOut-dimOut*pan)/zoom + dimIn/2
	}
	return (pxOut-dimOut/2)/zoom + dimIn*pan
}

// MapInputToOutput is the inverse of MapOutputToInput in the pixel
// coordinate: it returns the output coordinate at which source coordinate
// pxIn lands.
func MapInputToOutput(pxIn, dimOut, zoom, dimIn, pan float64) float64 {
	if RegimeFor(zoom) == Shrink {
		return (pxIn-dimIn/2)*zoom + dimOut*pan
	}
	return (pxIn-dimIn*pan)*zoom + dimOut/2
}

// FindPan solves MapOutputToInput for pan, returning the pan that makes
// output coordinate pxOut sample source coordinate pxIn.
func FindPan(pxIn, pxOut, dimOut, zoom, dimIn float64) float64 {
	if RegimeFor(zoom) == Shrink {
		return (pxOut - (pxIn-dimIn/2)*zoom) / dimOut
	}
	return (pxIn - (pxOut-dimOut/2)/zoom) / dimIn
}

// Map2D applies MapOutputToInput to both axes.
func Map2D(out Point, dimOut Size, zoom float64, dimIn Size, pan Point) Point {
	return Point{
		X: MapOutputToInput(out.X, dimOut.W, zoom, dimIn.W, pan.X),
		Y: MapOutputToInput(out.Y, dimOut.H, zoom, dimIn.H, pan.Y),
	}
}
