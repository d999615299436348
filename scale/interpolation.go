package scale

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Interpolation selects the algorithm of the coarse scaling path.
type Interpolation int

const (
	FastBilinear Interpolation = iota
	Bilinear
	Bicubic
	Experimental
	Point
	Area
	Bicublin
	Gauss
	Sinc
	Lanczos
	Spline
)

var interpolationNames = []string{
	FastBilinear: "fast_bilinear",
	Bilinear:     "bilinear",
	Bicubic:      "bicubic",
	Experimental: "x",
	Point:        "point",
	Area:         "area",
	Bicublin:     "bicublin",
	Gauss:        "gauss",
	Sinc:         "sinc",
	Lanczos:      "lanczos",
	Spline:       "spline",
}

// String returns the option name of i.
func (i Interpolation) String() string {
	if i < 0 || int(i) >= len(interpolationNames) {
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
	return interpolationNames[i]
}

// ParseInterpolation resolves an option name. "neighbor" is accepted as an
// alias of "point".
func ParseInterpolation(s string) (Interpolation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "neighbor" {
		return Point, nil
	}
	for i, n := range interpolationNames {
		if n == name {
			return Interpolation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterpolation, s)
}

// Interpolator returns the x/image/draw interpolator used for a component.
// Bicublin uses bicubic for luma and bilinear for chroma.
func (i Interpolation) Interpolator(chroma bool) draw.Interpolator {
	switch i {
	case FastBilinear:
		return draw.ApproxBiLinear
	case Bilinear:
		return draw.BiLinear
	case Bicubic:
		return draw.CatmullRom
	case Experimental:
		return mitchellKernel
	case Point:
		return draw.NearestNeighbor
	case Area:
		return areaKernel
	case Bicublin:
		if chroma {
			return draw.BiLinear
		}
		return draw.CatmullRom
	case Gauss:
		return gaussKernel
	case Sinc:
		return sincKernel
	case Lanczos:
		return lanczosKernel
	case Spline:
		return splineKernel
	}
	return draw.ApproxBiLinear
}

// Custom kernels. At is only called with t in [0, Support).
var (
	areaKernel = &draw.Kernel{Support: 0.5, At: func(t float64) float64 {
		return 1
	}}

	gaussKernel = &draw.Kernel{Support: 2, At: func(t float64) float64 {
		return math.Exp(-2 * t * t)
	}}

	sincKernel = &draw.Kernel{Support: 4, At: func(t float64) float64 {
		return sinc(t)
	}}

	lanczosKernel = &draw.Kernel{Support: 3, At: func(t float64) float64 {
		return sinc(t) * sinc(t/3)
	}}

	// Cubic B-spline.
	splineKernel = &draw.Kernel{Support: 2, At: func(t float64) float64 {
		return cubic(1, 0, t)
	}}

	// Mitchell-Netravali, B = C = 1/3.
	mitchellKernel = &draw.Kernel{Support: 2, At: func(t float64) float64 {
		return cubic(1.0/3, 1.0/3, t)
	}}
)

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

// cubic is the Mitchell-Netravali family with parameters b and c.
func cubic(b, c, x float64) float64 {
	switch {
	case x < 1:
		return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
	case x < 2:
		return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	}
	return 0
}
