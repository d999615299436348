package zoompan

import "math"

// Canvas is the resolved output geometry of a configured filter.
type Canvas struct {
	Width, Height int

	// AspectRatio is the target aspect ratio after defaults.
	AspectRatio float64

	// ZoomMax is the largest zoom accepted from expressions or the
	// schedule.
	ZoomMax float64

	// ShadowZoom multiplies every zoom value. It differs from 1 only when
	// an explicit output size was requested.
	ShadowZoom float64
}

// ComputeCanvas resolves the output geometry for an input of inW x inH.
//
// The aspect ratio is opts.AspectRatio, the input's when that is 0, or
// Width/Height when both are set. The output keeps the input's full width
// or height, whichever the target ratio allows. An explicit size replaces
// it and sets ShadowZoom to the width ratio. Unless opts.Exact is set, odd
// sizes are rounded down to even; sizes never drop below 2.
func ComputeCanvas(inW, inH int, opts Options) Canvas {
	inAR := float64(inW) / float64(inH)
	ar := opts.AspectRatio
	if ar == 0 {
		ar = inAR
	}
	explicit := opts.Width > 0 && opts.Height > 0
	if explicit {
		ar = float64(opts.Width) / float64(opts.Height)
	}

	var zoomMax float64
	if ar <= 1 {
		zoomMax = math.Min(ar*float64(inH), float64(inH))
	} else {
		zoomMax = math.Min(float64(inW), float64(inW)/ar)
	}

	var w, h int
	if inAR < ar {
		w, h = inW, int(math.Round(float64(inH)*inAR/ar))
	} else {
		w, h = int(math.Round(float64(inW)*ar/inAR)), inH
	}

	shadow := 1.0
	if explicit {
		shadow = float64(opts.Width) / float64(max(w, 1))
		w, h = opts.Width, opts.Height
	}

	if !opts.Exact {
		w -= w % 2
		h -= h % 2
	}
	if w <= 0 {
		w = 2
	}
	if h <= 0 {
		h = 2
	}
	return Canvas{Width: w, Height: h, AspectRatio: ar, ZoomMax: zoomMax, ShadowZoom: shadow}
}
