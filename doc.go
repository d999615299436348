// Package zoompan renders a zoomed and panned view of every frame of a
// video stream.
//
// For each input frame a Filter evaluates a zoom factor and a pan point,
// either from user expressions or from a precomputed trajectory file, and
// resamples the visible part of the source onto an output canvas. Pixels the
// source does not cover are painted with a fill colour.
//
// # Getting Started
//
//	opts, err := zoompan.ParseOptions("zoom='min(1+0.01*n,3)':x=0.5:y=0.5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := zoompan.New(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	out, err := f.FilterFrame(ctx, in)
//
// The first frame configures the filter: the output size, the zoom upper
// bound and the expression variables are derived from its geometry. Later
// frames must share that geometry.
//
// # Geometry
//
// Zoom values below 1 shrink the source inside the canvas; values above 1
// magnify it. The pan is a point in [0, 1] on each axis. For zoom below 1 it
// places the source centre on the canvas; otherwise it selects the source
// point shown at the canvas centre. Pans are clamped so that the view never
// leaves the source when it can be avoided. See the geometry package.
//
// # Expressions
//
// The zoom, x and y options are expressions compiled once with expr-lang.
// They are evaluated in that order and see the variables z, zoom, x, y, t,
// n, in_w, in_h, out_w, out_h and zoom_max. z, zoom, x and y carry the
// values of the previous frame, or of the current frame once computed. See
// the params package.
//
// # Rendering Modes
//
// ModeSubpixel samples each output pixel bilinearly at its exact source
// position, row bands running in parallel. ModeCoarse crops and pads on
// chroma-aligned integer rectangles and scales with golang.org/x/image/draw.
//
// # Error Handling
//
// Errors wrap the sentinels of this package and of the sub-packages and
// can be classified with errors.Is:
//
//	if errors.Is(err, zoompan.ErrResource) {
//	    // frame dropped, keep streaming
//	}
//
// # Logging
//
// Every filter logs through logrus with a filter_id field. Parameter warnings
// (NaN or out-of-range values, an exhausted schedule) are logged at warn
// level and counted in Stats.
package zoompan
