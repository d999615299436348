// Package geometry maps pixel coordinates between a source frame and a
// zoomed/panned output canvas.
//
// # Regimes
//
// The mapping is affine in the output coordinate and has two regimes,
// selected by the zoom level:
//
//	zoom <  1  (shrink and pad):  in = (out - dimOut*pan)/zoom + dimIn/2
//	zoom >= 1  (crop and magnify): in = (out - dimOut/2)/zoom + dimIn*pan
//
// Pan means different things in each regime. Below 1 it is the position of
// the source centre on the canvas, as a fraction of the canvas size. From 1
// upwards it is the position of the canvas centre inside the source, as a
// fraction of the source size. Both meanings agree at pan 0.5, which is the
// common case, and the package keeps them apart rather than blending them.
//
// # Clamping
//
// ClampPan restricts a pan fraction to the interval where the sampling
// window stays inside the source frame (zoom >= 1) or where the shrunken
// content stays inside the canvas (zoom < 1). The interval endpoints come
// from FindPan, the inverse of MapOutputToInput in pan:
//
//	lo, hi := geometry.PanBounds(outW, zoom, inW)
//	x := geometry.ClampPan(0.9, outW, zoom, inW)
//
// All functions are pure and safe for concurrent use. Dimensions must be
// positive; callers validate them before reaching this package.
package geometry
