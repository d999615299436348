// Package params produces the per-frame zoom and pan values of the
// zoom/pan engine.
//
// # Expression Mode
//
// Three expressions, compiled once with github.com/expr-lang/expr, give
// zoom, x and y for every frame. They are evaluated in that order and can
// refer to:
//
//	z, zoom        zoom of the previous evaluation (1 before the first frame)
//	x, y           pan of the previous evaluation (0.5 before the first frame)
//	t              frame time in seconds, NaN when unknown
//	n              frame index
//	in_w, in_h     input size
//	out_w, out_h   output size
//	zoom_max       largest valid zoom
//	PI, E          constants
//
// Besides the expr builtins (abs, min, max, floor, ceil, round and the ?:
// operator) the functions sin, cos, tan, sqrt, exp, log, pow, hypot,
// atan2, clip, lerp, isnan, between and trunc are available:
//
//	d, err := params.New(params.Config{
//	    ZoomExpr: "min(zoom+0.01, 2)",
//	    XExpr:    "0.5+0.2*sin(t)",
//	    ZoomMax:  4,
//	})
//	p := d.Next(frameTime, frameIndex)
//
// # Schedule Mode
//
// With a schedule.Table the expressions are ignored and each frame takes the
// next trajectory triple. Past the end the last triple repeats with a
// warning.
//
// # Validation
//
// Results are always usable: zoom ends in [0, zoom_max] and both pans in
// [0, 1]. NaN zoom becomes 1 and NaN pan becomes 0.5. Every correction is
// logged at Warn level; nothing is returned as an error at runtime.
package params
