// Package resample implements the per-pixel path of the zoom/pan engine: a
// bilinear sampler with a hard out-of-bounds edge and a plane loop that maps
// every destination sample back into the source.
//
// # Sampling
//
// Sample8 and Sample16 interpolate between the four neighbours of a
// fractional position. Positions left of 0, right of width-1, above 0,
// below height-1, or NaN return the caller's fill value unchanged; there is
// no blending with the fill colour at the edge.
//
// # Plane Loop
//
// A Plane bundles one component of a source and a destination frame. Chroma
// components carry their subsampled sizes so the same zoom and pan apply to
// every component:
//
//	p, err := resample.ComponentPlane(in, out, 1, fill[1])
//	if err != nil {
//	    return err
//	}
//	resample.ResamplePlane(p, zoom, pan)
//
// # Parallelism
//
// Executor splits the rows of a plane into contiguous slices and runs them
// on a bounded errgroup. Workers write disjoint rows and only read the
// source, so no locking is needed.
package resample
