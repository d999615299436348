// Package scale implements the coarse rendering path of the zoom/pan
// engine.
//
// Instead of sampling every output pixel at a fractional source position,
// the coarse path works out which integer source rectangle is visible at
// the current zoom and pan, which canvas rectangle it lands on, and hands
// both to a Scaler. Rectangles are snapped to the chroma grid so subsampled
// planes stay aligned. Canvas pixels outside the destination rectangle keep
// the fill colour.
//
// DrawScaler is the default Scaler. It scales each component separately
// with golang.org/x/image/draw; Interpolation picks the algorithm:
//
//	fast_bilinear  draw.ApproxBiLinear
//	bilinear       draw.BiLinear
//	bicubic        draw.CatmullRom
//	x              Mitchell-Netravali kernel
//	point          draw.NearestNeighbor
//	area           box kernel
//	bicublin       CatmullRom for luma, BiLinear for chroma
//	gauss          gaussian kernel
//	sinc           truncated sinc kernel
//	lanczos        Lanczos-3 kernel
//	spline         cubic B-spline kernel
package scale
