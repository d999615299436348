// Package frame provides the raster buffers processed by the zoom/pan
// engine and the small set of primitives the engine needs around them.
//
// # Frames and Planes
//
// A Frame holds 1-4 planes. Each plane has its own row stride, which may
// exceed the visible line size for alignment. A PixelFormat describes where
// each colour component lives (plane, byte step, byte offset, bit depth)
// and how much the chroma planes of YUV formats are subsampled:
//
//	f, err := frame.New(frame.YUV420P, 640, 480)
//	if err != nil {
//	    return err
//	}
//	cw, ch := f.Format.PlaneSize(1, f.Width, f.Height) // 320x240
//
// Samples deeper than 8 bits are stored as 16-bit little-endian values.
//
// # Boundary Collaborators
//
//   - Allocator / DefaultAllocator: zero-initialised frames with 32-byte
//     aligned strides, bounded by the limits package.
//   - FillRect / Fill: paint a rectangle with one value per component.
//   - CopyRect: copy a block between frames of the same format.
//   - ReadRaw / WriteRaw: tightly packed raw video I/O.
//
// # Registered Formats
//
// gray, gray16le, yuv410p, yuv411p, yuv420p, yuv422p, yuv440p, yuv444p,
// yuva420p, yuva444p, yuv420p10le, yuv420p16le, yuv444p16le, rgb24, bgr24,
// rgba, bgra, gbrp. Use LookupFormat to resolve a name.
package frame
