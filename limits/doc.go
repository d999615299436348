// Package limits provides centralized size constants and validation functions
// for the zoom/pan engine. This package ensures consistent size enforcement
// across frame allocation, option parsing and trajectory loading.
//
// # Limits
//
//   - MaxDimension (65536): the largest width or height of any frame,
//     input or output. It is also the upper bound of the width and height
//     options.
//
//   - MaxFrameBytes (1 GiB): the largest single output allocation. Requests
//     above it fail as a resource error and the frame is dropped.
//
//   - MaxScheduleBytes (256 MiB): the largest trajectory file loaded at
//     configuration time.
//
//   - MaxAspectRatio (100) and MaxThreads (1024): option ranges.
//
// # Validation Functions
//
// Each validation function returns nil or a wrapped sentinel error:
//
//	if err := limits.ValidateDimensions(w, h); err != nil {
//	    // errors.Is(err, limits.ErrDimensionTooLarge) ...
//	}
//
// # Error Types
//
//   - ErrInvalidDimension: zero or negative width/height
//   - ErrDimensionTooLarge: width/height above MaxDimension
//   - ErrBufferTooLarge: byte count above MaxFrameBytes or MaxScheduleBytes
//   - ErrOutOfRange: numeric option outside its range
package limits
