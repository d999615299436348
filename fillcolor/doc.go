// Package fillcolor parses background colour specifications and converts
// them into per-component sample values for a pixel format.
//
// # Colour Specifications
//
// A specification is one of:
//
//   - a hexadecimal RRGGBB or RRGGBBAA value, optionally prefixed with "#"
//     or "0x"
//   - a CSS/X11 colour name such as "black" or "SteelBlue" (case-insensitive)
//   - "random"
//
// followed by an optional "@alpha" suffix, where alpha is either a float in
// [0, 1] or a hexadecimal byte written as 0xAA:
//
//	c, err := fillcolor.Parse("black@0")
//	vals := fillcolor.Values(c, frame.YUV420P) // [16 128 128]
//
// # YUV Conversion
//
// YUV targets use the limited-range BT.601 (CCIR) matrix in 10-bit fixed
// point. Values for components deeper than 8 bits are shifted left by
// depth-8.
package fillcolor
