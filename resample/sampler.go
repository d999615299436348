package resample

import "encoding/binary"

// inBounds reports whether (x, y) lies inside the sample grid. NaN
// coordinates compare false and are therefore out of bounds.
func inBounds(x, y float64, width, height int) bool {
	return x >= 0 && y >= 0 && x <= float64(width-1) && y <= float64(height-1)
}

// Sample8 returns the bilinear interpolation of an 8-bit plane at the
// fractional position (x, y), or oob when the position is outside the
// plane.
//
// Parameters:
//   - data: plane bytes starting at the first sample of the component
//   - stride: bytes between rows
//   - step: bytes between horizontally adjacent samples
//   - width, height: plane size in samples
//
// The right and bottom neighbours are clamped to the last column and row,
// so x == width-1 is valid. The result is truncated, not rounded.
func Sample8(data []byte, stride, step int, x, y float64, width, height int, oob uint8) uint8 {
	if !inBounds(x, y, width, height) {
		return oob
	}
	x0, y0 := int(x), int(y)
	fx, fy := x-float64(x0), y-float64(y0)
	x1, y1 := min(x0+1, width-1), min(y0+1, height-1)

	r0, r1 := y0*stride, y1*stride
	c0, c1 := x0*step, x1*step
	p00 := float64(data[r0+c0])
	p01 := float64(data[r0+c1])
	p10 := float64(data[r1+c0])
	p11 := float64(data[r1+c1])

	top := p00*(1-fx) + p01*fx
	bottom := p10*(1-fx) + p11*fx
	return uint8(top*(1-fy) + bottom*fy)
}

// Sample16 is Sample8 for planes holding 16-bit little-endian samples.
// step is in bytes.
func Sample16(data []byte, stride, step int, x, y float64, width, height int, oob uint16) uint16 {
	if !inBounds(x, y, width, height) {
		return oob
	}
	x0, y0 := int(x), int(y)
	fx, fy := x-float64(x0), y-float64(y0)
	x1, y1 := min(x0+1, width-1), min(y0+1, height-1)

	r0, r1 := y0*stride, y1*stride
	c0, c1 := x0*step, x1*step
	p00 := float64(binary.LittleEndian.Uint16(data[r0+c0:]))
	p01 := float64(binary.LittleEndian.Uint16(data[r0+c1:]))
	p10 := float64(binary.LittleEndian.Uint16(data[r1+c0:]))
	p11 := float64(binary.LittleEndian.Uint16(data[r1+c1:]))

	top := p00*(1-fx) + p01*fx
	bottom := p10*(1-fx) + p11*fx
	return uint16(top*(1-fy) + bottom*fy)
}
