package fillcolor

import "github.com/opd-ai/zoompan/frame"

const (
	scaleBits = 10
	oneHalf   = 1 << (scaleBits - 1)
)

func fix(x float64) int {
	return int(x*(1<<scaleBits) + 0.5)
}

// Limited-range BT.601 coefficients.
var (
	yR, yG, yB = fix(0.29900 * 219 / 255), fix(0.58700 * 219 / 255), fix(0.11400 * 219 / 255)
	uR, uG, uB = fix(0.16874 * 224 / 255), fix(0.33126 * 224 / 255), fix(0.50000 * 224 / 255)
	vR, vG, vB = fix(0.50000 * 224 / 255), fix(0.41869 * 224 / 255), fix(0.08131 * 224 / 255)
)

// RGBToY returns the limited-range luma of an 8-bit RGB triple.
func RGBToY(r, g, b uint8) uint8 {
	return uint8((yR*int(r) + yG*int(g) + yB*int(b) + oneHalf + (16 << scaleBits)) >> scaleBits)
}

// RGBToU returns the limited-range Cb of an 8-bit RGB triple.
func RGBToU(r, g, b uint8) uint8 {
	return uint8(((-uR*int(r) - uG*int(g) + uB*int(b) + oneHalf - 1) >> scaleBits) + 128)
}

// RGBToV returns the limited-range Cr of an 8-bit RGB triple.
func RGBToV(r, g, b uint8) uint8 {
	return uint8(((vR*int(r) - vG*int(g) - vB*int(b) + oneHalf - 1) >> scaleBits) + 128)
}

// Values returns one fill value per component of format, in component
// order. RGB formats take the colour as is; YUV and gray formats get the
// CCIR conversion. Alpha components take c.A.
func Values(c Color, format *frame.PixelFormat) []uint16 {
	var base [4]uint8
	if format.RGB {
		base = [4]uint8{c.R, c.G, c.B, c.A}
	} else {
		base = [4]uint8{RGBToY(c.R, c.G, c.B), RGBToU(c.R, c.G, c.B), RGBToV(c.R, c.G, c.B), c.A}
	}

	vals := make([]uint16, len(format.Components))
	for i, comp := range format.Components {
		vals[i] = uint16(base[i])
		if comp.Depth > 8 {
			vals[i] <<= comp.Depth - 8
		}
	}
	return vals
}
