package frame

import "fmt"

// Rect is an integer rectangle in full-resolution (luma) pixels.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ComponentRect converts r into the sample grid of component c, clipped to
// the component size. Chroma edges round outwards.
func (f *Frame) ComponentRect(c int, r Rect) (x0, y0, x1, y1 int) {
	plane := f.Format.Components[c].Plane
	pw, ph := f.Format.PlaneSize(plane, f.Width, f.Height)
	x0, y0, x1, y1 = r.X, r.Y, r.X+r.W, r.Y+r.H
	if f.Format.IsChroma(plane) {
		x0 >>= f.Format.Log2ChromaW
		y0 >>= f.Format.Log2ChromaH
		x1 = CeilRShift(x1, f.Format.Log2ChromaW)
		y1 = CeilRShift(y1, f.Format.Log2ChromaH)
	}
	return max(x0, 0), max(y0, 0), min(x1, pw), min(y1, ph)
}

// FillRect paints r with one value per component.
func FillRect(f *Frame, values []uint16, r Rect) error {
	if len(values) < len(f.Format.Components) {
		return fmt.Errorf("%w: %d fill values for %d components", ErrInvalidGeometry, len(values), len(f.Format.Components))
	}
	for c := range f.Format.Components {
		x0, y0, x1, y1 := f.ComponentRect(c, r)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				f.Set(c, x, y, values[c])
			}
		}
	}
	return nil
}

// Fill paints the whole frame.
func Fill(f *Frame, values []uint16) error {
	return FillRect(f, values, Rect{W: f.Width, H: f.Height})
}

// CopyRect copies a w x h block from src at (srcX, srcY) to dst at
// (dstX, dstY). Both frames must share a pixel format. The block is clipped
// to both frames.
func CopyRect(dst, src *Frame, dstX, dstY, srcX, srcY, w, h int) error {
	if dst.Format != src.Format {
		return fmt.Errorf("%w: %s vs %s", ErrFormatMismatch, dst.Format, src.Format)
	}
	// Clip in luma space first so every component sees the same block.
	if srcX < 0 {
		dstX -= srcX
		w += srcX
		srcX = 0
	}
	if srcY < 0 {
		dstY -= srcY
		h += srcY
		srcY = 0
	}
	if dstX < 0 {
		srcX -= dstX
		w += dstX
		dstX = 0
	}
	if dstY < 0 {
		srcY -= dstY
		h += dstY
		dstY = 0
	}
	w = min(w, src.Width-srcX, dst.Width-dstX)
	h = min(h, src.Height-srcY, dst.Height-dstY)
	if w <= 0 || h <= 0 {
		return nil
	}

	for c := range dst.Format.Components {
		dx0, dy0, dx1, dy1 := dst.ComponentRect(c, Rect{X: dstX, Y: dstY, W: w, H: h})
		sx0, sy0, sx1, sy1 := src.ComponentRect(c, Rect{X: srcX, Y: srcY, W: w, H: h})
		cw := min(dx1-dx0, sx1-sx0)
		ch := min(dy1-dy0, sy1-sy0)
		for y := 0; y < ch; y++ {
			for x := 0; x < cw; x++ {
				dst.Set(c, dx0+x, dy0+y, src.At(c, sx0+x, sy0+y))
			}
		}
	}
	return nil
}
