package scale

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/opd-ai/zoompan/frame"
	"github.com/opd-ai/zoompan/geometry"
)

// Scaler scales the src rectangle of every component of src into the dst
// rectangle of dst. Rectangles are in full-resolution pixels.
type Scaler interface {
	Scale(dst *frame.Frame, dr frame.Rect, src *frame.Frame, sr frame.Rect) error
}

// DrawScaler implements Scaler with golang.org/x/image/draw.
type DrawScaler struct {
	Interpolation Interpolation
}

// Scale implements Scaler. Equal-sized rectangles are copied.
func (s DrawScaler) Scale(dst *frame.Frame, dr frame.Rect, src *frame.Frame, sr frame.Rect) error {
	if dst.Format != src.Format {
		return fmt.Errorf("%w: %s vs %s", frame.ErrFormatMismatch, dst.Format, src.Format)
	}
	if dr.Empty() || sr.Empty() {
		return nil
	}
	if dr.W == sr.W && dr.H == sr.H {
		return frame.CopyRect(dst, src, dr.X, dr.Y, sr.X, sr.Y, sr.W, sr.H)
	}

	format := src.Format
	for c, comp := range format.Components {
		sx0, sy0, sx1, sy1 := src.ComponentRect(c, sr)
		dx0, dy0, dx1, dy1 := dst.ComponentRect(c, dr)
		if sx1 <= sx0 || sy1 <= sy0 || dx1 <= dx0 || dy1 <= dy0 {
			continue
		}
		interp := s.Interpolation.Interpolator(format.IsChroma(comp.Plane))
		srcImg := extract(src, c, sx0, sy0, sx1, sy1)
		dstImg := newComponentImage(comp, dx1-dx0, dy1-dy0)
		interp.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
		store(dst, c, dx0, dy0, dstImg)
	}
	return nil
}

func newComponentImage(comp frame.Component, w, h int) draw.Image {
	r := image.Rect(0, 0, w, h)
	if comp.Bytes() == 2 {
		return image.NewGray16(r)
	}
	return image.NewGray(r)
}

// extract copies one component window into a grayscale image.
func extract(f *frame.Frame, c, x0, y0, x1, y1 int) image.Image {
	img := newComponentImage(f.Format.Components[c], x1-x0, y1-y0)
	switch m := img.(type) {
	case *image.Gray:
		for y := y0; y < y1; y++ {
			row := m.Pix[(y-y0)*m.Stride:]
			for x := x0; x < x1; x++ {
				row[x-x0] = uint8(f.At(c, x, y))
			}
		}
	case *image.Gray16:
		for y := y0; y < y1; y++ {
			row := m.Pix[(y-y0)*m.Stride:]
			for x := x0; x < x1; x++ {
				v := f.At(c, x, y)
				row[2*(x-x0)] = uint8(v >> 8)
				row[2*(x-x0)+1] = uint8(v)
			}
		}
	}
	return img
}

// store writes img into component c of f at (x0, y0).
func store(f *frame.Frame, c, x0, y0 int, img draw.Image) {
	switch m := img.(type) {
	case *image.Gray:
		for y := 0; y < m.Rect.Dy(); y++ {
			row := m.Pix[y*m.Stride:]
			for x := 0; x < m.Rect.Dx(); x++ {
				f.Set(c, x0+x, y0+y, uint16(row[x]))
			}
		}
	case *image.Gray16:
		for y := 0; y < m.Rect.Dy(); y++ {
			row := m.Pix[y*m.Stride:]
			for x := 0; x < m.Rect.Dx(); x++ {
				f.Set(c, x0+x, y0+y, uint16(row[2*x])<<8|uint16(row[2*x+1]))
			}
		}
	}
}

// Windows returns the source rectangle visible on the canvas and the
// canvas rectangle it lands on, for the given zoom and (clamped) pan. Both
// are snapped to the chroma grid of format. ok is false when nothing of the
// source is visible.
func Windows(format *frame.PixelFormat, in, out geometry.Size, zoom float64, pan geometry.Point) (sr, dr frame.Rect, ok bool) {
	if !(zoom > 0) {
		return frame.Rect{}, frame.Rect{}, false
	}
	alignX, alignY := 1<<format.Log2ChromaW, 1<<format.Log2ChromaH
	sx0, sx1, dx0, dx1, okX := window(in.W, out.W, zoom, pan.X, alignX)
	sy0, sy1, dy0, dy1, okY := window(in.H, out.H, zoom, pan.Y, alignY)
	if !okX || !okY {
		return frame.Rect{}, frame.Rect{}, false
	}
	sr = frame.Rect{X: sx0, Y: sy0, W: sx1 - sx0, H: sy1 - sy0}
	dr = frame.Rect{X: dx0, Y: dy0, W: dx1 - dx0, H: dy1 - dy0}
	return sr, dr, true
}

// window solves one axis of Windows.
func window(dimIn, dimOut, zoom, pan float64, align int) (s0, s1, d0, d1 int, ok bool) {
	in0 := geometry.MapOutputToInput(0, dimOut, zoom, dimIn, pan)
	in1 := geometry.MapOutputToInput(dimOut, dimOut, zoom, dimIn, pan)
	lo, hi := math.Max(in0, 0), math.Min(in1, dimIn)
	if !(hi > lo) {
		return 0, 0, 0, 0, false
	}
	out0 := geometry.MapInputToOutput(lo, dimOut, zoom, dimIn, pan)
	out1 := geometry.MapInputToOutput(hi, dimOut, zoom, dimIn, pan)

	s0, s1 = snap(lo, align, int(dimIn)), snap(hi, align, int(dimIn))
	d0, d1 = snap(out0, align, int(dimOut)), snap(out1, align, int(dimOut))
	if s1 <= s0 || d1 <= d0 {
		return 0, 0, 0, 0, false
	}
	return s0, s1, d0, d1, true
}

// snap rounds v to the nearest multiple of align inside [0, limit]. The
// limit itself is always a valid end even when it is not aligned.
func snap(v float64, align, limit int) int {
	n := int(math.Round(v/float64(align))) * align
	return max(0, min(n, limit))
}

// Coarse renders src onto dst (already filled) through s: the visible
// source window is scaled into its canvas window and everything else keeps
// the fill. zoom <= 0 leaves dst untouched.
func Coarse(s Scaler, dst, src *frame.Frame, zoom float64, pan geometry.Point) error {
	in := geometry.Size{W: float64(src.Width), H: float64(src.Height)}
	out := geometry.Size{W: float64(dst.Width), H: float64(dst.Height)}
	sr, dr, ok := Windows(src.Format, in, out, zoom, pan)
	if !ok {
		return nil
	}
	return s.Scale(dst, dr, src, sr)
}
