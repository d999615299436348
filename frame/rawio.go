package frame

import (
	"errors"
	"fmt"
	"io"
)

// RawSize returns the byte size of one tightly packed frame of the given
// format and size, as produced by WriteRaw.
func RawSize(format *PixelFormat, width, height int) int {
	total := 0
	for i := 0; i < format.PlaneCount(); i++ {
		_, ph := format.PlaneSize(i, width, height)
		total += format.LineSize(i, width) * ph
	}
	return total
}

// ReadRaw fills f with one tightly packed frame read from r. It returns
// io.EOF when r is exhausted before the first byte and io.ErrUnexpectedEOF
// for a truncated frame.
func ReadRaw(r io.Reader, f *Frame) error {
	first := true
	for i := 0; i < f.Format.PlaneCount(); i++ {
		line := f.Format.LineSize(i, f.Width)
		_, ph := f.Format.PlaneSize(i, f.Width, f.Height)
		p := f.Planes[i]
		for y := 0; y < ph; y++ {
			row := p.Data[y*p.Stride : y*p.Stride+line]
			if _, err := io.ReadFull(r, row); err != nil {
				if first && errors.Is(err, io.EOF) {
					return io.EOF
				}
				if errors.Is(err, io.EOF) {
					return io.ErrUnexpectedEOF
				}
				return fmt.Errorf("reading plane %d row %d: %w", i, y, err)
			}
			first = false
		}
	}
	return nil
}

// WriteRaw writes f to w without row padding.
func WriteRaw(w io.Writer, f *Frame) error {
	for i := 0; i < f.Format.PlaneCount(); i++ {
		line := f.Format.LineSize(i, f.Width)
		_, ph := f.Format.PlaneSize(i, f.Width, f.Height)
		p := f.Planes[i]
		for y := 0; y < ph; y++ {
			if _, err := w.Write(p.Data[y*p.Stride : y*p.Stride+line]); err != nil {
				return fmt.Errorf("writing plane %d row %d: %w", i, y, err)
			}
		}
	}
	return nil
}
