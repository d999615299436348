package frame

import (
	"encoding/binary"
	"fmt"
	"math"
)

// NoPTS marks a frame without a presentation timestamp.
const NoPTS int64 = math.MinInt64

// Rational is a fraction used for time bases.
type Rational struct {
	Num, Den int
}

// Float returns the value of r, or NaN for a zero denominator.
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return math.NaN()
	}
	return float64(r.Num) / float64(r.Den)
}

// Plane is one raster sub-buffer of a frame.
type Plane struct {
	Data   []byte
	Stride int // bytes between the starts of consecutive rows
}

// Geometry is what a consumer needs to know about a stream before the first
// frame is processed.
type Geometry struct {
	Format   *PixelFormat
	Width    int
	Height   int
	TimeBase Rational
}

// Validate checks that the geometry is usable.
func (g Geometry) Validate() error {
	if g.Format == nil {
		return fmt.Errorf("%w: missing pixel format", ErrInvalidGeometry)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidGeometry, g.Width, g.Height)
	}
	return nil
}

// Frame is a raster image organised in 1-4 planes.
//
// Input frames are read-only to the engine. Output frames are owned by the
// caller that receives them.
type Frame struct {
	Format   *PixelFormat
	Width    int
	Height   int
	Planes   []Plane
	PTS      int64
	TimeBase Rational
}

// Geometry returns the stream geometry of f.
func (f *Frame) Geometry() Geometry {
	return Geometry{Format: f.Format, Width: f.Width, Height: f.Height, TimeBase: f.TimeBase}
}

// Time returns the presentation time of f in seconds, or NaN when the
// timestamp or the time base is unknown.
func (f *Frame) Time() float64 {
	if f.PTS == NoPTS {
		return math.NaN()
	}
	return float64(f.PTS) * f.TimeBase.Float()
}

// CopyProps copies timing properties from src.
func (f *Frame) CopyProps(src *Frame) {
	f.PTS = src.PTS
	f.TimeBase = src.TimeBase
}

// Validate checks that every plane is large enough for the frame size.
func (f *Frame) Validate() error {
	if err := f.Geometry().Validate(); err != nil {
		return err
	}
	n := f.Format.PlaneCount()
	if len(f.Planes) < n {
		return fmt.Errorf("%w: %s needs %d planes, got %d", ErrInvalidGeometry, f.Format.Name, n, len(f.Planes))
	}
	for i := 0; i < n; i++ {
		line := f.Format.LineSize(i, f.Width)
		_, ph := f.Format.PlaneSize(i, f.Width, f.Height)
		p := f.Planes[i]
		if p.Stride < line {
			return fmt.Errorf("%w: plane %d stride %d smaller than line size %d", ErrInvalidGeometry, i, p.Stride, line)
		}
		if need := p.Stride*(ph-1) + line; len(p.Data) < need {
			return fmt.Errorf("%w: plane %d has %d bytes, need %d", ErrInvalidGeometry, i, len(p.Data), need)
		}
	}
	return nil
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	clone := &Frame{
		Format:   f.Format,
		Width:    f.Width,
		Height:   f.Height,
		Planes:   make([]Plane, len(f.Planes)),
		PTS:      f.PTS,
		TimeBase: f.TimeBase,
	}
	for i, p := range f.Planes {
		clone.Planes[i] = Plane{Data: append([]byte(nil), p.Data...), Stride: p.Stride}
	}
	return clone
}

// ComponentData returns the bytes of component c starting at its first
// sample, together with the row stride and the sample step.
func (f *Frame) ComponentData(c int) (data []byte, stride, step int) {
	comp := f.Format.Components[c]
	p := f.Planes[comp.Plane]
	return p.Data[comp.Offset:], p.Stride, comp.Step
}

// At returns the sample of component c at (x, y) in that component's own
// coordinate space.
func (f *Frame) At(c, x, y int) uint16 {
	comp := f.Format.Components[c]
	p := f.Planes[comp.Plane]
	i := y*p.Stride + x*comp.Step + comp.Offset
	if comp.Bytes() == 2 {
		return binary.LittleEndian.Uint16(p.Data[i:])
	}
	return uint16(p.Data[i])
}

// Set stores v as the sample of component c at (x, y).
func (f *Frame) Set(c, x, y int, v uint16) {
	comp := f.Format.Components[c]
	p := f.Planes[comp.Plane]
	i := y*p.Stride + x*comp.Step + comp.Offset
	if comp.Bytes() == 2 {
		binary.LittleEndian.PutUint16(p.Data[i:], v)
		return
	}
	p.Data[i] = byte(v)
}
