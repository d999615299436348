package resample

import (
	"encoding/binary"
	"fmt"

	"github.com/opd-ai/zoompan/frame"
	"github.com/opd-ai/zoompan/geometry"
)

// Size is a plane size in samples.
type Size struct {
	W, H int
}

// Plane is one component view of a source and a destination plane.
type Plane struct {
	Src       []byte // source bytes from the first sample of the component
	SrcStride int
	SrcSize   Size
	Dst       []byte // destination bytes from the first sample of the component
	DstStride int
	DstSize   Size
	Step      int    // bytes between horizontally adjacent samples, both sides
	Depth     int    // bits per sample; above 8 means 16-bit little-endian
	Fill      uint16 // value written where the source is not covered
}

// ComponentPlane builds the Plane for component c of src and dst, which
// must share a pixel format.
func ComponentPlane(src, dst *frame.Frame, c int, fill uint16) (Plane, error) {
	if src.Format != dst.Format {
		return Plane{}, fmt.Errorf("%w: %s vs %s", frame.ErrFormatMismatch, src.Format, dst.Format)
	}
	sw, sh := src.Format.ComponentSize(c, src.Width, src.Height)
	dw, dh := dst.Format.ComponentSize(c, dst.Width, dst.Height)
	sdata, sstride, step := src.ComponentData(c)
	ddata, dstride, _ := dst.ComponentData(c)
	return Plane{
		Src:       sdata,
		SrcStride: sstride,
		SrcSize:   Size{sw, sh},
		Dst:       ddata,
		DstStride: dstride,
		DstSize:   Size{dw, dh},
		Step:      step,
		Depth:     src.Format.Components[c].Depth,
		Fill:      fill,
	}, nil
}

func (p Plane) sampleBytes() int {
	if p.Depth > 8 {
		return 2
	}
	return 1
}

// Validate checks that both buffers hold their declared sizes.
func (p Plane) Validate() error {
	if p.SrcSize.W <= 0 || p.SrcSize.H <= 0 || p.DstSize.W <= 0 || p.DstSize.H <= 0 {
		return fmt.Errorf("%w: src %dx%d dst %dx%d", ErrInvalidPlane, p.SrcSize.W, p.SrcSize.H, p.DstSize.W, p.DstSize.H)
	}
	if p.Step < p.sampleBytes() {
		return fmt.Errorf("%w: step %d", ErrInvalidPlane, p.Step)
	}
	last := (p.SrcSize.W-1)*p.Step + p.sampleBytes()
	if need := (p.SrcSize.H-1)*p.SrcStride + last; len(p.Src) < need {
		return fmt.Errorf("%w: source has %d bytes, need %d", ErrInvalidPlane, len(p.Src), need)
	}
	last = (p.DstSize.W-1)*p.Step + p.sampleBytes()
	if need := (p.DstSize.H-1)*p.DstStride + last; len(p.Dst) < need {
		return fmt.Errorf("%w: destination has %d bytes, need %d", ErrInvalidPlane, len(p.Dst), need)
	}
	return nil
}

// ResamplePlane fills every destination sample of p. pan must already be
// clamped.
func ResamplePlane(p Plane, zoom float64, pan geometry.Point) {
	ResampleRows(p, zoom, pan, 0, p.DstSize.H)
}

// ResampleRows fills destination rows [y0, y1) of p. Each destination
// sample is mapped into the source with the coordinate mapper and sampled
// bilinearly; positions outside the source receive p.Fill.
func ResampleRows(p Plane, zoom float64, pan geometry.Point, y0, y1 int) {
	dimOutX, dimInX := float64(p.DstSize.W), float64(p.SrcSize.W)
	dimOutY, dimInY := float64(p.DstSize.H), float64(p.SrcSize.H)

	cols := make([]float64, p.DstSize.W)
	for x := range cols {
		cols[x] = geometry.MapOutputToInput(float64(x), dimOutX, zoom, dimInX, pan.X)
	}

	wide := p.Depth > 8
	for y := y0; y < y1; y++ {
		sy := geometry.MapOutputToInput(float64(y), dimOutY, zoom, dimInY, pan.Y)
		row := p.Dst[y*p.DstStride:]
		for x, sx := range cols {
			if wide {
				v := Sample16(p.Src, p.SrcStride, p.Step, sx, sy, p.SrcSize.W, p.SrcSize.H, p.Fill)
				binary.LittleEndian.PutUint16(row[x*p.Step:], v)
				continue
			}
			row[x*p.Step] = Sample8(p.Src, p.SrcStride, p.Step, sx, sy, p.SrcSize.W, p.SrcSize.H, uint8(p.Fill))
		}
	}
}
