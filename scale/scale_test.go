package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"

	"github.com/opd-ai/zoompan/frame"
	"github.com/opd-ai/zoompan/geometry"
)

var center = geometry.Point{X: 0.5, Y: 0.5}

func solidFrame(t *testing.T, format *frame.PixelFormat, w, h int, values []uint16) *frame.Frame {
	t.Helper()
	f, err := frame.New(format, w, h)
	require.NoError(t, err)
	require.NoError(t, frame.Fill(f, values))
	return f
}

func TestParseInterpolation(t *testing.T) {
	for i := FastBilinear; i <= Spline; i++ {
		got, err := ParseInterpolation(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}

	got, err := ParseInterpolation(" Neighbor ")
	require.NoError(t, err)
	assert.Equal(t, Point, got)

	_, err = ParseInterpolation("cubic-ish")
	assert.ErrorIs(t, err, ErrUnknownInterpolation)
	assert.Equal(t, "Interpolation(99)", Interpolation(99).String())
}

func TestInterpolator(t *testing.T) {
	assert.Equal(t, draw.ApproxBiLinear, FastBilinear.Interpolator(false))
	assert.Equal(t, draw.NearestNeighbor, Point.Interpolator(true))
	assert.Same(t, draw.CatmullRom, Bicublin.Interpolator(false))
	assert.Same(t, draw.BiLinear, Bicublin.Interpolator(true))
	assert.Same(t, lanczosKernel, Lanczos.Interpolator(false))
}

func TestKernels(t *testing.T) {
	assert.InDelta(t, 1, lanczosKernel.At(0), 1e-12)
	assert.InDelta(t, 0, lanczosKernel.At(1), 1e-12)
	assert.InDelta(t, 1, sincKernel.At(0), 1e-12)
	assert.InDelta(t, 4.0/6, splineKernel.At(0), 1e-12)
	assert.InDelta(t, 0, splineKernel.At(2), 1e-12)
	assert.InDelta(t, 1, gaussKernel.At(0), 1e-12)
	assert.InDelta(t, 1, areaKernel.At(0.25), 1e-12)
	// Catmull-Rom is the b=0, c=0.5 member of the cubic family.
	assert.InDelta(t, 1, cubic(0, 0.5, 0), 1e-12)
	assert.InDelta(t, 0, cubic(0, 0.5, 1), 1e-12)
}

func TestWindows(t *testing.T) {
	in := geometry.Size{W: 100, H: 100}
	out := geometry.Size{W: 100, H: 100}

	tests := []struct {
		name   string
		format *frame.PixelFormat
		zoom   float64
		pan    geometry.Point
		sr, dr frame.Rect
	}{
		{"identity", frame.Gray, 1, center, frame.Rect{W: 100, H: 100}, frame.Rect{W: 100, H: 100}},
		{"magnify centre", frame.Gray, 2, center, frame.Rect{X: 25, Y: 25, W: 50, H: 50}, frame.Rect{W: 100, H: 100}},
		{"shrink centre", frame.Gray, 0.5, center, frame.Rect{W: 100, H: 100}, frame.Rect{X: 25, Y: 25, W: 50, H: 50}},
		{"magnify top left", frame.Gray, 2, geometry.Point{X: 0.25, Y: 0.25}, frame.Rect{W: 50, H: 50}, frame.Rect{W: 100, H: 100}},
		{"shrink chroma aligned", frame.YUV420P, 0.3, center, frame.Rect{W: 100, H: 100}, frame.Rect{X: 36, Y: 36, W: 30, H: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr, dr, ok := Windows(tt.format, in, out, tt.zoom, tt.pan)
			require.True(t, ok)
			assert.Equal(t, tt.sr, sr)
			assert.Equal(t, tt.dr, dr)
		})
	}
}

func TestWindows_NothingVisible(t *testing.T) {
	in := geometry.Size{W: 10, H: 10}
	_, _, ok := Windows(frame.Gray, in, in, 0, center)
	assert.False(t, ok)

	// Pan far off the source.
	_, _, ok = Windows(frame.Gray, in, in, 2, geometry.Point{X: 5, Y: 0.5})
	assert.False(t, ok)
}

func TestCoarse_IdentityCopies(t *testing.T) {
	src, err := frame.New(frame.YUV420P, 6, 4)
	require.NoError(t, err)
	for c := range src.Format.Components {
		w, h := src.Format.ComponentSize(c, 6, 4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				src.Set(c, x, y, uint16(10*c+x+y*w))
			}
		}
	}
	dst, err := frame.New(frame.YUV420P, 6, 4)
	require.NoError(t, err)

	require.NoError(t, Coarse(DrawScaler{Interpolation: Bicubic}, dst, src, 1, center))
	for c := range src.Format.Components {
		w, h := src.Format.ComponentSize(c, 6, 4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				assert.Equal(t, src.At(c, x, y), dst.At(c, x, y))
			}
		}
	}
}

func TestCoarse_ShrinkKeepsFillOutsideWindow(t *testing.T) {
	src := solidFrame(t, frame.YUV420P, 16, 16, []uint16{200, 60, 70})
	dst := solidFrame(t, frame.YUV420P, 16, 16, []uint16{16, 128, 128})

	require.NoError(t, Coarse(DrawScaler{Interpolation: Point}, dst, src, 0.5, center))

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			inside := x >= 4 && x < 12 && y >= 4 && y < 12
			want := uint16(16)
			if inside {
				want = 200
			}
			assert.Equal(t, want, dst.At(0, x, y), "luma %d,%d", x, y)
		}
	}
	assert.Equal(t, uint16(60), dst.At(1, 2, 2))
	assert.Equal(t, uint16(70), dst.At(2, 5, 5))
	assert.Equal(t, uint16(128), dst.At(1, 1, 1))
	assert.Equal(t, uint16(128), dst.At(2, 6, 6))
}

func TestCoarse_SixteenBit(t *testing.T) {
	src := solidFrame(t, frame.Gray16LE, 8, 8, []uint16{1000})
	dst := solidFrame(t, frame.Gray16LE, 8, 8, []uint16{7})

	require.NoError(t, Coarse(DrawScaler{Interpolation: Point}, dst, src, 2, center))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, uint16(1000), dst.At(0, x, y))
		}
	}

	dst = solidFrame(t, frame.Gray16LE, 8, 8, []uint16{7})
	require.NoError(t, Coarse(DrawScaler{Interpolation: Bilinear}, dst, src, 0.5, center))
	assert.InDelta(t, 1000, float64(dst.At(0, 3, 3)), 1)
	assert.Equal(t, uint16(7), dst.At(0, 0, 0))
}

func TestCoarse_ZeroZoomLeavesFill(t *testing.T) {
	src := solidFrame(t, frame.Gray, 4, 4, []uint16{200})
	dst := solidFrame(t, frame.Gray, 4, 4, []uint16{3})
	require.NoError(t, Coarse(DrawScaler{}, dst, src, 0, center))
	assert.Equal(t, uint16(3), dst.At(0, 2, 2))
}

func TestDrawScaler_FormatMismatch(t *testing.T) {
	src := solidFrame(t, frame.Gray, 4, 4, []uint16{1})
	dst := solidFrame(t, frame.RGB24, 4, 4, []uint16{1, 1, 1})
	err := DrawScaler{}.Scale(dst, frame.Rect{W: 2, H: 2}, src, frame.Rect{W: 4, H: 4})
	assert.ErrorIs(t, err, frame.ErrFormatMismatch)
}
