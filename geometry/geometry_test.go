package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegimeFor(t *testing.T) {
	assert.Equal(t, Shrink, RegimeFor(0))
	assert.Equal(t, Shrink, RegimeFor(0.999))
	assert.Equal(t, Magnify, RegimeFor(1))
	assert.Equal(t, Magnify, RegimeFor(3.5))
	assert.Equal(t, "shrink", Shrink.String())
	assert.Equal(t, "magnify", Magnify.String())
	assert.Equal(t, "unknown", Regime(7).String())
}

func TestMapOutputToInput_Identity(t *testing.T) {
	for px := 0.0; px < 100; px += 7 {
		assert.Equal(t, px, MapOutputToInput(px, 100, 1, 100, 0.5))
	}
}

func TestMapOutputToInput_Regimes(t *testing.T) {
	tests := []struct {
		name   string
		pxOut  float64
		dimOut float64
		zoom   float64
		dimIn  float64
		pan    float64
		want   float64
	}{
		{"magnify centre", 50, 100, 2, 100, 0.5, 50},
		{"magnify left edge", 0, 100, 2, 100, 0.5, 25},
		{"magnify pan left", 0, 100, 2, 100, 0.25, 0},
		{"shrink centre", 50, 100, 0.5, 100, 0.5, 50},
		{"shrink left edge", 0, 100, 0.5, 100, 0.5, -50},
		{"shrink pan offset", 25, 100, 0.5, 100, 0.25, 50},
		{"different sizes", 0, 50, 1, 100, 0.5, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapOutputToInput(tt.pxOut, tt.dimOut, tt.zoom, tt.dimIn, tt.pan)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMapInputToOutput_InvertsForward(t *testing.T) {
	for _, zoom := range []float64{0.3, 0.5, 0.99, 1, 1.5, 4} {
		for _, pan := range []float64{0, 0.2, 0.5, 0.8, 1} {
			for px := 0.0; px <= 64; px += 8 {
				in := MapOutputToInput(px, 64, zoom, 100, pan)
				back := MapInputToOutput(in, 64, zoom, 100, pan)
				assert.InDelta(t, px, back, 1e-9, "zoom=%v pan=%v px=%v", zoom, pan, px)
			}
		}
	}
}

func TestFindPan_InvertsForward(t *testing.T) {
	for _, zoom := range []float64{0.25, 0.75, 1, 2, 8} {
		for _, pan := range []float64{-0.5, 0, 0.3, 0.5, 1, 1.7} {
			pxIn := MapOutputToInput(13, 80, zoom, 120, pan)
			got := FindPan(pxIn, 13, 80, zoom, 120)
			assert.InDelta(t, pan, got, 1e-9, "zoom=%v pan=%v", zoom, pan)
		}
	}
}

func TestMap2D(t *testing.T) {
	got := Map2D(Point{X: 0, Y: 0}, Size{W: 50, H: 50}, 1, Size{W: 100, H: 100}, Center)
	assert.Equal(t, Point{X: 25, Y: 25}, got)
}

func TestPanBounds(t *testing.T) {
	tests := []struct {
		name   string
		dimOut float64
		zoom   float64
		dimIn  float64
		lo, hi float64
	}{
		{"identity pins centre", 100, 1, 100, 0.5, 0.5},
		{"magnify x2", 100, 2, 100, 0.25, 0.75},
		{"shrink fits", 100, 0.5, 100, 0.25, 0.75},
		{"shrink overflows", 100, 0.8, 200, 0.2, 0.8},
		{"zero zoom is unrestricted", 100, 0, 100, 0, 1},
		{"window wider than source", 200, 1.5, 100, 1.0 / 3, 2.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := PanBounds(tt.dimOut, tt.zoom, tt.dimIn)
			assert.InDelta(t, tt.lo, lo, 1e-9)
			assert.InDelta(t, tt.hi, hi, 1e-9)
			assert.LessOrEqual(t, lo, hi)
		})
	}
}

func TestClampPan_Idempotent(t *testing.T) {
	pans := []float64{-3, -0.1, 0, 0.1, 0.25, 0.5, 0.77, 1, 1.2, 9, math.NaN()}
	zooms := []float64{0, 0.1, 0.4, 0.5, 0.8, 1, 1.3, 2, 10}
	dims := [][2]float64{{100, 100}, {50, 100}, {100, 50}, {1920, 1080}, {2, 2}}

	for _, d := range dims {
		for _, zoom := range zooms {
			for _, pan := range pans {
				once := ClampPan(pan, d[0], zoom, d[1])
				twice := ClampPan(once, d[0], zoom, d[1])
				require.False(t, math.IsNaN(once), "dims=%v zoom=%v pan=%v", d, zoom, pan)
				assert.Equal(t, once, twice, "dims=%v zoom=%v pan=%v", d, zoom, pan)
			}
		}
	}
}

func TestClampPan_MagnifyWindowStaysInside(t *testing.T) {
	const dimOut, dimIn = 100.0, 100.0
	for _, zoom := range []float64{1, 1.5, 2, 5} {
		for _, pan := range []float64{0, 0.1, 0.5, 0.9, 1} {
			p := ClampPan(pan, dimOut, zoom, dimIn)
			left := MapOutputToInput(0, dimOut, zoom, dimIn, p)
			right := MapOutputToInput(dimOut, dimOut, zoom, dimIn, p)
			assert.GreaterOrEqual(t, left, -1e-9)
			assert.LessOrEqual(t, right, dimIn+1e-9)
		}
	}
}

func TestClampPan_ShrinkContentStaysOnCanvas(t *testing.T) {
	const dimOut, dimIn, zoom = 100.0, 100.0, 0.5
	for _, pan := range []float64{0, 0.1, 0.5, 0.9, 1} {
		p := ClampPan(pan, dimOut, zoom, dimIn)
		left := MapInputToOutput(0, dimOut, zoom, dimIn, p)
		right := MapInputToOutput(dimIn, dimOut, zoom, dimIn, p)
		assert.GreaterOrEqual(t, left, -1e-9)
		assert.LessOrEqual(t, right, dimOut+1e-9)
	}
	assert.InDelta(t, 0.25, ClampPan(0, dimOut, zoom, dimIn), 1e-9)
	assert.InDelta(t, 0.75, ClampPan(1, dimOut, zoom, dimIn), 1e-9)
}

func TestClampPan_ShrinkOverflowKeepsCanvasCovered(t *testing.T) {
	const dimOut, dimIn, zoom = 100.0, 400.0, 0.5
	require.False(t, Fits(dimOut, zoom, dimIn))

	for _, pan := range []float64{0, 0.3, 0.5, 0.7, 1} {
		p := ClampPan(pan, dimOut, zoom, dimIn)
		left := MapOutputToInput(0, dimOut, zoom, dimIn, p)
		right := MapOutputToInput(dimOut, dimOut, zoom, dimIn, p)
		assert.GreaterOrEqual(t, left, -1e-9, "pan=%v", pan)
		assert.LessOrEqual(t, right, dimIn+1e-9, "pan=%v", pan)
	}
}

func TestClampPan_NaNResolvesToMiddle(t *testing.T) {
	assert.InDelta(t, 0.5, ClampPan(math.NaN(), 100, 2, 100), 1e-12)
	assert.InDelta(t, 0.5, ClampPan(math.NaN(), 100, 0.5, 100), 1e-12)
}

func TestClampPan2D_AxesIndependent(t *testing.T) {
	// 400x100 source on a 100x100 canvas at zoom 0.5: width overflows
	// (200 > 100) while height fits (50 <= 100).
	out := Size{W: 100, H: 100}
	in := Size{W: 400, H: 100}

	got := ClampPan2D(Point{X: 0, Y: 0}, out, 0.5, in)

	wantX := ClampPan(0, out.W, 0.5, in.W)
	wantY := ClampPan(0, out.H, 0.5, in.H)
	assert.Equal(t, wantX, got.X)
	assert.Equal(t, wantY, got.Y)
	assert.InDelta(t, 0.25, got.Y, 1e-9)
	assert.InDelta(t, 0, wantX, 1e-9)
}
