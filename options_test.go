package zoompan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/zoompan/limits"
	"github.com/opd-ai/zoompan/scale"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "1", opts.Zoom)
	assert.Equal(t, "0.5", opts.X)
	assert.Equal(t, "0.5", opts.Y)
	assert.Equal(t, -1, opts.Width)
	assert.Equal(t, -1, opts.Height)
	assert.Equal(t, "black@0", opts.FillColor)
	assert.Equal(t, ModeSubpixel, opts.Mode)
	require.NoError(t, opts.Validate())
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, o Options)
	}{
		{
			name:  "named values",
			input: "zoom=1.5:x=0.25:y=0.75:ar=2:exact=true",
			check: func(t *testing.T, o Options) {
				assert.Equal(t, "1.5", o.Zoom)
				assert.Equal(t, "0.25", o.X)
				assert.Equal(t, "0.75", o.Y)
				assert.Equal(t, 2.0, o.AspectRatio)
				assert.True(t, o.Exact)
			},
		},
		{
			name:  "positional values",
			input: "2:0.1:0.9",
			check: func(t *testing.T, o Options) {
				assert.Equal(t, "2", o.Zoom)
				assert.Equal(t, "0.1", o.X)
				assert.Equal(t, "0.9", o.Y)
			},
		},
		{
			name:  "quoted ternary",
			input: "z='n>5?2:1':x=0.5",
			check: func(t *testing.T, o Options) {
				assert.Equal(t, "n>5?2:1", o.Zoom)
				assert.Equal(t, "0.5", o.X)
			},
		},
		{
			name:  "escaped colon",
			input: `zoom=n>5?2\:1`,
			check: func(t *testing.T, o Options) {
				assert.Equal(t, "n>5?2:1", o.Zoom)
			},
		},
		{
			name:  "aliases and enums",
			input: "w=320:h=240:c=red@0.5:interpolation=lanczos:mode=coarse:threads=3",
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 320, o.Width)
				assert.Equal(t, 240, o.Height)
				assert.Equal(t, "red@0.5", o.FillColor)
				assert.Equal(t, scale.Lanczos, o.Interpolation)
				assert.Equal(t, ModeCoarse, o.Mode)
				assert.Equal(t, 3, o.Threads)
			},
		},
		{
			name:  "empty keeps defaults",
			input: "",
			check: func(t *testing.T, o Options) {
				assert.Equal(t, DefaultOptions(), o)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := ParseOptions(tt.input)
			require.NoError(t, err)
			tt.check(t, o)
		})
	}
}

func TestParseOptions_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "speed=2"},
		{"too many positional", "1:0.5:0.5:0.5"},
		{"bad float", "ar=wide"},
		{"bad int", "width=big"},
		{"bad bool", "exact=maybe"},
		{"bad mode", "mode=fast"},
		{"bad interpolation", "interpolation=magic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(tt.input)
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Options)
		target error
	}{
		{"negative ar", func(o *Options) { o.AspectRatio = -1 }, limits.ErrOutOfRange},
		{"ar above limit", func(o *Options) { o.AspectRatio = 101 }, limits.ErrOutOfRange},
		{"width below -1", func(o *Options) { o.Width = -2 }, ErrInvalidOption},
		{"height above limit", func(o *Options) { o.Height = limits.MaxDimension + 1 }, ErrInvalidOption},
		{"threads", func(o *Options) { o.Threads = -1 }, limits.ErrOutOfRange},
		{"mode", func(o *Options) { o.Mode = Mode(7) }, ErrInvalidOption},
		{"interpolation", func(o *Options) { o.Interpolation = scale.Interpolation(-1) }, ErrInvalidOption},
		{"fill colour", func(o *Options) { o.FillColor = "notacolour" }, ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(&o)
			err := o.Validate()
			assert.ErrorIs(t, err, ErrInvalidOption)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	o := DefaultOptions()
	o.Width, o.Height = limits.MaxDimension, 0
	o.AspectRatio = limits.MaxAspectRatio
	assert.NoError(t, o.Validate())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "subpixel", ModeSubpixel.String())
	assert.Equal(t, "coarse", ModeCoarse.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())

	m, err := ParseMode(" Coarse ")
	require.NoError(t, err)
	assert.Equal(t, ModeCoarse, m)
}
