package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/zoompan"
	"github.com/opd-ai/zoompan/frame"
)

func TestValidateCLIConfig(t *testing.T) {
	valid := func() *CLIConfig {
		return &CLIConfig{size: "64x48", pixFmt: "yuv420p", rate: "25", logLevel: "info"}
	}

	tests := []struct {
		name        string
		modify      func(c *CLIConfig)
		wantErr     bool
		errContains string
	}{
		{name: "valid config", modify: func(c *CLIConfig) {}},
		{name: "fractional rate", modify: func(c *CLIConfig) { c.rate = "30000/1001" }},
		{name: "missing size", modify: func(c *CLIConfig) { c.size = "" }, wantErr: true, errContains: "required"},
		{name: "bad size", modify: func(c *CLIConfig) { c.size = "64by48" }, wantErr: true, errContains: "invalid size"},
		{name: "zero size", modify: func(c *CLIConfig) { c.size = "0x48" }, wantErr: true, errContains: "invalid size"},
		{name: "unknown format", modify: func(c *CLIConfig) { c.pixFmt = "nv21" }, wantErr: true, errContains: "unknown pixel format"},
		{name: "bad rate", modify: func(c *CLIConfig) { c.rate = "25/0" }, wantErr: true, errContains: "invalid frame rate"},
		{name: "negative frames", modify: func(c *CLIConfig) { c.frames = -1 }, wantErr: true, errContains: "negative"},
		{name: "bad log level", modify: func(c *CLIConfig) { c.logLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(c)
			err := validateCLIConfig(c)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestParseRate(t *testing.T) {
	tb, err := parseRate("30000/1001")
	require.NoError(t, err)
	assert.Equal(t, frame.Rational{Num: 1001, Den: 30000}, tb)

	tb, err = parseRate("25")
	require.NoError(t, err)
	assert.Equal(t, frame.Rational{Num: 1, Den: 25}, tb)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zoompan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCLIFlags_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
size: 320x240
pix_fmt: gray
rate: 50
frames: 10
options:
  zoom: min(zoom+0.1, 2)
  x: 0.25
  exact: true
  fillcolor: red
`)

	config, err := parseCLIFlags([]string{"-config", path, "-s", "64x64", "-opts", "x=0.75"})
	require.NoError(t, err)
	assert.Equal(t, "64x64", config.size, "command line wins")
	assert.Equal(t, "gray", config.pixFmt)
	assert.Equal(t, "50", config.rate)
	assert.Equal(t, 10, config.frames)

	opts, err := buildOptions(config)
	require.NoError(t, err)
	assert.Equal(t, "min(zoom+0.1, 2)", opts.Zoom)
	assert.Equal(t, "0.75", opts.X)
	assert.True(t, opts.Exact)
	assert.Equal(t, "red", opts.FillColor)
}

func TestParseCLIFlags_Errors(t *testing.T) {
	_, err := parseCLIFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = parseCLIFlags([]string{"-config", writeConfig(t, "options: [1, 2")})
	assert.Error(t, err)

	config, err := parseCLIFlags([]string{"-config", writeConfig(t, "options:\n  speed: 3\n")})
	require.NoError(t, err)
	_, err = buildOptions(config)
	assert.ErrorIs(t, err, zoompan.ErrInvalidOption)
}

func rawStream(t *testing.T, format *frame.PixelFormat, w, h, frames int) ([]byte, []*frame.Frame) {
	t.Helper()
	var buf bytes.Buffer
	var list []*frame.Frame
	for n := 0; n < frames; n++ {
		f, err := frame.New(format, w, h)
		require.NoError(t, err)
		for c := range format.Components {
			cw, ch := format.ComponentSize(c, w, h)
			for y := 0; y < ch; y++ {
				for x := 0; x < cw; x++ {
					f.Set(c, x, y, uint16((x*3+y*5+n*11+c)&0xff))
				}
			}
		}
		require.NoError(t, frame.WriteRaw(&buf, f))
		list = append(list, f)
	}
	return buf.Bytes(), list
}

func TestRun_Identity(t *testing.T) {
	data, _ := rawStream(t, frame.YUV420P, 16, 8, 3)
	logger, _ := test.NewNullLogger()

	config := &CLIConfig{size: "16x8", pixFmt: "yuv420p", rate: "25"}
	var out bytes.Buffer
	stats, err := run(context.Background(), config, zoompan.DefaultOptions(), bytes.NewReader(data), &out, logrus.NewEntry(logger))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), stats.FramesProcessed)
	assert.Equal(t, data, out.Bytes())
}

func TestRun_FrameLimitAndResize(t *testing.T) {
	data, frames := rawStream(t, frame.Gray, 100, 100, 4)
	logger, _ := test.NewNullLogger()

	opts, err := zoompan.ParseOptions("zoom=2:width=50:height=50")
	require.NoError(t, err)
	config := &CLIConfig{size: "100x100", pixFmt: "gray", rate: "25", frames: 2}

	var out bytes.Buffer
	stats, err := run(context.Background(), config, opts, bytes.NewReader(data), &out, logrus.NewEntry(logger))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.FramesProcessed)
	require.Equal(t, 2*50*50, out.Len())

	got := out.Bytes()
	for n := 0; n < 2; n++ {
		assert.Equal(t, byte(frames[n].At(0, 25, 25)), got[n*2500])
		assert.Equal(t, byte(frames[n].At(0, 74, 74)), got[n*2500+49*50+49])
	}
}

func TestRun_TruncatedInput(t *testing.T) {
	data, _ := rawStream(t, frame.Gray, 8, 8, 2)
	logger, _ := test.NewNullLogger()
	config := &CLIConfig{size: "8x8", pixFmt: "gray", rate: "25"}

	var out bytes.Buffer
	stats, err := run(context.Background(), config, zoompan.DefaultOptions(), bytes.NewReader(data[:100]), &out, logrus.NewEntry(logger))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "frame 1"))
	assert.Equal(t, uint64(1), stats.FramesProcessed)
	assert.Equal(t, 64, out.Len())
}

func TestRun_Cancelled(t *testing.T) {
	data, _ := rawStream(t, frame.Gray, 8, 8, 2)
	logger, _ := test.NewNullLogger()
	config := &CLIConfig{size: "8x8", pixFmt: "gray", rate: "25"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := run(ctx, config, zoompan.DefaultOptions(), bytes.NewReader(data), &bytes.Buffer{}, logrus.NewEntry(logger))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_OversizedInputFailsSetup(t *testing.T) {
	logger, _ := test.NewNullLogger()
	config := &CLIConfig{size: "70000x2", pixFmt: "gray", rate: "25"}

	var out bytes.Buffer
	stats, err := run(context.Background(), config, zoompan.DefaultOptions(), bytes.NewReader(make([]byte, 140000)), &out, logrus.NewEntry(logger))
	assert.ErrorIs(t, err, zoompan.ErrConfiguration)
	assert.Equal(t, zoompan.Stats{}, stats)
	assert.Zero(t, out.Len())
}
