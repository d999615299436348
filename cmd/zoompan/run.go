package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/zoompan"
	"github.com/opd-ai/zoompan/frame"
)

// run filters raw frames from r to w until r is exhausted, the frame limit
// is reached or ctx is cancelled. Frames the filter drops for lack of
// memory are skipped.
func run(ctx context.Context, config *CLIConfig, opts zoompan.Options, r io.Reader, w io.Writer, logger *logrus.Entry) (zoompan.Stats, error) {
	width, height, err := parseSize(config.size)
	if err != nil {
		return zoompan.Stats{}, err
	}
	format, err := frame.LookupFormat(config.pixFmt)
	if err != nil {
		return zoompan.Stats{}, err
	}
	timeBase, err := parseRate(config.rate)
	if err != nil {
		return zoompan.Stats{}, err
	}

	f, err := zoompan.New(opts, zoompan.WithLogger(logger))
	if err != nil {
		return zoompan.Stats{}, err
	}
	defer f.Close()

	if err := f.Configure(frame.Geometry{Format: format, Width: width, Height: height, TimeBase: timeBase}); err != nil {
		return f.Stats(), err
	}
	outW, outH, err := f.OutputSize()
	if err != nil {
		return f.Stats(), err
	}
	logger.WithFields(logrus.Fields{
		"function":   "run",
		"input":      fmt.Sprintf("%dx%d", width, height),
		"output":     fmt.Sprintf("%dx%d", outW, outH),
		"pix_fmt":    format.Name,
		"frame_size": frame.RawSize(format, width, height),
	}).Info("Starting stream")

	in, err := frame.New(format, width, height)
	if err != nil {
		return f.Stats(), err
	}
	in.TimeBase = timeBase

	br := bufio.NewReaderSize(r, frame.RawSize(format, width, height))
	bw := bufio.NewWriter(w)

	for n := 0; config.frames == 0 || n < config.frames; n++ {
		if err := ctx.Err(); err != nil {
			bw.Flush()
			return f.Stats(), err
		}
		if err := frame.ReadRaw(br, in); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			bw.Flush()
			return f.Stats(), fmt.Errorf("frame %d: %w", n, err)
		}
		in.PTS = int64(n)

		out, err := f.FilterFrame(ctx, in)
		if errors.Is(err, zoompan.ErrResource) {
			logger.WithError(err).WithField("frame", n).Warn("Dropped frame")
			continue
		}
		if err != nil {
			bw.Flush()
			return f.Stats(), fmt.Errorf("frame %d: %w", n, err)
		}
		if err := frame.WriteRaw(bw, out); err != nil {
			return f.Stats(), err
		}
	}
	return f.Stats(), bw.Flush()
}
