package zoompan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opd-ai/zoompan/fillcolor"
	"github.com/opd-ai/zoompan/limits"
	"github.com/opd-ai/zoompan/params"
	"github.com/opd-ai/zoompan/scale"
)

// Mode selects how the visible window is rendered.
type Mode int

const (
	// ModeSubpixel samples every output pixel bilinearly at its exact
	// fractional source position.
	ModeSubpixel Mode = iota
	// ModeCoarse crops and pads on integer, chroma-aligned rectangles and
	// scales with the configured interpolation.
	ModeCoarse
)

// String returns the option name of m.
func (m Mode) String() string {
	switch m {
	case ModeSubpixel:
		return "subpixel"
	case ModeCoarse:
		return "coarse"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a mode option value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subpixel":
		return ModeSubpixel, nil
	case "coarse":
		return ModeCoarse, nil
	}
	return 0, fmt.Errorf("%w: mode %q", ErrInvalidOption, s)
}

// Options configures a Filter.
type Options struct {
	// Zoom, X and Y are per-frame expressions. They are ignored when
	// Schedule is set.
	Zoom string
	X    string
	Y    string

	// AspectRatio is the target output aspect ratio; 0 keeps the input's.
	AspectRatio float64

	// Width and Height request an exact output size when both are > 0.
	// -1 means unset.
	Width  int
	Height int

	// Exact keeps odd output sizes instead of rounding them down to even.
	Exact bool

	// FillColor paints everything the source does not cover.
	FillColor string

	// Interpolation is the algorithm of the coarse path.
	Interpolation scale.Interpolation

	// Mode selects subpixel or coarse rendering.
	Mode Mode

	// Schedule is the path of a trajectory file; empty disables it.
	Schedule string

	// Threads is the row worker count; 0 means GOMAXPROCS.
	Threads int
}

// DefaultOptions returns the default configuration: identity zoom,
// centred pan, input aspect ratio, transparent black fill.
func DefaultOptions() Options {
	return Options{
		Zoom:          params.DefaultZoom,
		X:             params.DefaultX,
		Y:             params.DefaultY,
		Width:         -1,
		Height:        -1,
		FillColor:     "black@0",
		Interpolation: scale.FastBilinear,
		Mode:          ModeSubpixel,
	}
}

// Set assigns one option from its string form.
//
// Keys: zoom (alias z), x, y, ar, width (w), height (h), exact, fillcolor
// (color, c), interpolation, mode, schedule, threads.
func (o *Options) Set(key, value string) error {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "zoom", "z":
		o.Zoom = value
	case "x":
		o.X = value
	case "y":
		o.Y = value
	case "ar":
		v, err := parseFloat(key, value)
		if err != nil {
			return err
		}
		o.AspectRatio = v
	case "width", "w":
		v, err := parseInt(key, value)
		if err != nil {
			return err
		}
		o.Width = v
	case "height", "h":
		v, err := parseInt(key, value)
		if err != nil {
			return err
		}
		o.Height = v
	case "exact":
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidOption, key, value, err)
		}
		o.Exact = v
	case "fillcolor", "color", "c":
		o.FillColor = value
	case "interpolation":
		v, err := scale.ParseInterpolation(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
		o.Interpolation = v
	case "mode":
		v, err := ParseMode(value)
		if err != nil {
			return err
		}
		o.Mode = v
	case "schedule":
		o.Schedule = value
	case "threads":
		v, err := parseInt(key, value)
		if err != nil {
			return err
		}
		o.Threads = v
	default:
		return fmt.Errorf("%w: unknown option %q", ErrInvalidOption, key)
	}
	return nil
}

func parseFloat(key, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidOption, key, value, err)
	}
	return v, nil
}

func parseInt(key, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidOption, key, value, err)
	}
	return v, nil
}

// Validate checks option ranges. It does not compile expressions; that
// happens when the filter is configured.
func (o Options) Validate() error {
	if err := limits.ValidateAspectRatio(o.AspectRatio); err != nil {
		return fmt.Errorf("%w: ar: %w", ErrInvalidOption, err)
	}
	for _, d := range []struct {
		name string
		v    int
	}{{"width", o.Width}, {"height", o.Height}} {
		if d.v < -1 || d.v > limits.MaxDimension {
			return fmt.Errorf("%w: %s %d not in [-1, %d]", ErrInvalidOption, d.name, d.v, limits.MaxDimension)
		}
	}
	if err := limits.ValidateThreads(o.Threads); err != nil {
		return fmt.Errorf("%w: threads: %w", ErrInvalidOption, err)
	}
	if o.Mode != ModeSubpixel && o.Mode != ModeCoarse {
		return fmt.Errorf("%w: mode %d", ErrInvalidOption, int(o.Mode))
	}
	if o.Interpolation < scale.FastBilinear || o.Interpolation > scale.Spline {
		return fmt.Errorf("%w: interpolation %d", ErrInvalidOption, int(o.Interpolation))
	}
	if _, err := fillcolor.Parse(o.FillColor); err != nil {
		return fmt.Errorf("%w: fillcolor: %w", ErrInvalidOption, err)
	}
	return nil
}

// ParseOptions parses a "key=value:key=value" string on top of
// DefaultOptions.
func ParseOptions(s string) (Options, error) {
	opts := DefaultOptions()
	if err := opts.Apply(s); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Apply sets every entry of a "key=value:key=value" string on o. A ':'
// inside single quotes or escaped as "\:" is part of the value, so
// expressions can use the ?: operator. Entries without '=' are assigned
// positionally to zoom, x and y.
func (o *Options) Apply(s string) error {
	positional := []string{"zoom", "x", "y"}
	for i, entry := range splitOptions(s) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			if i >= len(positional) {
				return fmt.Errorf("%w: unexpected positional value %q", ErrInvalidOption, entry)
			}
			key, value = positional[i], entry
		}
		if err := o.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// splitOptions splits on ':' outside quotes, removing quotes and escapes.
func splitOptions(s string) []string {
	var (
		parts   []string
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '\'':
			quoted = !quoted
		case r == ':' && !quoted:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(parts, cur.String())
}
