package zoompan

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/zoompan/fillcolor"
	"github.com/opd-ai/zoompan/frame"
	"github.com/opd-ai/zoompan/geometry"
	"github.com/opd-ai/zoompan/limits"
	"github.com/opd-ai/zoompan/params"
	"github.com/opd-ai/zoompan/resample"
	"github.com/opd-ai/zoompan/scale"
	"github.com/opd-ai/zoompan/schedule"
)

// Phase is the lifecycle position of a Filter.
type Phase int

const (
	PhaseUnconfigured Phase = iota
	PhaseConfigured
	PhaseStreaming
	PhaseClosed
)

// String returns a readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUnconfigured:
		return "unconfigured"
	case PhaseConfigured:
		return "configured"
	case PhaseStreaming:
		return "streaming"
	case PhaseClosed:
		return "closed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is the zoom state after the most recent frame.
type State struct {
	// Zoom, X and Y are the validated values of the last frame.
	Zoom, X, Y float64

	// EffectiveZoom is Zoom times the canvas shadow zoom.
	EffectiveZoom float64

	// PanX and PanY are the pans actually used after clamping to the
	// source.
	PanX, PanY float64

	// Vars is the expression environment carried to the next frame.
	Vars params.Vars

	// Frames is the number of frames evaluated so far.
	Frames int
}

// Stats counts stream events.
type Stats struct {
	FramesProcessed uint64
	FramesDropped   uint64
	ClampWarnings   uint64
	ScheduleRepeats uint64
}

// Option customises a Filter.
type Option func(*Filter)

// WithAllocator sets the output frame allocator.
func WithAllocator(a frame.Allocator) Option {
	return func(f *Filter) {
		f.alloc = a
	}
}

// WithLogger sets the parent log entry. The filter adds its own filter_id
// field.
func WithLogger(l *logrus.Entry) Option {
	return func(f *Filter) {
		f.logger = l
	}
}

// WithExecutor sets the row executor of the subpixel path.
func WithExecutor(e *resample.Executor) Option {
	return func(f *Filter) {
		f.exec = e
	}
}

// WithScaler replaces the coarse path scaler.
func WithScaler(s scale.Scaler) Option {
	return func(f *Filter) {
		f.scaler = s
	}
}

// Filter renders a zoomed and panned view of each input frame.
//
// A Filter processes one stream in order. FilterFrame calls are serialised.
type Filter struct {
	mu sync.Mutex

	id     string
	opts   Options
	color  fillcolor.Color
	alloc  frame.Allocator
	exec   *resample.Executor
	scaler scale.Scaler
	logger *logrus.Entry

	phase  Phase
	input  frame.Geometry
	canvas Canvas
	fill   []uint16
	table  *schedule.Table
	driver *params.Driver

	state State
	stats Stats
}

// New creates an unconfigured filter. Option values and the fill colour are
// checked here; expressions and the schedule are handled by Configure.
func New(opts Options, options ...Option) (*Filter, error) {
	f := &Filter{
		id:    uuid.NewString(),
		opts:  opts,
		alloc: frame.DefaultAllocator{},
		phase: PhaseUnconfigured,
	}
	for _, o := range options {
		o(f)
	}
	if f.logger == nil {
		f.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	f.logger = f.logger.WithField("filter_id", f.id)

	if err := opts.Validate(); err != nil {
		f.logger.WithFields(logrus.Fields{
			"function": "New",
			"error":    err.Error(),
		}).Error("Invalid filter options")
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	color, err := fillcolor.Parse(opts.FillColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	f.color = color

	if f.exec == nil {
		if f.exec, err = resample.NewExecutor(opts.Threads); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	if f.scaler == nil {
		f.scaler = scale.DrawScaler{Interpolation: opts.Interpolation}
	}

	f.logger.WithFields(logrus.Fields{
		"function":  "New",
		"mode":      opts.Mode.String(),
		"fillcolor": color.String(),
		"workers":   f.exec.Workers(),
		"schedule":  opts.Schedule,
	}).Info("Created zoompan filter")
	return f, nil
}

// ID returns the instance identifier used in log fields.
func (f *Filter) ID() string {
	return f.id
}

// Configure resolves the output geometry for in, loads the schedule and
// compiles the expressions. Calling it again with the same geometry is a
// no-op; a different geometry fails with ErrGeometryChanged.
func (f *Filter) Configure(in frame.Geometry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configure(in)
}

func (f *Filter) configure(in frame.Geometry) error {
	switch f.phase {
	case PhaseClosed:
		return ErrClosed
	case PhaseConfigured, PhaseStreaming:
		return f.checkGeometry(in)
	}

	logger := f.logger.WithField("function", "Configure")
	if err := in.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := limits.ValidateDimensions(in.Width, in.Height); err != nil {
		logger.WithError(err).Error("Input size out of range")
		return fmt.Errorf("%w: input: %w", ErrConfiguration, err)
	}

	canvas := ComputeCanvas(in.Width, in.Height, f.opts)
	if err := limits.ValidateDimensions(canvas.Width, canvas.Height); err != nil {
		logger.WithError(err).Error("Output size out of range")
		return fmt.Errorf("%w: output: %w", ErrConfiguration, err)
	}

	var table *schedule.Table
	if f.opts.Schedule != "" {
		var err error
		if table, err = schedule.Load(f.opts.Schedule); err != nil {
			logger.WithError(err).Error("Failed to load schedule")
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}

	driver, err := params.New(params.Config{
		ZoomExpr: f.opts.Zoom,
		XExpr:    f.opts.X,
		YExpr:    f.opts.Y,
		Schedule: table,
		ZoomMax:  canvas.ZoomMax,
		InW:      in.Width,
		InH:      in.Height,
		OutW:     canvas.Width,
		OutH:     canvas.Height,
		Logger:   f.logger,
	})
	if err != nil {
		logger.WithError(err).Error("Failed to create parameter driver")
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	f.input = in
	f.canvas = canvas
	f.fill = fillcolor.Values(f.color, in.Format)
	f.table = table
	f.driver = driver
	f.state = State{Zoom: 1, X: 0.5, Y: 0.5, EffectiveZoom: canvas.ShadowZoom, PanX: 0.5, PanY: 0.5, Vars: driver.Vars()}
	f.phase = PhaseConfigured

	logger.WithFields(logrus.Fields{
		"input":       fmt.Sprintf("%dx%d %s", in.Width, in.Height, in.Format),
		"output":      fmt.Sprintf("%dx%d", canvas.Width, canvas.Height),
		"aspect":      canvas.AspectRatio,
		"zoom_max":    canvas.ZoomMax,
		"shadow_zoom": canvas.ShadowZoom,
	}).Info("Configured zoompan filter")
	return nil
}

func (f *Filter) checkGeometry(in frame.Geometry) error {
	if in.Format != f.input.Format || in.Width != f.input.Width || in.Height != f.input.Height {
		return fmt.Errorf("%w: configured %dx%d %s, got %dx%d %s", ErrGeometryChanged,
			f.input.Width, f.input.Height, f.input.Format, in.Width, in.Height, in.Format)
	}
	return nil
}

// FilterFrame renders one output frame from in. The first call configures
// the filter from in if Configure was not called.
//
// Errors:
//   - ErrClosed after Close
//   - ErrConfiguration when the implicit configuration fails
//   - ErrGeometryChanged when in differs from the configured geometry
//   - ErrResource when the output frame cannot be allocated or the
//     allocator returns a frame of the wrong shape; the frame is dropped
//     and later frames are still accepted
//   - ctx.Err() when ctx is cancelled
//
// A frame dropped after allocation still advances the parameters: the
// schedule moves to its next entry and State().Vars holds the values
// evaluated for the dropped frame.
func (f *Filter) FilterFrame(ctx context.Context, in *frame.Frame) (*frame.Frame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseClosed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, fmt.Errorf("%w: nil frame", frame.ErrInvalidGeometry)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := f.configure(in.Geometry()); err != nil {
		return nil, err
	}

	logger := f.logger.WithFields(logrus.Fields{
		"function": "FilterFrame",
		"frame":    f.state.Frames,
	})

	out, err := f.alloc.Allocate(in.Format, f.canvas.Width, f.canvas.Height)
	if err == nil {
		err = f.checkOutput(out)
	}
	if err != nil {
		f.stats.FramesDropped++
		logger.WithError(err).Error("Failed to allocate output frame")
		return nil, fmt.Errorf("%w: %w", ErrResource, err)
	}
	if err := frame.Fill(out, f.fill); err != nil {
		return nil, err
	}

	p := f.driver.Next(in.Time(), f.state.Frames)
	f.state.Frames++
	if p.Clamped {
		f.stats.ClampWarnings++
	}
	if p.Exhausted {
		f.stats.ScheduleRepeats++
	}

	zoom := p.Zoom * f.canvas.ShadowZoom
	pan := geometry.Point{X: p.X, Y: p.Y}
	if zoom > 0 {
		pan = geometry.ClampPan2D(pan,
			geometry.Size{W: float64(out.Width), H: float64(out.Height)},
			zoom,
			geometry.Size{W: float64(in.Width), H: float64(in.Height)})
		if err := f.render(ctx, out, in, zoom, pan); err != nil {
			f.state.Vars = f.driver.Vars()
			f.stats.FramesDropped++
			logger.WithError(err).Warn("Frame rendering aborted")
			return nil, err
		}
	}
	out.CopyProps(in)

	f.state.Zoom, f.state.X, f.state.Y = p.Zoom, p.X, p.Y
	f.state.EffectiveZoom = zoom
	f.state.PanX, f.state.PanY = pan.X, pan.Y
	f.state.Vars = f.driver.Vars()
	f.stats.FramesProcessed++
	f.phase = PhaseStreaming

	logger.WithFields(logrus.Fields{
		"zoom":  zoom,
		"pan_x": pan.X,
		"pan_y": pan.Y,
	}).Debug("Rendered frame")
	return out, nil
}

// checkOutput rejects allocated frames that do not match the canvas.
func (f *Filter) checkOutput(out *frame.Frame) error {
	if out == nil {
		return fmt.Errorf("%w: allocator returned no frame", frame.ErrAllocation)
	}
	if out.Format != f.input.Format || out.Width != f.canvas.Width || out.Height != f.canvas.Height {
		return fmt.Errorf("%w: allocated %dx%d %s, want %dx%d %s", frame.ErrInvalidGeometry,
			out.Width, out.Height, out.Format, f.canvas.Width, f.canvas.Height, f.input.Format)
	}
	return out.Validate()
}

// render draws the source view onto out, which already holds the fill.
func (f *Filter) render(ctx context.Context, out, in *frame.Frame, zoom float64, pan geometry.Point) error {
	if f.opts.Mode == ModeCoarse {
		return scale.Coarse(f.scaler, out, in, zoom, pan)
	}
	for c := range in.Format.Components {
		p, err := resample.ComponentPlane(in, out, c, f.fill[c])
		if err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if err := resample.ResampleParallel(ctx, f.exec, p, zoom, pan); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the schedule and the compiled expressions. Later calls
// to any method fail with ErrClosed.
func (f *Filter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseClosed {
		return ErrClosed
	}
	f.driver = nil
	f.table = nil
	f.phase = PhaseClosed

	f.logger.WithFields(logrus.Fields{
		"function":         "Close",
		"frames_processed": f.stats.FramesProcessed,
		"frames_dropped":   f.stats.FramesDropped,
		"clamp_warnings":   f.stats.ClampWarnings,
	}).Info("Closed zoompan filter")
	return nil
}

// Phase returns the lifecycle phase.
func (f *Filter) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Canvas returns the resolved output geometry.
func (f *Filter) Canvas() (Canvas, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.phase {
	case PhaseUnconfigured:
		return Canvas{}, ErrNotConfigured
	case PhaseClosed:
		return Canvas{}, ErrClosed
	}
	return f.canvas, nil
}

// OutputSize returns the output frame size.
func (f *Filter) OutputSize() (width, height int, err error) {
	c, err := f.Canvas()
	return c.Width, c.Height, err
}

// ZoomMax returns the zoom upper bound.
func (f *Filter) ZoomMax() (float64, error) {
	c, err := f.Canvas()
	return c.ZoomMax, err
}

// State returns the zoom state after the last frame.
func (f *Filter) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Stats returns the stream counters.
func (f *Filter) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}
