package params

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/zoompan/schedule"
)

// Default expressions.
const (
	DefaultZoom = "1"
	DefaultX    = "0.5"
	DefaultY    = "0.5"
)

// Config configures a Driver.
type Config struct {
	ZoomExpr string
	XExpr    string
	YExpr    string

	// Schedule, when set, replaces the expressions.
	Schedule *schedule.Table

	// ZoomMax is the upper bound of the validated zoom.
	ZoomMax float64

	// Frame sizes exposed to expressions as in_w, in_h, out_w, out_h.
	InW, InH   int
	OutW, OutH int

	Logger *logrus.Entry
}

// Params is the validated per-frame result.
type Params struct {
	Zoom, X, Y float64

	// Raw values before validation.
	RawZoom, RawX, RawY float64

	// Clamped is set when any value was replaced or clipped.
	Clamped bool

	// Exhausted is set when the schedule ran out and its last entry was
	// repeated.
	Exhausted bool
}

// Driver produces zoom and pan values frame by frame.
type Driver struct {
	zoom, x, y *vm.Program
	cursor     *schedule.Cursor
	zoomMax    float64
	vars       Vars
	logger     *logrus.Entry
}

// New compiles the expressions of cfg. Empty expressions take their
// defaults. Compile errors wrap ErrExpression and are reported even when
// cfg.Schedule drives the values.
func New(cfg Config) (*Driver, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	logger = logger.WithField("component", "params")

	if math.IsNaN(cfg.ZoomMax) || cfg.ZoomMax <= 0 {
		return nil, fmt.Errorf("%w: zoom_max %v", ErrInvalidConfig, cfg.ZoomMax)
	}

	d := &Driver{zoomMax: cfg.ZoomMax, vars: InitialVars(), logger: logger}
	d.vars.InW, d.vars.InH = float64(cfg.InW), float64(cfg.InH)
	d.vars.OutW, d.vars.OutH = float64(cfg.OutW), float64(cfg.OutH)
	d.vars.ZoomMax = cfg.ZoomMax

	var err error
	if d.zoom, err = compile("zoom", orDefault(cfg.ZoomExpr, DefaultZoom), d.vars); err != nil {
		return nil, err
	}
	if d.x, err = compile("x", orDefault(cfg.XExpr, DefaultX), d.vars); err != nil {
		return nil, err
	}
	if d.y, err = compile("y", orDefault(cfg.YExpr, DefaultY), d.vars); err != nil {
		return nil, err
	}

	if cfg.Schedule != nil {
		d.cursor = cfg.Schedule.Cursor()
		logger.WithFields(logrus.Fields{
			"function": "New",
			"triples":  cfg.Schedule.Len(),
			"zoom_max": cfg.ZoomMax,
		}).Info("Parameter driver using schedule")
		return d, nil
	}

	logger.WithFields(logrus.Fields{
		"function": "New",
		"zoom":     orDefault(cfg.ZoomExpr, DefaultZoom),
		"x":        orDefault(cfg.XExpr, DefaultX),
		"y":        orDefault(cfg.YExpr, DefaultY),
		"zoom_max": cfg.ZoomMax,
	}).Info("Parameter driver using expressions")
	return d, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func compile(name, src string, vars Vars) (*vm.Program, error) {
	opts := append(functions(), expr.Env(vars.env()), expr.AsFloat64())
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %w", ErrExpression, name, src, err)
	}
	return program, nil
}

// Vars returns the current variable environment.
func (d *Driver) Vars() Vars {
	return d.vars
}

// ZoomMax returns the zoom upper bound.
func (d *Driver) ZoomMax() float64 {
	return d.zoomMax
}

// UsesSchedule reports whether values come from a trajectory table.
func (d *Driver) UsesSchedule() bool {
	return d.cursor != nil
}

// Next returns the parameters for frame n at time t (NaN when unknown).
//
// Expressions are evaluated in the order zoom, x, y; each sees the values
// already produced for this frame. Feedback variables keep the raw,
// unvalidated values.
func (d *Driver) Next(t float64, n int) Params {
	d.vars.T = t
	d.vars.N = float64(n)

	var p Params
	if d.cursor != nil {
		idx := d.cursor.Index()
		tr, exhausted := d.cursor.Next()
		if exhausted {
			d.logger.WithFields(logrus.Fields{
				"function": "Next",
				"frame":    n,
				"index":    idx,
			}).Warn("Schedule exhausted, repeating last entry")
		}
		p = Params{RawZoom: tr.Zoom, RawX: tr.X, RawY: tr.Y, Exhausted: exhausted}
		d.vars.Z, d.vars.Zoom = tr.Zoom, tr.Zoom
		d.vars.X, d.vars.Y = tr.X, tr.Y
	} else {
		p.RawZoom = d.eval("zoom", d.zoom)
		d.vars.Z, d.vars.Zoom = p.RawZoom, p.RawZoom
		p.RawX = d.eval("x", d.x)
		d.vars.X = p.RawX
		p.RawY = d.eval("y", d.y)
		d.vars.Y = p.RawY
	}

	d.validate(&p, n)
	d.logger.WithFields(logrus.Fields{
		"function": "Next",
		"frame":    n,
		"zoom":     p.Zoom,
		"x":        p.X,
		"y":        p.Y,
	}).Debug("Frame parameters")
	return p
}

// eval runs one program. Runtime failures yield NaN, which validation then
// replaces.
func (d *Driver) eval(name string, program *vm.Program) float64 {
	out, err := expr.Run(program, d.vars.env())
	if err == nil {
		if v, ok := out.(float64); ok {
			return v
		}
		err = fmt.Errorf("non-numeric result %T", out)
	}
	d.logger.WithFields(logrus.Fields{
		"function":   "eval",
		"expression": name,
		"error":      err.Error(),
	}).Warn("Expression evaluation failed")
	return math.NaN()
}

func (d *Driver) validate(p *Params, n int) {
	p.Zoom, p.X, p.Y = p.RawZoom, p.RawX, p.RawY

	if math.IsNaN(p.Zoom) {
		d.warn(n, "zoom", p.Zoom, 0, d.zoomMax, "Zoom is NaN, using 1")
		p.Zoom = 1
		p.Clamped = true
	}
	if p.Zoom < 0 || p.Zoom > d.zoomMax {
		d.warn(n, "zoom", p.Zoom, 0, d.zoomMax, "Zoom out of range")
		p.Zoom = math.Min(math.Max(p.Zoom, 0), d.zoomMax)
		p.Clamped = true
	}
	p.X = d.validatePan(n, "x", p.X, &p.Clamped)
	p.Y = d.validatePan(n, "y", p.Y, &p.Clamped)
}

func (d *Driver) validatePan(n int, name string, v float64, clamped *bool) float64 {
	switch {
	case math.IsNaN(v):
		d.warn(n, name, v, 0, 1, "Pan is NaN, using 0.5")
		*clamped = true
		return 0.5
	case v < 0 || v > 1:
		d.warn(n, name, v, 0, 1, "Pan out of range")
		*clamped = true
		return math.Min(math.Max(v, 0), 1)
	}
	return v
}

func (d *Driver) warn(n int, name string, v, lo, hi float64, msg string) {
	d.logger.WithFields(logrus.Fields{
		"function": "validate",
		"frame":    n,
		"param":    name,
		"value":    v,
		"min":      lo,
		"max":      hi,
	}).Warn(msg)
}
