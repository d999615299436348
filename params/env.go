package params

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// Vars is the variable environment seen by the expressions of one frame.
// Z/Zoom, X and Y hold the raw values of the previous evaluation.
type Vars struct {
	Z, Zoom float64
	T       float64 // seconds, NaN when unknown
	X, Y    float64
	InW     float64
	InH     float64
	OutW    float64
	OutH    float64
	N       float64 // frame index
	ZoomMax float64
}

// InitialVars returns the environment before the first frame.
func InitialVars() Vars {
	return Vars{Z: 1, Zoom: 1, X: 0.5, Y: 0.5, T: math.NaN()}
}

func (v Vars) env() map[string]any {
	return map[string]any{
		"z":        v.Z,
		"zoom":     v.Zoom,
		"t":        v.T,
		"x":        v.X,
		"y":        v.Y,
		"in_w":     v.InW,
		"in_h":     v.InH,
		"out_w":    v.OutW,
		"out_h":    v.OutH,
		"n":        v.N,
		"zoom_max": v.ZoomMax,
		"PI":       math.Pi,
		"E":        math.E,
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func floats(name string, want int, args []any) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d", name, want, len(args))
	}
	out := make([]float64, want)
	for i, a := range args {
		f, err := toFloat(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func unary(name string, fn func(float64) float64) expr.Option {
	return expr.Function(name, func(args ...any) (any, error) {
		v, err := floats(name, 1, args)
		if err != nil {
			return nil, err
		}
		return fn(v[0]), nil
	})
}

func binary(name string, fn func(a, b float64) float64) expr.Option {
	return expr.Function(name, func(args ...any) (any, error) {
		v, err := floats(name, 2, args)
		if err != nil {
			return nil, err
		}
		return fn(v[0], v[1]), nil
	})
}

func ternary(name string, fn func(a, b, c float64) float64) expr.Option {
	return expr.Function(name, func(args ...any) (any, error) {
		v, err := floats(name, 3, args)
		if err != nil {
			return nil, err
		}
		return fn(v[0], v[1], v[2]), nil
	})
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// functions are the helpers available to every expression in addition to
// the expr language builtins.
func functions() []expr.Option {
	return []expr.Option{
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("tan", math.Tan),
		unary("sqrt", math.Sqrt),
		unary("exp", math.Exp),
		unary("log", math.Log),
		unary("trunc", math.Trunc),
		unary("isnan", func(v float64) float64 { return boolFloat(math.IsNaN(v)) }),
		binary("pow", math.Pow),
		binary("hypot", math.Hypot),
		binary("atan2", math.Atan2),
		ternary("clip", func(v, lo, hi float64) float64 {
			if math.IsNaN(v) {
				return v
			}
			return math.Min(math.Max(v, lo), hi)
		}),
		ternary("lerp", func(a, b, t float64) float64 { return a + (b-a)*t }),
		ternary("between", func(v, lo, hi float64) float64 { return boolFloat(v >= lo && v <= hi) }),
	}
}
