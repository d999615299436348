package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Keyframe pins a triple to a frame index.
type Keyframe struct {
	Frame int
	Triple
}

// ParseKeyframe parses "frame:x,y,zoom".
func ParseKeyframe(s string) (Keyframe, error) {
	idx, vals, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Keyframe{}, fmt.Errorf("%w: %q: expected frame:x,y,zoom", ErrKeyframe, s)
	}
	frame, err := strconv.Atoi(idx)
	if err != nil || frame < 0 {
		return Keyframe{}, fmt.Errorf("%w: %q: bad frame index", ErrKeyframe, s)
	}
	parts := strings.Split(vals, ",")
	if len(parts) != 3 {
		return Keyframe{}, fmt.Errorf("%w: %q: expected 3 values, got %d", ErrKeyframe, s, len(parts))
	}
	var v [3]float64
	for i, p := range parts {
		v[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Keyframe{}, fmt.Errorf("%w: %q: %w", ErrKeyframe, s, err)
		}
	}
	return Keyframe{Frame: frame, Triple: Triple{X: v[0], Y: v[1], Zoom: v[2]}}, nil
}

// Interpolate expands keyframes into one triple per frame for frames
// [0, frames). Values between keyframes are linear; frames before the first
// or after the last keyframe hold its value. Keyframes may be given in any
// order; for duplicate frame indices the last one wins.
func Interpolate(keys []Keyframe, frames int) []Triple {
	if len(keys) == 0 || frames <= 0 {
		return nil
	}
	sorted := append([]Keyframe(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frame < sorted[j].Frame })
	uniq := sorted[:0]
	for _, kf := range sorted {
		if len(uniq) > 0 && uniq[len(uniq)-1].Frame == kf.Frame {
			uniq[len(uniq)-1] = kf
			continue
		}
		uniq = append(uniq, kf)
	}
	sorted = uniq

	out := make([]Triple, frames)
	k := 0
	for n := range out {
		for k+1 < len(sorted) && sorted[k+1].Frame <= n {
			k++
		}
		a := sorted[k]
		if n <= a.Frame || k+1 == len(sorted) {
			out[n] = a.Triple
			continue
		}
		b := sorted[k+1]
		f := float64(n-a.Frame) / float64(b.Frame-a.Frame)
		out[n] = Triple{
			X:    lerp(a.X, b.X, f),
			Y:    lerp(a.Y, b.Y, f),
			Zoom: lerp(a.Zoom, b.Zoom, f),
		}
	}
	return out
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
