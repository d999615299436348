package fillcolor

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// String formats c as 0xRRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("0x%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Parse converts a colour specification into a Color. Colours without an
// explicit alpha are opaque.
func Parse(spec string) (Color, error) {
	return parse(spec, rand.IntN)
}

func parse(spec string, intn func(int) int) (Color, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty specification", ErrInvalidColor)
	}

	name, alpha, hasAlpha := strings.Cut(s, "@")
	c, err := parseBase(name, intn)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", err, spec)
	}
	if hasAlpha {
		a, err := parseAlpha(alpha)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", err, spec)
		}
		c.A = a
	}
	return c, nil
}

func parseBase(name string, intn func(int) int) (Color, error) {
	lower := strings.ToLower(name)
	if lower == "random" {
		return Color{R: uint8(intn(256)), G: uint8(intn(256)), B: uint8(intn(256)), A: 0xff}, nil
	}
	if rgba, ok := colornames.Map[lower]; ok {
		return Color{R: rgba.R, G: rgba.G, B: rgba.B, A: 0xff}, nil
	}

	digits := strings.TrimPrefix(lower, "#")
	if digits == lower {
		digits = strings.TrimPrefix(lower, "0x")
	}
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w: unknown colour name", ErrInvalidColor)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, fmt.Errorf("%w: bad hex digits", ErrInvalidColor)
	}
	c := Color{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// parseAlpha accepts 0xAA or a float in [0, 1]. Floats are scaled by 255
// and truncated.
func parseAlpha(s string) (uint8, error) {
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err := strconv.ParseUint(rest, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: alpha %q", ErrInvalidColor, s)
		}
		return uint8(v), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !(f >= 0 && f <= 1) {
		return 0, fmt.Errorf("%w: alpha %q not in [0, 1]", ErrInvalidColor, s)
	}
	return uint8(255 * f), nil
}
