// Package drag implements draggable elements: a bounded 2-D position type and a
// controller that turns press/move/release gestures on a handle into left/top
// style updates on the dragged element.
//
// The package knows nothing about a concrete rendering surface. Hosts provide
// elements, a document and events through the small interfaces in host.go.
package drag

import (
	"math"
	"strconv"
	"strings"
)

// Position is a 2-D coordinate in pixels. NaN marks a missing component.
// Every method returns a new Position and leaves its inputs untouched.
type Position struct {
	X float64
	Y float64
}

// Pt returns the position (x, y).
func Pt(x, y float64) Position {
	return Position{X: x, Y: y}
}

// NaN returns a position with both components missing.
func NaN() Position {
	return Position{X: math.NaN(), Y: math.NaN()}
}

// IsValid reports whether neither component is NaN.
func (p Position) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// String formats the position as "(x, y)".
func (p Position) String() string {
	return "(" + formatNumber(p.X) + ", " + formatNumber(p.Y) + ")"
}

// Add returns p + v. A nil v yields a copy of p, and a NaN component of v
// leaves that axis unchanged.
func (p Position) Add(v *Position) Position {
	if v == nil {
		return p
	}
	if !math.IsNaN(v.X) {
		p.X += v.X
	}
	if !math.IsNaN(v.Y) {
		p.Y += v.Y
	}
	return p
}

// Subtract returns p - v with the same nil and NaN rules as Add.
func (p Position) Subtract(v *Position) Position {
	if v == nil {
		return p
	}
	if !math.IsNaN(v.X) {
		p.X -= v.X
	}
	if !math.IsNaN(v.Y) {
		p.Y -= v.Y
	}
	return p
}

// Min returns the axis-wise minimum of p and v.
func (p Position) Min(v *Position) Position {
	if v == nil {
		return p
	}
	p.X = pick(p.X, v.X, math.Min)
	p.Y = pick(p.Y, v.Y, math.Min)
	return p
}

// Max returns the axis-wise maximum of p and v.
func (p Position) Max(v *Position) Position {
	if v == nil {
		return p
	}
	p.X = pick(p.X, v.X, math.Max)
	p.Y = pick(p.Y, v.Y, math.Max)
	return p
}

// pick combines a and b with fn, skipping whichever side is NaN.
func pick(a, b float64, fn func(float64, float64) float64) float64 {
	switch {
	case math.IsNaN(b):
		return a
	case math.IsNaN(a):
		return b
	default:
		return fn(a, b)
	}
}

// Bound clamps p into [lower, upper]. A nil bound leaves that side open.
// Max is applied before Min, so when lower > upper on an axis the upper
// bound wins.
func (p Position) Bound(lower, upper *Position) Position {
	return p.Max(lower).Min(upper)
}

// Check replaces NaN components with zero.
func (p Position) Check() Position {
	if math.IsNaN(p.X) {
		p.X = 0
	}
	if math.IsNaN(p.Y) {
		p.Y = 0
	}
	return p
}

// Apply writes p onto the target's left and top style properties. A NaN
// component is not written, so the existing value survives.
func (p Position) Apply(target StyleSetter) {
	if target == nil {
		return
	}
	if !math.IsNaN(p.X) {
		target.SetStyleProperty("left", formatNumber(p.X)+"px")
	}
	if !math.IsNaN(p.Y) {
		target.SetStyleProperty("top", formatNumber(p.Y)+"px")
	}
}

// PositionOf reads the element's left/top style properties. Missing or
// malformed values become 0.
func PositionOf(el StyleGetter) Position {
	if el == nil {
		return Position{}
	}
	return Position{
		X: ParsePixels(el.StyleProperty("left")),
		Y: ParsePixels(el.StyleProperty("top")),
	}.Check()
}

// ParsePixels parses the leading integer of a length such as "12px" or
// " -4.5px". It returns NaN when s does not start with a number.
func ParsePixels(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
