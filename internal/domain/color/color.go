// Package color provides a normalized color value with parsing, format
// conversion, manipulation, and WCAG contrast computation.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FormatError reports a color string that could not be parsed.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Value is one color normalized to 8-bit RGBA channels. Equality is defined
// on the normalized channels, never on the input string form: "#fff",
// "#FFFFFF" and "white" parse to equal Values.
type Value struct {
	R, G, B, A uint8
}

// New builds a fully opaque Value from RGB channels.
func New(r, g, b uint8) Value {
	return Value{R: r, G: g, B: b, A: 255}
}

// Parse normalizes a color string into a Value. Accepted forms: 3/4/6/8-digit
// hex (with or without leading '#'), rgb()/rgba() with 0-255 or percentage
// components, hsl()/hsla(), and CSS named colors. Parsing trims whitespace and
// is case-insensitive. Out-of-range components are rejected, not clamped;
// clamping only happens in explicit operations like Lighten.
func Parse(input string) (Value, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return Value{}, &FormatError{Input: input, Reason: "empty string"}
	}

	if v, ok := namedColors[s]; ok {
		return v, nil
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(input, s[1:])
	case strings.HasPrefix(s, "rgba("), strings.HasPrefix(s, "rgb("):
		return parseRGBFunc(input, s)
	case strings.HasPrefix(s, "hsla("), strings.HasPrefix(s, "hsl("):
		return parseHSLFunc(input, s)
	}

	// Bare hex without '#' shows up in INI-style theme files.
	if isHexString(s) {
		return parseHex(input, s)
	}

	return Value{}, &FormatError{Input: input, Reason: "unrecognized format"}
}

func isHexString(s string) bool {
	if len(s) != 3 && len(s) != 4 && len(s) != 6 && len(s) != 8 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

func parseHex(input, digits string) (Value, error) {
	if !isHexString(digits) {
		return Value{}, &FormatError{Input: input, Reason: "malformed hex digits"}
	}

	// Expand short forms: "abc" -> "aabbcc", "abcd" -> "aabbccdd".
	if len(digits) == 3 || len(digits) == 4 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	n, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Value{}, &FormatError{Input: input, Reason: "malformed hex digits"}
	}

	if len(digits) == 8 {
		return Value{
			R: uint8(n >> 24),
			G: uint8(n >> 16),
			B: uint8(n >> 8),
			A: uint8(n),
		}, nil
	}
	return Value{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 255,
	}, nil
}

func splitFuncArgs(input, s, name string) ([]string, error) {
	body := strings.TrimPrefix(s, name+"(")
	if !strings.HasSuffix(body, ")") {
		return nil, &FormatError{Input: input, Reason: "missing closing parenthesis"}
	}
	body = strings.TrimSuffix(body, ")")
	parts := strings.Split(body, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// parseChannel handles one rgb() component: "128" or "50%".
func parseChannel(input, part string) (uint8, error) {
	if strings.HasSuffix(part, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
		if err != nil || pct < 0 || pct > 100 {
			return 0, &FormatError{Input: input, Reason: fmt.Sprintf("percentage component %q out of range", part)}
		}
		return uint8(math.Round(pct / 100 * 255)), nil
	}
	n, err := strconv.ParseFloat(part, 64)
	if err != nil || n < 0 || n > 255 {
		return 0, &FormatError{Input: input, Reason: fmt.Sprintf("component %q out of range 0-255", part)}
	}
	return uint8(math.Round(n)), nil
}

// parseAlpha handles an alpha component: "0.5" or "50%".
func parseAlpha(input, part string) (uint8, error) {
	if strings.HasSuffix(part, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
		if err != nil || pct < 0 || pct > 100 {
			return 0, &FormatError{Input: input, Reason: fmt.Sprintf("alpha %q out of range", part)}
		}
		return uint8(math.Round(pct / 100 * 255)), nil
	}
	a, err := strconv.ParseFloat(part, 64)
	if err != nil || a < 0 || a > 1 {
		return 0, &FormatError{Input: input, Reason: fmt.Sprintf("alpha %q out of range 0-1", part)}
	}
	return uint8(math.Round(a * 255)), nil
}

func parseRGBFunc(input, s string) (Value, error) {
	name := "rgb"
	if strings.HasPrefix(s, "rgba(") {
		name = "rgba"
	}
	parts, err := splitFuncArgs(input, s, name)
	if err != nil {
		return Value{}, err
	}
	if len(parts) != 3 && len(parts) != 4 {
		return Value{}, &FormatError{Input: input, Reason: fmt.Sprintf("%s() needs 3 or 4 components, got %d", name, len(parts))}
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		ch[i], err = parseChannel(input, parts[i])
		if err != nil {
			return Value{}, err
		}
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		alpha, err = parseAlpha(input, parts[3])
		if err != nil {
			return Value{}, err
		}
	}

	return Value{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func parseHSLFunc(input, s string) (Value, error) {
	name := "hsl"
	if strings.HasPrefix(s, "hsla(") {
		name = "hsla"
	}
	parts, err := splitFuncArgs(input, s, name)
	if err != nil {
		return Value{}, err
	}
	if len(parts) != 3 && len(parts) != 4 {
		return Value{}, &FormatError{Input: input, Reason: fmt.Sprintf("%s() needs 3 or 4 components, got %d", name, len(parts))}
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
	if err != nil {
		return Value{}, &FormatError{Input: input, Reason: fmt.Sprintf("hue %q is not a number", parts[0])}
	}
	h = math.Mod(math.Mod(h, 360)+360, 360)

	sat, err := parseHSLPercent(input, parts[1])
	if err != nil {
		return Value{}, err
	}
	lig, err := parseHSLPercent(input, parts[2])
	if err != nil {
		return Value{}, err
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		alpha, err = parseAlpha(input, parts[3])
		if err != nil {
			return Value{}, err
		}
	}

	c := colorful.Hsl(h, sat, lig).Clamped()
	r, g, b := c.RGB255()
	return Value{R: r, G: g, B: b, A: alpha}, nil
}

func parseHSLPercent(input, part string) (float64, error) {
	pct, err := strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
	if err != nil || pct < 0 || pct > 100 {
		return 0, &FormatError{Input: input, Reason: fmt.Sprintf("percentage %q out of range", part)}
	}
	return pct / 100, nil
}

// Hex renders "#rrggbb", or "#rrggbbaa" when the color is not fully opaque.
// Parse(v.Hex()) always reproduces v exactly.
func (v Value) Hex() string {
	if v.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", v.R, v.G, v.B, v.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

// RGB renders "rgb(r, g, b)".
func (v Value) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", v.R, v.G, v.B)
}

// RGBA renders "rgba(r, g, b, a)" with alpha in 0-1.
func (v Value) RGBA() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", v.R, v.G, v.B,
		strconv.FormatFloat(float64(v.A)/255, 'g', 3, 64))
}

// HSL renders "hsl(h, s%, l%)" with the hue rounded to whole degrees.
func (v Value) HSL() string {
	h, s, l := v.colorful().Hsl()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100)))
}

func (v Value) colorful() colorful.Color {
	return colorful.Color{
		R: float64(v.R) / 255,
		G: float64(v.G) / 255,
		B: float64(v.B) / 255,
	}
}

func clampChannel(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, f))))
}

// Lighten moves each channel toward white by amount (0-1), clamping to 255.
// Alpha is preserved.
func (v Value) Lighten(amount float64) Value {
	return Value{
		R: clampChannel(float64(v.R) + amount*255),
		G: clampChannel(float64(v.G) + amount*255),
		B: clampChannel(float64(v.B) + amount*255),
		A: v.A,
	}
}

// Darken moves each channel toward black by amount (0-1), clamping to 0.
// Alpha is preserved.
func (v Value) Darken(amount float64) Value {
	return Value{
		R: clampChannel(float64(v.R) - amount*255),
		G: clampChannel(float64(v.G) - amount*255),
		B: clampChannel(float64(v.B) - amount*255),
		A: v.A,
	}
}

// Mix blends v with other. ratio 0 returns v unchanged, ratio 1 returns
// other; intermediate values interpolate every channel including alpha.
func (v Value) Mix(other Value, ratio float64) Value {
	ratio = math.Max(0, math.Min(1, ratio))
	mix := func(a, b uint8) uint8 {
		return clampChannel(float64(a) + (float64(b)-float64(a))*ratio)
	}
	return Value{
		R: mix(v.R, other.R),
		G: mix(v.G, other.G),
		B: mix(v.B, other.B),
		A: mix(v.A, other.A),
	}
}

// relativeLuminance implements the WCAG 2.x relative luminance formula.
func (v Value) relativeLuminance() float64 {
	lin := func(c uint8) float64 {
		f := float64(c) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(v.R) + 0.7152*lin(v.G) + 0.0722*lin(v.B)
}

// ContrastRatio computes the WCAG contrast ratio between a foreground and a
// background color. The result is in [1, 21]: pure black on pure white is
// exactly 21, identical colors are exactly 1.
func ContrastRatio(fg, bg Value) float64 {
	l1 := fg.relativeLuminance()
	l2 := bg.relativeLuminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// String implements fmt.Stringer using the hex form.
func (v Value) String() string {
	return v.Hex()
}
