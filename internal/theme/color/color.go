// Package color validates CSS color notations and converts them for previews.
//
// Validation is purely syntactic: a value is accepted when it is written in a
// notation a browser understands, without checking gamut or perceptual range.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalid is returned for values that are not a recognised color notation.
var ErrInvalid = errors.New("invalid color")

// Notation identifies how a color value was written.
type Notation string

const (
	NotationHex     Notation = "hex"
	NotationNamed   Notation = "named"
	NotationRGB     Notation = "rgb"
	NotationHSL     Notation = "hsl"
	NotationHWB     Notation = "hwb"
	NotationLab     Notation = "lab"
	NotationLCH     Notation = "lch"
	NotationOkLab   Notation = "oklab"
	NotationOkLCH   Notation = "oklch"
	NotationHSLBare Notation = "hsl-bare" // "210 40% 98%", the shadcn v3 channel form
)

// Value is a parsed color.
type Value struct {
	Raw      string
	Notation Notation
	channels [3]float64
	alpha    float64
}

var (
	hexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcPattern = regexp.MustCompile(`^(rgba?|hsla?|hwb|lab|lch|oklab|oklch)\(\s*(.*?)\s*\)$`)
	numPattern  = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:e[+-]?\d+)?(%|deg|rad|grad|turn)?$`)
)

// Valid reports whether s is an accepted color notation.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Parse validates s and returns its parsed form.
func Parse(s string) (Value, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Value{}, fmt.Errorf("%w: empty value", ErrInvalid)
	}
	lower := strings.ToLower(raw)

	switch {
	case hexPattern.MatchString(raw):
		return parseHex(raw)
	case lower == "transparent":
		return Value{Raw: raw, Notation: NotationNamed, alpha: 0}, nil
	case lower == "currentcolor":
		return Value{Raw: raw, Notation: NotationNamed, alpha: 1}, nil
	}

	if c, ok := colornames.Map[lower]; ok {
		return Value{
			Raw:      raw,
			Notation: NotationNamed,
			channels: [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255},
			alpha:    1,
		}, nil
	}

	if m := funcPattern.FindStringSubmatch(lower); m != nil {
		return parseFunc(raw, m[1], m[2])
	}

	// Bare "H S% L%" triplets are how shadcn v3 themes store colors.
	if fields := strings.Fields(lower); len(fields) == 3 && strings.HasSuffix(fields[1], "%") && strings.HasSuffix(fields[2], "%") {
		nums, err := parseArgs(fields)
		if err == nil {
			return Value{Raw: raw, Notation: NotationHSLBare, channels: [3]float64{nums[0].val, nums[1].val, nums[2].val}, alpha: 1}, nil
		}
	}

	return Value{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
}

func parseHex(raw string) (Value, error) {
	h := strings.TrimPrefix(raw, "#")
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	}
	alpha := 1.0
	if len(h) == 8 {
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
		}
		alpha = float64(a) / 255
		h = h[:6]
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return Value{Raw: raw, Notation: NotationHex, channels: [3]float64{c.R, c.G, c.B}, alpha: alpha}, nil
}

type arg struct {
	val  float64
	unit string
}

func parseArgs(fields []string) ([]arg, error) {
	out := make([]arg, 0, len(fields))
	for _, f := range fields {
		if f == "none" {
			out = append(out, arg{})
			continue
		}
		m := numPattern.FindStringSubmatch(f)
		if m == nil {
			return nil, fmt.Errorf("%w: bad component %q", ErrInvalid, f)
		}
		num := strings.TrimSuffix(f, m[1])
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad component %q", ErrInvalid, f)
		}
		out = append(out, arg{val: v, unit: m[1]})
	}
	return out, nil
}

func parseFunc(raw, name, body string) (Value, error) {
	// Both the legacy comma syntax and the space/slash syntax are accepted.
	alphaPart := ""
	if i := strings.Index(body, "/"); i >= 0 {
		alphaPart = strings.TrimSpace(body[i+1:])
		body = body[:i]
	}
	fields := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if alphaPart == "" && len(fields) == 4 {
		alphaPart = fields[3]
		fields = fields[:3]
	}
	if len(fields) != 3 {
		return Value{}, fmt.Errorf("%w: %s() takes 3 components, got %d", ErrInvalid, name, len(fields))
	}
	args, err := parseArgs(fields)
	if err != nil {
		return Value{}, err
	}
	alpha := 1.0
	if alphaPart != "" {
		a, err := parseArgs([]string{alphaPart})
		if err != nil {
			return Value{}, err
		}
		alpha = a[0].val
		if a[0].unit == "%" {
			alpha /= 100
		}
	}

	v := Value{Raw: raw, alpha: alpha}
	switch name {
	case "rgb", "rgba":
		v.Notation = NotationRGB
		for i, a := range args {
			if a.unit == "%" {
				v.channels[i] = a.val / 100
			} else {
				v.channels[i] = a.val / 255
			}
		}
	case "hsl", "hsla":
		v.Notation = NotationHSL
		v.channels = [3]float64{hue(args[0]), pct(args[1]), pct(args[2])}
	case "hwb":
		v.Notation = NotationHWB
		v.channels = [3]float64{hue(args[0]), pct(args[1]), pct(args[2])}
	case "lab":
		v.Notation = NotationLab
		v.channels = [3]float64{lightness(args[0], 100), args[1].val, args[2].val}
	case "lch":
		v.Notation = NotationLCH
		v.channels = [3]float64{lightness(args[0], 100), args[1].val, hue(args[2])}
	case "oklab":
		v.Notation = NotationOkLab
		v.channels = [3]float64{lightness(args[0], 1), args[1].val, args[2].val}
	case "oklch":
		v.Notation = NotationOkLCH
		v.channels = [3]float64{lightness(args[0], 1), args[1].val, hue(args[2])}
	}
	return v, nil
}

func hue(a arg) float64 {
	switch a.unit {
	case "rad":
		return a.val * 180 / math.Pi
	case "grad":
		return a.val * 0.9
	case "turn":
		return a.val * 360
	}
	return a.val
}

func pct(a arg) float64 {
	if a.unit == "%" {
		return a.val / 100
	}
	return a.val
}

// lightness normalises L to the 0..1 range; scale is the unitless maximum.
func lightness(a arg, scale float64) float64 {
	if a.unit == "%" {
		return a.val / 100
	}
	return a.val / scale
}

// Alpha returns the alpha channel in the 0..1 range.
func (v Value) Alpha() float64 { return v.alpha }

// Colorful converts the value to sRGB for previews. Colors outside the sRGB
// gamut are clamped.
func (v Value) Colorful() colorful.Color {
	ch := v.channels
	var c colorful.Color
	switch v.Notation {
	case NotationHex, NotationNamed, NotationRGB:
		c = colorful.Color{R: ch[0], G: ch[1], B: ch[2]}
	case NotationHSL, NotationHSLBare:
		s, l := ch[1], ch[2]
		if v.Notation == NotationHSLBare {
			s, l = s/100, l/100
		}
		c = colorful.Hsl(ch[0], s, l)
	case NotationHWB:
		w, b := ch[1], ch[2]
		if sum := w + b; sum >= 1 {
			gray := w / sum
			c = colorful.Color{R: gray, G: gray, B: gray}
		} else {
			base := colorful.Hsl(ch[0], 1, 0.5)
			scale := 1 - w - b
			c = colorful.Color{R: base.R*scale + w, G: base.G*scale + w, B: base.B*scale + w}
		}
	case NotationLab:
		c = colorful.Lab(ch[0], ch[1]/100, ch[2]/100)
	case NotationLCH:
		c = colorful.Hcl(ch[2], ch[1]/100, ch[0])
	case NotationOkLab:
		c = colorful.OkLab(ch[0], ch[1], ch[2])
	case NotationOkLCH:
		c = colorful.OkLch(ch[0], ch[1], ch[2])
	}
	return c.Clamped()
}

// Hex returns the value as a #rrggbb string.
func (v Value) Hex() string {
	return v.Colorful().Hex()
}

// Luminance returns the relative luminance of the sRGB conversion, used to
// pick a readable label color on top of a swatch.
func (v Value) Luminance() float64 {
	c := v.Colorful()
	lin := func(x float64) float64 {
		if x <= 0.04045 {
			return x / 12.92
		}
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}
