// @focus: #core { rgb, bridge }
package rgb

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// TCell returns the equivalent tcell true color
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.red), int32(c.green), int32(c.blue))
}

// FromTCell converts a tcell color through the array constructor
// Colors without an RGB value (tcell.ColorDefault, invalid) report -1 channels and fail with ErrOutOfRange
func FromTCell(tc tcell.Color) (Color, error) {
	r, g, b := tc.RGB()
	return FromArray([3]int16{
		Saturate16(int64(r)),
		Saturate16(int64(g)),
		Saturate16(int64(b)),
	})
}

// Colorful returns the color as a go-colorful value with channels in [0,1]
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.red) / 255.0,
		G: float64(c.green) / 255.0,
		B: float64(c.blue) / 255.0,
	}
}

// FromColorful converts a go-colorful value through the tuple constructor
// Out-of-gamut channels (below 0 or above 1 after rounding) fail with ErrOutOfRange
func FromColorful(cc colorful.Color) (Color, error) {
	return FromTuple(unitToChannel(cc.R), unitToChannel(cc.G), unitToChannel(cc.B))
}

// unitToChannel scales [0,1] to [0,255] with rounding, saturating into int16
func unitToChannel(f float64) int16 {
	if math.IsNaN(f) {
		return -1
	}
	v := math.Round(f * 255.0)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// ParseHex parses #rrggbb or #rgb
// Malformed input returns a parse error, never a ConversionError
func ParseHex(s string) (Color, error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.WithMessagef(err, "rgb: parse hex %q", s)
	}
	return FromColorful(cc)
}

// MarshalText encodes the color as #rrggbb
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}
