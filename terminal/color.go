package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/rgbconv/rgb"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a user-facing mode name; "auto" and "" defer to DetectColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	}
	return ColorMode256, fmt.Errorf("unknown color mode %q", s)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// COLORTERM is set by most modern terminals and takes priority
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades, levels 8..238)
const grayscaleStart = 232

// cubeIndex maps a channel value to the nearest cube level index 0-5
func cubeIndex(v uint8) uint8 {
	best := uint8(0)
	bestDist := abs(int(v) - int(cubeLevels[0]))
	for j := 1; j < len(cubeLevels); j++ {
		if d := abs(int(v) - int(cubeLevels[j])); d < bestDist {
			bestDist = d
			best = uint8(j)
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Index256 returns the nearest xterm-256 palette index for c
// Near-gray colors are matched against the grayscale ramp as well as the cube
func Index256(c rgb.Color) uint8 {
	r, g, b := c.RGB()

	cr, cg, cb := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cubeIdx := Cube256(cr, cg, cb)

	gray := (int(r) + int(g) + int(b)) / 3
	if max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray)) >= 10 {
		return cubeIdx
	}

	// Ramp ends are covered by cube black (16) and cube white (231)
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	step := (gray - 8 + 5) / 10
	step = min(max(step, 0), 23)
	level := 8 + step*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)

	cubeDist := abs(int(r)-int(cubeLevels[cr])) +
		abs(int(g)-int(cubeLevels[cg])) +
		abs(int(b)-int(cubeLevels[cb]))

	if grayDist < cubeDist {
		return Gray256(uint8(step))
	}
	return cubeIdx
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	return grayscaleStart + min(step, 23)
}

// PaletteColor returns the color an xterm-256 index in the cube or grayscale ramp renders as
// The 16 system colors (0-15) are terminal-defined and report ok=false
func PaletteColor(index uint8) (rgb.Color, bool) {
	switch {
	case index < 16:
		return rgb.Color{}, false
	case index >= grayscaleStart:
		level := int16(8 + 10*int(index-grayscaleStart))
		c, err := rgb.FromTuple(level, level, level)
		return c, err == nil
	}
	n := index - 16
	c, err := rgb.FromTuple(
		int16(cubeLevels[n/36]),
		int16(cubeLevels[(n%36)/6]),
		int16(cubeLevels[n%6]),
	)
	return c, err == nil
}
