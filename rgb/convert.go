package rgb

import (
	"math"
)

// FromTuple builds a Color from three separate channel values
func FromTuple(r, g, b int16) (Color, error) {
	return fromTriple([3]int16{r, g, b})
}

// FromArray builds a Color from a fixed three-element array
func FromArray(v [3]int16) (Color, error) {
	return fromTriple(v)
}

// FromSlice builds a Color from a slice that must hold exactly three values
// Length is checked before any element is inspected
func FromSlice(v []int16) (Color, error) {
	if len(v) != 3 {
		return Color{}, ErrBadLength
	}
	return fromTriple([3]int16(v))
}

// fromTriple is the shared validator behind every entry point
func fromTriple(v [3]int16) (Color, error) {
	var ch [3]uint8
	for i, n := range v {
		u, ok := validateChannel(n)
		if !ok {
			return Color{}, ErrOutOfRange
		}
		ch[i] = u
	}
	return Color{red: ch[0], green: ch[1], blue: ch[2]}, nil
}

// validateChannel narrows a value to uint8, failing outside 0..=255
func validateChannel(n int16) (uint8, bool) {
	if n < 0 || n > math.MaxUint8 {
		return 0, false
	}
	return uint8(n), true
}

// Saturate16 clamps n into the int16 range so an out-of-range value stays out of range
// Use it to feed wider integers into the constructors without wrapping around
func Saturate16(n int64) int16 {
	if n > math.MaxInt16 {
		return math.MaxInt16
	}
	if n < math.MinInt16 {
		return math.MinInt16
	}
	return int16(n)
}
