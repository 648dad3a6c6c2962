// @focus: #core { rgb }
// Package rgb provides a validated 24-bit color and fallible constructors from wider
// signed integer sources.
//
// Three input shapes are accepted:
//   - FromTuple: three separate int16 channel values
//   - FromArray: a fixed [3]int16
//   - FromSlice: an []int16 of any length, rejected with ErrBadLength unless it has exactly 3 elements
//
// Every channel must lie in 0..=255. A value outside that range fails the whole
// conversion with ErrOutOfRange; the error does not identify the offending channel.
//
// All constructors are pure and safe for concurrent use.
package rgb
