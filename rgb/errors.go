package rgb

import (
	"errors"
)

// Kind classifies a conversion failure
type Kind uint8

const (
	KindBadLength  Kind = iota + 1 // input slice length is not 3
	KindOutOfRange                 // at least one channel outside 0..=255
)

func (k Kind) String() string {
	switch k {
	case KindBadLength:
		return "bad_length"
	case KindOutOfRange:
		return "out_of_range"
	}
	return "unknown"
}

// ConversionError reports why a Color could not be constructed
// Inspect with errors.Is against the sentinels or errors.As for the Kind
type ConversionError struct {
	Kind Kind
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case KindBadLength:
		return "rgb: input must have exactly 3 channels"
	case KindOutOfRange:
		return "rgb: channel value out of range 0..255"
	}
	return "rgb: conversion failed"
}

// Sentinels returned by every constructor in this package
var (
	ErrBadLength  error = &ConversionError{Kind: KindBadLength}
	ErrOutOfRange error = &ConversionError{Kind: KindOutOfRange}
)

// KindOf returns the conversion failure kind carried anywhere in err's chain
func KindOf(err error) (Kind, bool) {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}
