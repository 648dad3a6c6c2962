// @focus: #sys { term }
// Package terminal maps validated colors onto terminal color capabilities.
//
// Features:
//   - True color (24-bit) and 256-color palette detection from the environment
//   - Nearest xterm-256 index for any rgb.Color (6x6x6 cube or grayscale ramp)
//   - ANSI background swatches written without per-digit allocation
//
// Output is direct ANSI SGR sequences; no terminfo lookup is performed.
package terminal
