package rgb

import (
	"fmt"
)

// Color stores validated 8-bit channels
// Only the From* constructors produce non-zero values; the zero value is black
type Color struct {
	red, green, blue uint8
}

// Red returns the red channel
func (c Color) Red() uint8 { return c.red }

// Green returns the green channel
func (c Color) Green() uint8 { return c.green }

// Blue returns the blue channel
func (c Color) Blue() uint8 { return c.blue }

// RGB returns all three channels in order
func (c Color) RGB() (r, g, b uint8) {
	return c.red, c.green, c.blue
}

// Channels returns the channels as an array indexed red, green, blue
func (c Color) Channels() [3]uint8 {
	return [3]uint8{c.red, c.green, c.blue}
}

// String formats as rgb(r, g, b)
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.red, c.green, c.blue)
}

// Hex formats as lowercase #rrggbb
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	buf := [7]byte{'#'}
	for i, v := range c.Channels() {
		buf[1+i*2] = digits[v>>4]
		buf[2+i*2] = digits[v&0x0f]
	}
	return string(buf[:])
}
