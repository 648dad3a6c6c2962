// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/rgbconv/rgb"
)

// Pre-allocated ANSI sequence fragments
var (
	csiReset = []byte("\x1b[0m")
	csiBg256 = []byte("\x1b[48;5;") // followed by N;m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B;m
)

// swatchCells is the width of the colored block in cells
const swatchCells = 2

// WriteSwatch writes a colored block for c followed by label and a newline
// 256 mode emits the nearest palette index instead of the exact color
func WriteSwatch(w io.Writer, c rgb.Color, mode ColorMode, label string) error {
	bw := bufio.NewWriter(w)
	writeBg(bw, c, mode)
	for i := 0; i < swatchCells; i++ {
		bw.WriteByte(' ')
	}
	bw.Write(csiReset)
	if label != "" {
		bw.WriteByte(' ')
		bw.WriteString(label)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// writeBg writes the background color sequence for the given mode
func writeBg(w *bufio.Writer, c rgb.Color, mode ColorMode) {
	if mode == ColorModeTrueColor {
		r, g, b := c.RGB()
		w.Write(csiBgRGB)
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		w.WriteByte('m')
		return
	}
	w.Write(csiBg256)
	writeInt(w, int(Index256(c)))
	w.WriteByte('m')
}

// writeInt writes a small non-negative integer without allocation
// Channel and palette values are always 0-255
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n >= 100 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n >= 10 {
		w.WriteByte(byte(n/10) + '0')
	}
	w.WriteByte(byte(n%10) + '0')
}
