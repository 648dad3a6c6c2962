// @focus: #config { palette }
// Package palette loads named colors from TOML and resolves nearest matches.
package palette

import (
	"math"
	"sort"

	"github.com/lixenwraith/rgbconv/rgb"
)

// Palette is an immutable set of named, validated colors
type Palette struct {
	names  []string
	colors map[string]rgb.Color
}

// New builds a palette from already validated colors
func New(colors map[string]rgb.Color) *Palette {
	p := &Palette{
		names:  make([]string, 0, len(colors)),
		colors: make(map[string]rgb.Color, len(colors)),
	}
	for name, c := range colors {
		p.names = append(p.names, name)
		p.colors[name] = c
	}
	sort.Strings(p.names)
	return p
}

// Len returns the number of entries
func (p *Palette) Len() int {
	return len(p.names)
}

// Names returns entry names in sorted order
func (p *Palette) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Get returns the named color
func (p *Palette) Get(name string) (rgb.Color, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// Range iterates entries in sorted name order until fn returns false
func (p *Palette) Range(fn func(name string, c rgb.Color) bool) {
	for _, name := range p.names {
		if !fn(name, p.colors[name]) {
			return
		}
	}
}

// Nearest returns the entry perceptually closest to c by CIEDE2000 distance
// Ties resolve to the first name in sorted order; ok is false for an empty palette
func (p *Palette) Nearest(c rgb.Color) (name string, dist float64, ok bool) {
	target := c.Colorful()
	dist = math.Inf(1)
	for _, n := range p.names {
		d := target.DistanceCIEDE2000(p.colors[n].Colorful())
		if d < dist {
			name, dist, ok = n, d, true
		}
	}
	if !ok {
		dist = 0
	}
	return name, dist, ok
}
