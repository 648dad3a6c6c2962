package palette

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/rgbconv/rgb"
)

//go:embed default.toml
var defaultTOML string

// document is the on-disk layout
type document struct {
	Colors map[string]any `toml:"colors"`
}

var defaultPalette = sync.OnceValue(func() *Palette {
	p, err := Load(strings.NewReader(defaultTOML))
	if err != nil {
		panic(fmt.Sprintf("palette: built-in palette invalid: %v", err))
	}
	return p
})

// Default returns the built-in palette
func Default() *Palette {
	return defaultPalette()
}

// LoadFile reads and converts a TOML palette file
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open palette")
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return p, errors.WithMessagef(err, "palette %s", path)
	}
	return p, nil
}

// Load decodes a TOML palette and converts every entry
// When some entries are invalid the valid ones are still returned together with an EntryErrors
func Load(r io.Reader) (*Palette, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "decode palette")
	}
	for _, key := range md.Undecoded() {
		// Everything under [colors] is validated per entry below
		if len(key) > 0 && key[0] != "colors" {
			return nil, errors.Errorf("unknown palette key %q", key.String())
		}
	}

	names := make([]string, 0, len(doc.Colors))
	for name := range doc.Colors {
		names = append(names, name)
	}
	sort.Strings(names)

	colors := make(map[string]rgb.Color, len(names))
	var bad EntryErrors
	for _, name := range names {
		c, err := convertEntry(doc.Colors[name])
		if err != nil {
			bad = append(bad, &EntryError{Name: name, Err: err})
			continue
		}
		colors[name] = c
	}

	p := New(colors)
	if len(bad) > 0 {
		return p, bad
	}
	return p, nil
}

// Encode writes the palette as TOML using hex strings
func (p *Palette) Encode(w io.Writer) error {
	doc := struct {
		Colors map[string]rgb.Color `toml:"colors"`
	}{Colors: p.colors}
	return errors.Wrap(toml.NewEncoder(w).Encode(doc), "encode palette")
}

// convertEntry dispatches on the TOML value shape
//
//	[r, g, b]                      -> rgb.FromSlice
//	{ red = r, green = g, blue = b } -> rgb.FromTuple
//	"#rrggbb"                      -> rgb.ParseHex
func convertEntry(v any) (rgb.Color, error) {
	switch val := v.(type) {
	case []any:
		vals := make([]int16, len(val))
		for i, e := range val {
			n, ok := e.(int64)
			if !ok {
				return rgb.Color{}, errors.Errorf("element %d: expected integer, got %T", i, e)
			}
			vals[i] = rgb.Saturate16(n)
		}
		return rgb.FromSlice(vals)

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k != "red" && k != "green" && k != "blue" {
				return rgb.Color{}, errors.Errorf("unknown channel %q", k)
			}
		}

		var ch [3]int16
		for i, key := range [3]string{"red", "green", "blue"} {
			raw, ok := val[key]
			if !ok {
				return rgb.Color{}, errors.Errorf("missing channel %q", key)
			}
			n, ok := raw.(int64)
			if !ok {
				return rgb.Color{}, errors.Errorf("channel %q: expected integer, got %T", key, raw)
			}
			ch[i] = rgb.Saturate16(n)
		}
		return rgb.FromTuple(ch[0], ch[1], ch[2])

	case string:
		return rgb.ParseHex(val)
	}
	return rgb.Color{}, errors.Errorf("unsupported value type %T", v)
}
