package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette maps cell values to colors.
type Palette []color.RGBA

// DefaultPalette is white for 0 and black for 1.
func DefaultPalette() Palette {
	return Palette{
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	}
}

// Color returns the entry for index, clamping out-of-range indices to the
// nearest entry. An empty palette yields transparent black.
func (p Palette) Color(index int) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	if index < 0 {
		index = 0
	}
	if last := len(p) - 1; index > last {
		index = last
	}
	return p[index]
}

// ParsePalette parses a comma-separated list of CSS hex colors such as
// "#FFF,#000" or "ff8800,#123456".
func ParsePalette(s string) (Palette, error) {
	var p Palette
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		c, err := parseHex(field)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("render: empty palette %q", s)
	}
	return p, nil
}

func parseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("render: bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// String formats the palette in the form accepted by ParsePalette.
func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return strings.Join(parts, ",")
}
