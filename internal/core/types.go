package core

import "sort"

// Size describes pixel or cell dimensions.
type Size struct {
	W int
	H int
}

// Surface is the drawing target the viewport paints cells onto.
type Surface interface {
	// FillRect paints a w*h rectangle at pixel (x, y) using the palette
	// entry colorIndex. Rectangles may extend past the surface bounds.
	FillRect(colorIndex, x, y, w, h int)
	// Size reports the current pixel dimensions of the surface.
	Size() (w, h int)
}

// Sequence produces the value of row 0 at the given column.
type Sequence func(col int) uint8

// SequenceFactory builds a Sequence for the given base and seed.
type SequenceFactory func(base int, seed int64) Sequence

var sequences = map[string]SequenceFactory{}

// RegisterSequence adds a starting-sequence factory under the provided name.
func RegisterSequence(name string, f SequenceFactory) {
	if name == "" || f == nil {
		return
	}
	sequences[name] = f
}

// Sequences exposes the registry of starting-sequence factories.
func Sequences() map[string]SequenceFactory {
	return sequences
}

// SequenceNames returns the registered names in sorted order.
func SequenceNames() []string {
	names := make([]string, 0, len(sequences))
	for name := range sequences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
