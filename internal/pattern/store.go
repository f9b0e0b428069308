// Package pattern generates the Kent Pattern: a grid whose first row comes
// from a starting sequence and whose every other cell is the sum of its left
// and upper neighbours modulo a base. Cells are computed on first use and
// memoized for the lifetime of the Store.
package pattern

import (
	"fmt"
	"math"
	"time"

	"kent-pattern/internal/core"
)

const (
	// MinBase is the smallest supported modulus.
	MinBase = 2
	// MaxBase is the largest modulus whose values still fit a byte.
	MaxBase = 256
)

// Store owns the lazily-materialized pattern grid. Rows are gap-free prefixes
// of the infinite row; they only ever grow.
type Store struct {
	base int
	seq  core.Sequence
	name string

	rows      [][]uint8
	generated int
}

// New returns a Store using base and seq to fill the first row.
func New(base int, seq core.Sequence) (*Store, error) {
	s := &Store{}
	if err := s.Configure(base, seq); err != nil {
		return nil, err
	}
	s.name = "custom"
	return s, nil
}

// NewWithConfig returns a Store whose starting sequence is looked up by name
// in the sequence registry.
func NewWithConfig(cfg Config) (*Store, error) {
	factory, ok := core.Sequences()[cfg.Sequence]
	if !ok {
		return nil, fmt.Errorf("%w: unknown starting sequence %q", ErrConfiguration, cfg.Sequence)
	}
	if err := validateBase(cfg.Base); err != nil {
		return nil, err
	}
	s, err := New(cfg.Base, factory(cfg.Base, cfg.Seed))
	if err != nil {
		return nil, err
	}
	s.name = cfg.Sequence
	return s, nil
}

func validateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: base %d outside [%d, %d]", ErrConfiguration, base, MinBase, MaxBase)
	}
	return nil
}

// Configure replaces the base and starting sequence. Any cells generated
// under the previous rule are discarded.
func (s *Store) Configure(base int, seq core.Sequence) error {
	if err := validateBase(base); err != nil {
		return err
	}
	if seq == nil {
		return fmt.Errorf("%w: starting sequence is nil", ErrConfiguration)
	}
	s.base = base
	s.seq = seq
	s.name = "custom"
	s.Reset()
	return nil
}

// Reset drops every materialized cell.
func (s *Store) Reset() {
	s.rows = nil
	s.generated = 0
}

// Base returns the modulus of the recurrence.
func (s *Store) Base() int { return s.base }

// Generated returns the number of materialized cells.
func (s *Store) Generated() int { return s.generated }

// GetArea returns the cells in columns [x, x+w) of rows [y, y+h), generating
// whatever is missing first.
func (s *Store) GetArea(x, y, w, h int) (*core.ByteGrid, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x > math.MaxInt-w || y > math.MaxInt-h {
		return nil, fmt.Errorf("%w: area (%d,%d %dx%d)", ErrInvalidQuery, x, y, w, h)
	}
	area := core.NewByteGrid(x, y, w, h)
	if area.Empty() {
		return area, nil
	}

	start := time.Now()
	count := s.generate(x+w, y+h)
	if count > 0 {
		Logger().Debug("generated pattern cells",
			"cells", count,
			"elapsed", time.Since(start),
			"rows", len(s.rows))
	}

	for i := 0; i < h; i++ {
		copy(area.Row(i), s.rows[y+i][x:x+w])
	}
	return area, nil
}

// Rows is GetArea returning a [h][w] slice.
func (s *Store) Rows(x, y, w, h int) ([][]uint8, error) {
	area, err := s.GetArea(x, y, w, h)
	if err != nil {
		return nil, err
	}
	return area.Rows(), nil
}

// generate extends rows [0, endY) to at least endX columns and reports how
// many cells it computed.
func (s *Store) generate(endX, endY int) int {
	count := 0
	for len(s.rows) < endY {
		s.rows = append(s.rows, nil)
	}
	for i := 0; i < endY; i++ {
		row := s.rows[i]
		for j := len(row); j < endX; j++ {
			var v uint8
			switch {
			case i == 0:
				v = uint8(int(s.seq(j)) % s.base)
			case j == 0:
				// No left neighbour: copy the value above.
				v = s.rows[i-1][0]
			default:
				v = uint8((int(row[j-1]) + int(s.rows[i-1][j])) % s.base)
			}
			row = append(row, v)
			count++
		}
		s.rows[i] = row
	}
	s.generated += count
	return count
}

// Parameters describes the store for the HUD.
func (s *Store) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Pattern",
		Params: []core.Parameter{
			core.IntParam("base", "Base", s.base),
			core.StringParam("seq", "Sequence", s.name),
			core.IntParam("generated", "Cells", s.generated),
			core.IntParam("rows", "Rows", len(s.rows)),
		},
	}}}
}
