package weir

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
)

// Table is the immutable, distance-ordered set of normalized sections.
type Table struct {
	rows []Row
}

// BuildTable validates the raw measurements and produces the normalized table.
// Column lengths are checked before any row is built, so a failure never
// yields a partial table.
func BuildTable(m Measurements) (*Table, error) {
	n := len(m.IDs)
	cols := []struct {
		name string
		len  int
	}{
		{"station", len(m.Station)},
		{"bottom offset", len(m.BottomOffset)},
		{"crest elevation", len(m.CrestElevation)},
		{"depth", len(m.Depth)},
	}
	for _, c := range cols {
		if c.len != n {
			return nil, fmt.Errorf("%w: %d ids but %d %s values", ErrLengthMismatch, n, c.len, c.name)
		}
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	for i := 1; i < n; i++ {
		if !(m.Station[i] > m.Station[i-1]) {
			return nil, fmt.Errorf("%w: %s at %v follows %s at %v",
				ErrUnordered, m.IDs[i], m.Station[i], m.IDs[i-1], m.Station[i-1])
		}
	}

	origin := m.Station[0]
	rows := make([]Row, n)
	for i := range rows {
		r := Row{
			ID:        m.IDs[i],
			X:         m.Station[i] - origin,
			DZ:        centimetres(m.BottomOffset[i]),
			Elevation: centimetres(m.CrestElevation[i]),
			Depth:     centimetres(m.Depth[i]),
		}
		r.EffectiveDepth = r.Depth - r.DZ
		r.EffectiveDepth2 = r.EffectiveDepth - r.Elevation
		rows[i] = r
	}

	return &Table{rows: rows}, nil
}

// Len returns the number of sections.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns a copy of section i.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns a copy of all sections in distance order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Column extracts one value per section, in distance order.
func (t *Table) Column(f func(Row) float64) []float64 {
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = f(r)
	}
	return out
}

func centimetres(v float64) float64 {
	return float64(unit.Length(v * unit.Centi))
}
