package mlset

import (
	"math"

	"github.com/nlpodyssey/spago/pkg/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gaschu95/MachineLearningSets/pkg/schema"
)

// ColumnStats holds the z-score parameters of one continuous feature.
type ColumnStats struct {
	Mean float64
	Std  float64
}

// NormStats maps a continuous feature name to its normalization
// statistics. An entry is computed from the first dataset it is missing
// for and applied verbatim afterwards, so a test set handed the training
// set's stats is rescaled on the training scale. Like the category
// dictionary it is caller-owned shared state, mutated in place.
type NormStats map[string]ColumnStats

// normalize rescales every continuous column of m to zero mean and unit
// standard deviation. fields is the ordered non-ignored schema of m, one
// entry per raw column, so the column index of a field is its position in
// fields. NaN cells are ignored when computing statistics and propagate
// unchanged through the rescaling. A zero standard deviation turns every
// value of the column into NaN rather than tripping over a division by
// zero.
func normalize(m *mat.Dense, fields schema.Schema, stats NormStats) {
	for c, f := range fields {
		if !f.Kind.IsContinuous() {
			continue
		}
		s, ok := stats[f.Name]
		if !ok {
			s = columnStats(m, c)
			stats[f.Name] = s
		}
		for r := 0; r < m.Rows(); r++ {
			v := m.At(r, c)
			if math.IsNaN(v) {
				continue
			}
			if s.Std == 0 {
				m.Set(r, c, math.NaN())
				continue
			}
			m.Set(r, c, (v-s.Mean)/s.Std)
		}
	}
}

// columnStats computes mean and population standard deviation of a column
// over its finite cells. A column with no finite cells gets NaN
// statistics.
func columnStats(m *mat.Dense, col int) ColumnStats {
	values := make([]float64, 0, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		if v := m.At(r, col); !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return ColumnStats{Mean: math.NaN(), Std: math.NaN()}
	}
	return ColumnStats{
		Mean: stat.Mean(values, nil),
		Std:  stat.PopStdDev(values, nil),
	}
}
