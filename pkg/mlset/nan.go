package mlset

import (
	"math"

	"github.com/nlpodyssey/spago/pkg/mat"
)

// NaNPolicy selects how rows containing missing values are treated after
// encoding.
type NaNPolicy string

const (
	// NaNIgnore leaves NaN cells in the final matrices.
	NaNIgnore NaNPolicy = "ignore"
	// NaNDeleteRow removes every row holding a NaN in either matrix from
	// both, keeping them row-aligned.
	NaNDeleteRow NaNPolicy = "delete_row"
)

// ParseNaNPolicy validates a policy name. Anything but the supported
// values fails; there is no silent fallback to NaNIgnore. Mean, median and
// mode imputation and column deletion are reserved policy names, not
// implemented.
func ParseNaNPolicy(s string) (NaNPolicy, error) {
	switch NaNPolicy(s) {
	case NaNIgnore, NaNDeleteRow:
		return NaNPolicy(s), nil
	}
	return "", &UnsupportedError{Policy: s}
}

// dropNaNRows removes every row that contains a NaN in either matrix. Both
// matrices lose exactly the same rows.
func dropNaNRows(input, target *mat.Dense) (*mat.Dense, *mat.Dense) {
	keep := make([]int, 0, input.Rows())
	for r := 0; r < input.Rows(); r++ {
		if !rowHasNaN(input, r) && !rowHasNaN(target, r) {
			keep = append(keep, r)
		}
	}
	return selectRows(input, keep), selectRows(target, keep)
}

func rowHasNaN(m *mat.Dense, row int) bool {
	for c := 0; c < m.Columns(); c++ {
		if math.IsNaN(m.At(row, c)) {
			return true
		}
	}
	return false
}

func selectRows(m *mat.Dense, rows []int) *mat.Dense {
	out := mat.NewEmptyDense(len(rows), m.Columns())
	for i, r := range rows {
		for c := 0; c < m.Columns(); c++ {
			out.Set(i, c, m.At(r, c))
		}
	}
	return out
}
