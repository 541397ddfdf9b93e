package mlset

import (
	"math"

	"github.com/nlpodyssey/spago/pkg/mat"

	"github.com/gaschu95/MachineLearningSets/pkg/schema"
)

// expand replaces every categorical column of m with its one-hot block.
// fields is the ordered non-ignored schema of m, one entry per raw column.
// The output layout is determined in a single left-to-right pass with one
// accumulating offset, and the expanded matrix is allocated exactly once.
func expand(m *mat.Dense, fields schema.Schema, dict *CategoryDictionary) (*mat.Dense, error) {
	widths := make([]int, len(fields))
	total := 0
	for i, f := range fields {
		widths[i] = 1
		if f.Kind.IsCategorical() {
			if k := dict.Size(f.Name); k > 2 {
				widths[i] = k
			}
		}
		total += widths[i]
	}

	out := mat.NewEmptyDense(m.Rows(), total)
	offset := 0
	for i, f := range fields {
		if !f.Kind.IsCategorical() {
			copyColumn(out, offset, m, i)
			offset++
			continue
		}
		block, err := oneHot(column(m, i), dict.Size(f.Name))
		if err != nil {
			return nil, err
		}
		pasteBlock(out, offset, block)
		offset += widths[i]
	}
	return out, nil
}

// oneHot expands a single column of integer codes into its binary
// encoding. With more than two classes the result has one column per
// class, holding a 1 in the coded class and 0 elsewhere. With two or fewer
// classes it collapses to a single indicator of code 0, i.e. of whichever
// class happened to be observed first, not of a semantically positive one.
// A NaN code yields a NaN block so a missing categorical value stays
// visible to the NaN policy.
func oneHot(codes *mat.Dense, classes int) (*mat.Dense, error) {
	if codes.Columns() != 1 {
		return nil, &ShapeError{Rows: codes.Rows(), Columns: codes.Columns()}
	}
	width := classes
	if classes <= 2 {
		width = 1
	}
	out := mat.NewEmptyDense(codes.Rows(), width)
	for r := 0; r < codes.Rows(); r++ {
		v := codes.At(r, 0)
		if math.IsNaN(v) {
			for c := 0; c < width; c++ {
				out.Set(r, c, math.NaN())
			}
			continue
		}
		if classes <= 2 {
			if int(v) == 0 {
				out.Set(r, 0, 1.0)
			}
			continue
		}
		out.Set(r, int(v), 1.0)
	}
	return out, nil
}

func column(m *mat.Dense, col int) *mat.Dense {
	data := make([]float64, m.Rows())
	for r := range data {
		data[r] = m.At(r, col)
	}
	return mat.NewVecDense(data)
}

func copyColumn(dst *mat.Dense, dstCol int, src *mat.Dense, srcCol int) {
	for r := 0; r < src.Rows(); r++ {
		dst.Set(r, dstCol, src.At(r, srcCol))
	}
}

func pasteBlock(dst *mat.Dense, offset int, block *mat.Dense) {
	for r := 0; r < block.Rows(); r++ {
		for c := 0; c < block.Columns(); c++ {
			dst.Set(r, offset+c, block.At(r, c))
		}
	}
}
