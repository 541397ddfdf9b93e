package mlset

import (
	"errors"
	"math"
	"testing"

	"github.com/nlpodyssey/spago/pkg/mat"
	"github.com/stretchr/testify/require"

	"github.com/gaschu95/MachineLearningSets/pkg/schema"
)

func TestOneHotCollapsesTwoClasses(t *testing.T) {
	// codes for "x","y","x"
	codes := mat.NewVecDense([]float64{0, 1, 0})

	encoded, err := oneHot(codes, 2)
	require.NoError(t, err)
	require.Equal(t, 3, encoded.Rows())
	require.Equal(t, 1, encoded.Columns())
	require.Equal(t, []float64{1, 0, 1}, encoded.Data())
}

func TestOneHotThreeClasses(t *testing.T) {
	codes := mat.NewVecDense([]float64{2, 0, 1, 2})

	encoded, err := oneHot(codes, 3)
	require.NoError(t, err)
	require.Equal(t, 3, encoded.Columns())

	for r := 0; r < encoded.Rows(); r++ {
		ones := 0
		for c := 0; c < encoded.Columns(); c++ {
			switch encoded.At(r, c) {
			case 1.0:
				ones++
			case 0.0:
			default:
				t.Fatalf("unexpected cell value %f", encoded.At(r, c))
			}
		}
		require.Equal(t, 1, ones)
	}
	require.Equal(t, 1.0, encoded.At(0, 2))
	require.Equal(t, 1.0, encoded.At(1, 0))
	require.Equal(t, 1.0, encoded.At(2, 1))
}

func TestOneHotSingleClass(t *testing.T) {
	codes := mat.NewVecDense([]float64{0, 0})

	encoded, err := oneHot(codes, 1)
	require.NoError(t, err)
	require.Equal(t, 1, encoded.Columns())
	require.Equal(t, []float64{1, 1}, encoded.Data())
}

func TestOneHotPropagatesNaN(t *testing.T) {
	codes := mat.NewVecDense([]float64{0, math.NaN(), 2})

	encoded, err := oneHot(codes, 3)
	require.NoError(t, err)
	for c := 0; c < encoded.Columns(); c++ {
		require.True(t, math.IsNaN(encoded.At(1, c)))
	}
	require.Equal(t, 1.0, encoded.At(0, 0))
	require.Equal(t, 1.0, encoded.At(2, 2))
}

func TestOneHotRejectsNonColumn(t *testing.T) {
	_, err := oneHot(mat.NewEmptyDense(3, 2), 3)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	require.Equal(t, 3, shapeErr.Rows)
	require.Equal(t, 2, shapeErr.Columns)
}

func TestExpandTracksOffsets(t *testing.T) {
	// three fields: a 3-class categorical, a continuous, a 2-class
	// categorical; the first expansion shifts everything after it
	dict := NewCategoryDictionary()
	dict.CodeOf("Embarked", "S")
	dict.CodeOf("Embarked", "C")
	dict.CodeOf("Embarked", "Q")
	dict.CodeOf("Sex", "male")
	dict.CodeOf("Sex", "female")

	fields := schema.Schema{
		{Name: "Embarked", Kind: schema.Categorical},
		{Name: "Age", Kind: schema.Continuous},
		{Name: "Sex", Kind: schema.Categorical},
	}
	m := mat.NewDense(2, 3, []float64{
		1, 0.5, 0,
		2, -0.5, 1,
	})

	out, err := expand(m, fields, dict)
	require.NoError(t, err)
	require.Equal(t, 5, out.Columns())
	require.Equal(t, []float64{
		0, 1, 0, 0.5, 1,
		0, 0, 1, -0.5, 0,
	}, out.Data())
}

func TestExpandLeavesContinuousOnlyMatrixAlone(t *testing.T) {
	fields := schema.Schema{
		{Name: "Age", Kind: schema.Continuous},
		{Name: "Fare", Kind: schema.Continuous},
	}
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	out, err := expand(m, fields, NewCategoryDictionary())
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, out.Data())
}
