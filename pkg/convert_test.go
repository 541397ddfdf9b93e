package pkg

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readMatrixFile(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestConvertTrainThenTest(t *testing.T) {
	dir := t.TempDir()
	contextFile := filepath.Join(dir, "titanic.context")

	err := Convert(ConvertParameters{
		DataFile:   "../datasets/titanic/titanic.train",
		SchemaFile: "../datasets/titanic/schema.yaml",
		OutputStem: filepath.Join(dir, "train"),
		NaNPolicy:  "ignore",
		ContextOut: contextFile,
	})
	require.NoError(t, err)

	// Pclass and Embarked expand to 3 columns each, Sex collapses to 1,
	// plus Age, SibSp, Parch and Fare
	trainInput := readMatrixFile(t, filepath.Join(dir, "train.input.csv"))
	require.Len(t, trainInput, 10)
	require.Len(t, trainInput[0], 11)

	trainTarget := readMatrixFile(t, filepath.Join(dir, "train.target.csv"))
	require.Len(t, trainTarget, 10)
	require.Len(t, trainTarget[0], 1)

	// the test file is encoded with the training context, so the widths
	// and codes line up with the training matrices
	err = Convert(ConvertParameters{
		DataFile:   "../datasets/titanic/titanic.test",
		SchemaFile: "../datasets/titanic/schema.yaml",
		OutputStem: filepath.Join(dir, "test"),
		NaNPolicy:  "ignore",
		ContextIn:  contextFile,
	})
	require.NoError(t, err)

	testInput := readMatrixFile(t, filepath.Join(dir, "test.input.csv"))
	require.Len(t, testInput, 4)
	require.Len(t, testInput[0], 11)
}

func TestConvertDeleteRowPolicy(t *testing.T) {
	dir := t.TempDir()

	err := Convert(ConvertParameters{
		DataFile:   "../datasets/titanic/titanic.train",
		SchemaFile: "../datasets/titanic/schema.yaml",
		OutputStem: filepath.Join(dir, "train"),
		NaNPolicy:  "delete_row",
	})
	require.NoError(t, err)

	// one record has no Age
	trainInput := readMatrixFile(t, filepath.Join(dir, "train.input.csv"))
	require.Len(t, trainInput, 9)
	trainTarget := readMatrixFile(t, filepath.Join(dir, "train.target.csv"))
	require.Len(t, trainTarget, 9)
}

func TestConvertUnsupportedPolicy(t *testing.T) {
	err := Convert(ConvertParameters{
		DataFile:   "../datasets/titanic/titanic.train",
		SchemaFile: "../datasets/titanic/schema.yaml",
		NaNPolicy:  "median",
	})
	require.Error(t, err)
}

func TestConvertMissingSchemaFile(t *testing.T) {
	err := Convert(ConvertParameters{
		DataFile:   "../datasets/titanic/titanic.train",
		SchemaFile: "does-not-exist.yaml",
	})
	require.Error(t, err)
}
