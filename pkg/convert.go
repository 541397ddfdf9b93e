package pkg

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nlpodyssey/spago/pkg/mat"
	"github.com/rs/zerolog/log"

	"github.com/gaschu95/MachineLearningSets/pkg/io"
	"github.com/gaschu95/MachineLearningSets/pkg/mlset"
	"github.com/gaschu95/MachineLearningSets/pkg/schema"
)

type ConvertParameters struct {
	DataFile    string
	SchemaFile  string
	OutputStem  string
	NaNPolicy   string
	ContextIn   string
	ContextOut  string
	PreviewRows int
}

// Convert runs one construction end to end: load the table and the
// schema, build the matrices, write them out and optionally persist the
// conversion context for the next related dataset.
func Convert(p ConvertParameters) error {
	features, err := schema.Load(p.SchemaFile)
	if err != nil {
		return err
	}

	data, err := io.Load(p.DataFile)
	if err != nil {
		return err
	}

	opts := mlset.Options{NaNPolicy: mlset.NaNPolicy(p.NaNPolicy)}
	if p.ContextIn != "" {
		ctx, err := loadContext(p.ContextIn)
		if err != nil {
			return err
		}
		opts.Dictionary = ctx.Dictionary
		opts.Stats = ctx.Stats
		log.Info().Str("File", p.ContextIn).Msg("Reusing conversion context")
	}

	set, err := mlset.Construct(data, features, opts)
	if err != nil {
		return err
	}

	log.Info().
		Int("Records", set.Input.Rows()).
		Int("InputColumns", set.Input.Columns()).
		Int("TargetColumns", set.Target.Columns()).
		Msg("Constructed matrices")

	if p.OutputStem != "" {
		if err := writeMatrix(set.Input, p.OutputStem+".input.csv"); err != nil {
			return err
		}
		if err := writeMatrix(set.Target, p.OutputStem+".target.csv"); err != nil {
			return err
		}
	}

	if p.ContextOut != "" {
		if err := saveContext(set, p.ContextOut); err != nil {
			return err
		}
	}

	if p.PreviewRows > 0 {
		preview(set, p.PreviewRows)
	}
	return nil
}

func loadContext(path string) (*mlset.Context, error) {
	contextFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening context file %s: %w", path, err)
	}
	defer contextFile.Close()
	return mlset.LoadContext(contextFile)
}

func saveContext(set *mlset.Set, path string) error {
	contextFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating context file %s: %w", path, err)
	}
	defer contextFile.Close()
	return mlset.SaveContext(&mlset.Context{Dictionary: set.Dictionary, Stats: set.Stats}, contextFile)
}

func writeMatrix(m *mat.Dense, path string) error {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file %s: %w", path, err)
	}
	defer outputFile.Close()

	writer := csv.NewWriter(outputFile)
	record := make([]string, m.Columns())
	for r := 0; r < m.Rows(); r++ {
		for c := range record {
			record[c] = strconv.FormatFloat(m.At(r, c), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func preview(set *mlset.Set, rows int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	header := table.Row{"#"}
	for c := 0; c < set.Input.Columns(); c++ {
		header = append(header, fmt.Sprintf("x%d", c))
	}
	for c := 0; c < set.Target.Columns(); c++ {
		header = append(header, fmt.Sprintf("y%d", c))
	}
	t.AppendHeader(header)

	if rows > set.Input.Rows() {
		rows = set.Input.Rows()
	}
	for r := 0; r < rows; r++ {
		row := table.Row{r}
		for c := 0; c < set.Input.Columns(); c++ {
			row = append(row, formatCell(set.Input.At(r, c)))
		}
		for c := 0; c < set.Target.Columns(); c++ {
			row = append(row, formatCell(set.Target.At(r, c)))
		}
		t.AppendRow(row)
	}
	t.Render()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
