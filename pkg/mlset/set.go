package mlset

import (
	"math"
	"strconv"

	"github.com/nlpodyssey/spago/pkg/mat"

	"github.com/gaschu95/MachineLearningSets/pkg/io"
	"github.com/gaschu95/MachineLearningSets/pkg/schema"
)

// Options configures a single matrix construction.
//
// Dictionary and Stats are shared, caller-owned state: pass the instances
// returned by an earlier construction to encode a related dataset with the
// same codes and on the same scale. Left nil, fresh empty instances are
// created and returned. Sharing one instance between concurrent
// constructions is the caller's mistake; nothing guards against it.
type Options struct {
	Dictionary *CategoryDictionary
	Stats      NormStats
	NaNPolicy  NaNPolicy
}

// Set is the result of one construction: the encoded input and target
// matrices plus the (possibly caller-supplied, now grown) dictionary and
// statistics to hand to the next construction over a related dataset.
type Set struct {
	Input  *mat.Dense
	Target *mat.Dense

	Schema     schema.Classification
	Dictionary *CategoryDictionary
	Stats      NormStats
}

// Construct converts a table into an input and a target matrix following
// the declared feature schema: categorical cells are coded through the
// dictionary, continuous cells parsed and z-score normalized, categorical
// columns one-hot expanded and, when the policy asks for it, rows with
// missing values dropped. Column order follows declaration order, with
// each categorical column replaced in place by its expansion block.
//
// The first error aborts the construction; no partial matrices are
// returned. Cells of declared fields absent from the table, or from a
// short record, are NaN.
func Construct(table *io.Table, features schema.Schema, opts Options) (*Set, error) {
	if opts.NaNPolicy == "" {
		opts.NaNPolicy = NaNIgnore
	}
	policy, err := ParseNaNPolicy(string(opts.NaNPolicy))
	if err != nil {
		return nil, err
	}

	classified, err := schema.Classify(features)
	if err != nil {
		return nil, err
	}

	dict := opts.Dictionary
	if dict == nil {
		dict = NewCategoryDictionary()
	}
	stats := opts.Stats
	if stats == nil {
		stats = NormStats{}
	}

	input, err := tabulate(table, classified.Input, dict)
	if err != nil {
		return nil, err
	}
	target, err := tabulate(table, classified.Target, dict)
	if err != nil {
		return nil, err
	}

	normalize(input, classified.Input, stats)
	normalize(target, classified.Target, stats)

	if input, err = expand(input, classified.Input, dict); err != nil {
		return nil, err
	}
	if target, err = expand(target, classified.Target, dict); err != nil {
		return nil, err
	}

	if policy == NaNDeleteRow {
		input, target = dropNaNRows(input, target)
	}

	return &Set{
		Input:      input,
		Target:     target,
		Schema:     classified,
		Dictionary: dict,
		Stats:      stats,
	}, nil
}

// tabulate fills one raw matrix with one column per declared field, in
// declaration order. Continuous cells are parsed as floats, the empty
// string mapping to NaN; categorical cells are coded through the
// dictionary. Cells of fields the table does not carry stay NaN.
func tabulate(table *io.Table, fields schema.Schema, dict *CategoryDictionary) (*mat.Dense, error) {
	m := mat.NewInitDense(table.Len(), len(fields), math.NaN())
	for r := 0; r < table.Len(); r++ {
		for c, f := range fields {
			raw, ok := table.Field(r, f.Name)
			if !ok {
				continue
			}
			if f.Kind.IsCategorical() {
				m.Set(r, c, float64(dict.CodeOf(f.Name, raw)))
				continue
			}
			if raw == "" {
				continue
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &ParseError{Record: r, Field: f.Name, Err: err}
			}
			m.Set(r, c, value)
		}
	}
	return m, nil
}
