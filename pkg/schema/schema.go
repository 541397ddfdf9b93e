package schema

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// Kind classifies how a declared field contributes to the constructed
// matrices.
type Kind string

const (
	// Continuous fields hold numeric values and land in the input matrix.
	Continuous Kind = "continuous"
	// Categorical fields hold discrete values, coded through the category
	// dictionary, and land in the input matrix.
	Categorical Kind = "categorical"
	// TargetContinuous is a numeric value the learning algorithm should
	// predict; it lands in the target matrix.
	TargetContinuous Kind = "target_continuous"
	// TargetCategorical is a discrete value to predict; it lands in the
	// target matrix.
	TargetCategorical Kind = "target_categorical"
	// Ignored fields are represented in neither matrix.
	Ignored Kind = "ignore"
)

// SchemaError reports a feature declared with an unrecognized kind.
type SchemaError struct {
	Field string
	Kind  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("feature %s: unknown kind %q", e.Field, e.Kind)
}

// ParseKind validates the string form of a kind.
func ParseKind(field, kind string) (Kind, error) {
	switch Kind(kind) {
	case Continuous, Categorical, TargetContinuous, TargetCategorical, Ignored:
		return Kind(kind), nil
	}
	return "", &SchemaError{Field: field, Kind: kind}
}

// IsContinuous reports whether fields of this kind hold numeric values.
func (k Kind) IsContinuous() bool {
	return k == Continuous || k == TargetContinuous
}

// IsCategorical reports whether fields of this kind are coded through the
// category dictionary.
func (k Kind) IsCategorical() bool {
	return k == Categorical || k == TargetCategorical
}

// IsTarget reports whether fields of this kind belong to the target matrix.
func (k Kind) IsTarget() bool {
	return k == TargetContinuous || k == TargetCategorical
}

// Feature pairs a field name with its kind. The name has to match the
// column name in the data header.
type Feature struct {
	Name string
	Kind Kind
}

// Schema is an ordered feature declaration. Order is significant: it fixes
// the column order of the constructed matrices.
type Schema []Feature

// Classification splits a schema into the ignored fields, the fields of
// the input matrix and the fields of the target matrix, each preserving
// declaration order.
type Classification struct {
	Ignored Schema
	Input   Schema
	Target  Schema
}

// Classify partitions s by kind. It fails with a SchemaError on the first
// unrecognized kind.
func Classify(s Schema) (Classification, error) {
	var c Classification
	for _, f := range s {
		switch f.Kind {
		case Ignored:
			c.Ignored = append(c.Ignored, f)
		case Continuous, Categorical:
			c.Input = append(c.Input, f)
		case TargetContinuous, TargetCategorical:
			c.Target = append(c.Target, f)
		default:
			return Classification{}, &SchemaError{Field: f.Name, Kind: string(f.Kind)}
		}
	}
	return c, nil
}

// Parse reads a schema from its YAML form: a list of single-entry
// `name: kind` maps. The list form keeps the declaration order that a
// plain YAML map would lose.
func Parse(data []byte) (Schema, error) {
	var entries []map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing schema: %w", err)
	}
	s := make(Schema, 0, len(entries))
	for i, entry := range entries {
		if len(entry) != 1 {
			return nil, fmt.Errorf("schema entry %d must declare exactly one feature, got %d", i, len(entry))
		}
		for name, kindName := range entry {
			kind, err := ParseKind(name, kindName)
			if err != nil {
				return nil, err
			}
			s = append(s, Feature{Name: name, Kind: kind})
		}
	}
	return s, nil
}

// Load reads a schema file.
func Load(path string) (Schema, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading schema file: %w", err)
	}
	return Parse(data)
}
