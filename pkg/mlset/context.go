package mlset

import (
	"encoding/gob"
	"fmt"
	"io"
)

// Context bundles the dictionary and the normalization statistics of a
// problem so they can be persisted between process runs, e.g. when a
// training file is converted now and the matching test file in a later
// run.
type Context struct {
	Dictionary *CategoryDictionary
	Stats      NormStats
}

// SaveContext writes ctx in gob form.
func SaveContext(ctx *Context, writer io.Writer) error {
	encoder := gob.NewEncoder(writer)
	if err := encoder.Encode(ctx); err != nil {
		return fmt.Errorf("error encoding context: %w", err)
	}
	return nil
}

// LoadContext reads a context written by SaveContext.
func LoadContext(input io.Reader) (*Context, error) {
	decoder := gob.NewDecoder(input)
	ctx := &Context{}
	if err := decoder.Decode(ctx); err != nil {
		return nil, fmt.Errorf("error decoding context: %w", err)
	}
	return ctx, nil
}
