package mlset

// ClassMap implements a bidirectional mapping between a raw categorical
// value and its integer code. Fields are exported so the map survives gob
// encoding.
type ClassMap struct {
	ValueToCode map[string]int
	CodeToValue map[int]string
}

func NewClassMap() *ClassMap {
	return &ClassMap{
		ValueToCode: map[string]int{},
		CodeToValue: map[int]string{},
	}
}

func (c *ClassMap) Set(value string, code int) {
	c.ValueToCode[value] = code
	c.CodeToValue[code] = value
}

func (c *ClassMap) Size() int {
	return len(c.ValueToCode)
}

// CategoryDictionary records, per categorical field, the distinct raw
// values observed for it in observation order. A value's position is its
// code. Codes are append-only: once assigned they never change, so a
// dictionary built while encoding one dataset can be handed to the
// construction of a later, related dataset to keep the encodings
// comparable. Values the later dataset introduces extend the sequence
// without disturbing existing codes.
//
// The dictionary is caller-owned shared state. One construction at a time:
// sharing an instance between concurrent constructions is not supported.
type CategoryDictionary struct {
	Classes map[string]*ClassMap
}

func NewCategoryDictionary() *CategoryDictionary {
	return &CategoryDictionary{Classes: map[string]*ClassMap{}}
}

// CodeOf returns the code of value within field, assigning the next free
// code if the value has not been observed before.
func (d *CategoryDictionary) CodeOf(field, value string) int {
	classes, ok := d.Classes[field]
	if !ok {
		classes = NewClassMap()
		d.Classes[field] = classes
	}
	code, ok := classes.ValueToCode[value]
	if !ok {
		code = classes.Size()
		classes.Set(value, code)
	}
	return code
}

// Lookup returns the code of value within field without assigning one.
func (d *CategoryDictionary) Lookup(field, value string) (int, bool) {
	classes, ok := d.Classes[field]
	if !ok {
		return 0, false
	}
	code, ok := classes.ValueToCode[value]
	return code, ok
}

// Size returns the number of distinct values observed for field.
func (d *CategoryDictionary) Size(field string) int {
	classes, ok := d.Classes[field]
	if !ok {
		return 0
	}
	return classes.Size()
}

// Values returns the observed values of field ordered by code.
func (d *CategoryDictionary) Values(field string) []string {
	classes, ok := d.Classes[field]
	if !ok {
		return nil
	}
	values := make([]string, classes.Size())
	for code := range values {
		values[code] = classes.CodeToValue[code]
	}
	return values
}
