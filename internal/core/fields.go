package core

import (
	"fmt"
	"strings"
)

// Fields holds one row's cells normalized according to a dataset's FieldSpecs.
type Fields struct {
	key    string
	intKey int64
	text   map[string]OptionalText
	lists  map[string][]string
}

// NormalizeRow applies each FieldSpec's normalization to row:
//
//   - FieldKey / FieldIntKey: trimmed; blank returns ErrBlankKey
//   - FieldIntKey: must parse as an integer, else a *RowError wrapping ErrInvalidKey
//   - FieldList: SplitList
//   - FieldText: ToOptional
func NormalizeRow(specs []FieldSpec, row Row) (Fields, error) {
	f := Fields{
		text:  make(map[string]OptionalText, len(specs)),
		lists: make(map[string][]string, len(specs)),
	}

	for _, spec := range specs {
		raw := row.Cell(spec.Name)

		switch spec.Kind {
		case FieldKey, FieldIntKey:
			key := strings.TrimSpace(raw)
			if key == "" {
				return Fields{}, ErrBlankKey
			}
			if spec.Kind == FieldIntKey {
				id, err := ParseIntKey(key)
				if err != nil {
					return Fields{}, &RowError{
						Line:   row.Line,
						Column: spec.Name,
						Value:  key,
						Err:    fmt.Errorf("%w: %v", ErrInvalidKey, err),
					}
				}
				f.intKey = id
			}
			f.key = key

		case FieldList:
			f.lists[spec.Name] = SplitList(raw)

		default:
			f.text[spec.Name] = ToOptional(raw)
		}
	}

	return f, nil
}

// Key returns the trimmed key cell.
func (f Fields) Key() string { return f.key }

// IntKey returns the parsed key of a FieldIntKey column.
func (f Fields) IntKey() int64 { return f.intKey }

// Text returns a FieldText column. Undeclared columns are absent.
func (f Fields) Text(name string) OptionalText { return f.text[name] }

// List returns a FieldList column. Undeclared columns are empty, never nil.
func (f Fields) List(name string) []string {
	if l, ok := f.lists[name]; ok {
		return l
	}
	return []string{}
}
