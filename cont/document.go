// Package cont decodes rule documents: files that map form field names to
// the rule set of each field, in JSON, YAML or TOML.
//
// A field is either a list of rule identifiers or a mapping of rule keys to
// options. Mapping keys that are plain integers hold a positional rule
// identifier as their value:
//
//	{
//	  "email":    ["required", "email"],
//	  "password": {"0": "required", "min": {"pattern": 8, "message": "Too short"}}
//	}
//
// TOML tables do not keep key order, so TOML fields are arrays whose items
// are identifiers or {rule, pattern, message} tables.
package cont

import (
	"github.com/cockroachdb/errors"

	"github.com/michaelolof/fieldrules/schema"
)

// ErrInvalidDocument marks errors caused by the shape of a rules document.
var ErrInvalidDocument = errors.New("invalid rules document")

type Field struct {
	Name  string
	Rules schema.RuleSet
}

// Document is an ordered collection of named rule sets.
type Document struct {
	fields []Field
	index  map[string]int
}

func newDocument() *Document {
	return &Document{index: make(map[string]int)}
}

func (d *Document) add(name string, rules schema.RuleSet) error {
	if _, ok := d.index[name]; ok {
		return invalidf("field %q is defined twice", name)
	}
	d.index[name] = len(d.fields)
	d.fields = append(d.fields, Field{Name: name, Rules: rules})
	return nil
}

// Get returns the rule set of a field.
func (d *Document) Get(name string) (schema.RuleSet, bool) {
	i, ok := d.index[name]
	if !ok {
		return schema.RuleSet{}, false
	}
	return d.fields[i].Rules, true
}

// Fields returns the fields in document order.
func (d *Document) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

func (d *Document) Names() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}
	return names
}

func invalidf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidDocument)
}
