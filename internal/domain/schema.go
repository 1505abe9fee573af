package domain

// FieldKind describes how a schema field is typed and collected.
type FieldKind string

const (
	FieldBool      FieldKind = "bool"
	FieldInt       FieldKind = "int"
	FieldFloat     FieldKind = "float"
	FieldEnum      FieldKind = "enum"
	FieldMultiEnum FieldKind = "multi_enum"
	FieldText      FieldKind = "text"
)

// Field is one entry in a domain's fixed schema.
type Field struct {
	Key      string
	Title    string
	Kind     FieldKind
	Required bool
	// Options lists the allowed values for enum and multi_enum fields,
	// in the order forms should present them.
	Options []string
	// Min and Max bound int fields (inclusive). Unused for other kinds.
	Min, Max int
}

// Schema is a domain's fixed, ordered field list. The ordering is the
// canonical record_keys ordering and drives form layout and exports.
type Schema struct {
	Domain Domain
	Fields []Field
}

// Keys returns the field keys in schema order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Field looks up a field definition by key.
func (s Schema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// NotesKeys returns the keys of free-text fields, in schema order. These are
// the only fields the safety guardrail scans.
func (s Schema) NotesKeys() []string {
	var keys []string
	for _, f := range s.Fields {
		if f.Kind == FieldText {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Validate checks that every required field is present on the record.
// Optional fields may be absent; they read as neutral values.
func (s Schema) Validate(r *Record) error {
	for _, f := range s.Fields {
		if f.Required && !r.Has(f.Key) {
			return &SchemaError{Domain: s.Domain, Field: f.Key}
		}
	}
	return nil
}

// SchemaFor returns the fixed schema of a registered domain.
func SchemaFor(d Domain) (Schema, error) {
	s, ok := schemas[d]
	if !ok {
		return Schema{}, &UnknownDomainError{Name: string(d)}
	}
	return s, nil
}
