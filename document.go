package configfile

// Document is the schema-less intermediate representation of a configuration:
// a mapping from field name to an arbitrarily-typed value (nested mapping,
// sequence, scalar, or nil). Base documents are parsed from YAML files,
// override documents from JSON environment values; both live only until the
// merged result is decoded into the target type.
type Document map[string]any

// Merge applies override onto d with shallow replace-by-key semantics: every
// top-level key of the override replaces the entire value under the same key
// in d, inserting where absent. Keys missing from the override keep their
// base values. Nested structures are never combined, so an override carrying
// a nested object replaces the base's object wholesale.
//
// Merge mutates d and returns it.
func (d Document) Merge(override Document) Document {
	for key, value := range override {
		d[key] = value
	}

	return d
}

// asDocument reports whether a decoded top-level value is a mapping and
// converts it. Mappings with non-string keys (legal in YAML) are rejected:
// configuration field names are strings.
func asDocument(v any) (Document, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Document(m), true
	case Document:
		return m, true
	default:
		return nil, false
	}
}
