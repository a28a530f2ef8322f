package configfile

import (
	"encoding/json"
	"os"
)

// ApplyOverride consults the environment variable named key and, when it is
// set, merges its JSON value onto base with [Document.Merge].
//
// Absence of the variable is the expected case and is not an error: base is
// returned unchanged. A value that is set must parse as JSON; a malformed
// override is an operator mistake and surfaces as [ErrOverrideParse] rather
// than being silently ignored. The override's top level must be an object,
// otherwise [ErrOverrideShape].
func ApplyOverride(base Document, key string) (Document, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return base, nil
	}

	override, err := ParseOverride(value)
	if err != nil {
		return nil, err
	}

	return base.Merge(override), nil
}

// ParseOverride parses a raw override value, a JSON document whose top level
// is an object, into a [Document]. Failures wrap [ErrOverrideParse] or
// [ErrOverrideShape].
func ParseOverride(value string) (Document, error) {
	var raw any
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, &LoadError{Kind: ErrOverrideParse, Err: err}
	}

	override, ok := asDocument(raw)
	if !ok {
		return nil, &LoadError{Kind: ErrOverrideShape}
	}

	return override, nil
}
