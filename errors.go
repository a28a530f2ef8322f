package configfile

import "errors"

// Failure kinds for a single load. Every error returned by the load
// functions, [ReadDocument], [ApplyOverride], and [Decode] wraps exactly one
// of these sentinels, so callers can classify failures with errors.Is.
var (
	// ErrNotFound indicates the configuration file is missing or unreadable.
	ErrNotFound = errors.New("config file not found")
	// ErrBaseParse indicates the configuration file is not valid YAML.
	ErrBaseParse = errors.New("config file is not valid yaml")
	// ErrBaseShape indicates the configuration file's top level is not a
	// mapping (a scalar, sequence, or empty document).
	ErrBaseShape = errors.New("config file top level is not a mapping")
	// ErrOverrideParse indicates the override variable's value is not valid
	// JSON.
	ErrOverrideParse = errors.New("override is not valid json")
	// ErrOverrideShape indicates the override document's top level is not an
	// object.
	ErrOverrideShape = errors.New("override top level is not an object")
	// ErrDeserialize indicates the merged document does not fit the target
	// configuration type.
	ErrDeserialize = errors.New("config does not match target type")
)

// LoadError describes a failed load. Kind is always one of the sentinel
// errors above; Type and Path locate the failure when they are known at the
// failing stage. Err carries the underlying filesystem or parser error, if
// any.
type LoadError struct {
	Kind error
	Type string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	msg := "load config"
	if e.Type != "" {
		msg += " " + e.Type
	}
	if e.Path != "" {
		msg += " from " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the failure kind and the underlying cause, so
// errors.Is matches the sentinels as well as causes such as fs.ErrNotExist.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// enrichLoadError stamps the configuration type's name, and the file path
// when the failing stage did not know it, onto a load failure. Errors of
// other types pass through unchanged.
func enrichLoadError(err error, name, path string) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		loadErr.Type = name
		if loadErr.Path == "" {
			loadErr.Path = path
		}
	}

	return err
}
