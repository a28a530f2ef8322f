package configfile

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

type settingsBuilder struct {
	settings []Settings
	err      error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		settings: make([]Settings, 0, 3),
	}
}

// build merges the collected sources into one Settings value. Sources are
// merged in the order they were added with the first non-zero value winning
// per field, so higher-priority sources must be added first.
func (b *settingsBuilder) build() (Settings, error) {
	if b.err != nil {
		return Settings{}, fmt.Errorf("error occured during building loader settings: %w", b.err)
	}

	var merged Settings
	for _, s := range b.settings {
		// The logger is picked explicitly: mergo must not descend into the
		// zerolog internals behind the pointer.
		if merged.Logger == nil {
			merged.Logger = s.Logger
		}
		s.Logger = nil

		if err := mergo.Merge(&merged, s); err != nil {
			return Settings{}, fmt.Errorf("error merging loader settings: %w", err)
		}
	}

	return merged, nil
}

// withExplicit adds settings supplied by the caller. Highest priority, add
// it first.
func (b *settingsBuilder) withExplicit(s Settings) *settingsBuilder {
	b.settings = append(b.settings, s)
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := Settings{}
	if err := parseEnvSettings(&envSettings); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.settings = append(b.settings, envSettings)
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.settings = append(b.settings, defaultSettings())
	return b
}

// parseEnvSettings populates s from CONFIGFILE_* environment variables using
// the caarlos0/env library. Struct fields are mapped via their `env` tags
// defined on [Settings].
//
// Returns a wrapped error if env.ParseWithOptions fails (e.g. a value cannot
// be converted to the target type).
func parseEnvSettings(s *Settings) error {
	err := env.ParseWithOptions(s, env.Options{Prefix: settingsEnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
