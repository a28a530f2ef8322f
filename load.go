// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configfile

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load reads T's configuration file, applies the environment override if one
// is set, and returns the merged, typed result. Loader settings are resolved
// from CONFIGFILE_* environment variables and built-in defaults.
//
// Load performs no registration; see [LoadAndRegister] for the variant that
// also hands the result to a [Store].
func Load[T File]() (T, error) {
	settings, err := newSettingsBuilder().
		withEnv().
		withDefaults().
		build()
	if err != nil {
		var zero T
		return zero, err
	}

	return load[T](settings, nil)
}

// LoadWith is [Load] with explicit settings. Zero-valued settings fields
// fall back to the environment and then to the defaults.
func LoadWith[T File](settings Settings) (T, error) {
	resolved, err := newSettingsBuilder().
		withExplicit(settings).
		withEnv().
		withDefaults().
		build()
	if err != nil {
		var zero T
		return zero, err
	}

	return load[T](resolved, nil)
}

// LoadAndRegister loads T exactly like [Load] and additionally registers the
// result in store under T's [TypeName]. The load and the registration share
// one pipeline: a failed load registers nothing.
func LoadAndRegister[T File](store Store) (T, error) {
	settings, err := newSettingsBuilder().
		withEnv().
		withDefaults().
		build()
	if err != nil {
		var zero T
		return zero, err
	}

	return load[T](settings, store)
}

// LoadAndRegisterWith is [LoadAndRegister] with explicit settings, resolved
// the same way as in [LoadWith].
func LoadAndRegisterWith[T File](settings Settings, store Store) (T, error) {
	resolved, err := newSettingsBuilder().
		withExplicit(settings).
		withEnv().
		withDefaults().
		build()
	if err != nil {
		var zero T
		return zero, err
	}

	return load[T](resolved, store)
}

// load is the single pipeline behind all public load functions: read the
// base document, apply the override, decode, then optionally register. Each
// call re-reads the file and the environment; nothing is cached across
// calls. The first failing stage wins and everything after it is skipped.
func load[T File](settings Settings, store Store) (T, error) {
	var zero T

	name := TypeName[T]()
	path := settings.resolvePath(zero.ConfigFilePath())

	doc, err := ReadDocument(path)
	if err != nil {
		return zero, enrichLoadError(err, name, path)
	}

	if !settings.DisableOverrides {
		key := overrideKeyFor[T](settings.EnvPrefix)
		doc, err = ApplyOverride(doc, key)
		if err != nil {
			return zero, enrichLoadError(err, name, path)
		}
	}

	result, err := decode[T](doc, settings.StrictFields)
	if err != nil {
		return zero, enrichLoadError(err, name, path)
	}

	settings.Logger.Debug().Str("config", name).Str("path", path).Msg("loaded config")

	if store != nil {
		if err := store.Put(name, result); err != nil {
			return zero, fmt.Errorf("error registering config %s: %w", name, err)
		}

		settings.Logger.Info().Str("config", name).Str("path", path).Msg("registered config")
	}

	return result, nil
}

// Decode deserializes a document into T using the type's yaml struct tags.
// Unknown document keys are ignored; the load pipeline switches to the
// strict variant via [Settings.StrictFields]. Failures wrap [ErrDeserialize].
func Decode[T any](doc Document) (T, error) {
	return decode[T](doc, false)
}

// decode re-encodes the merged document as YAML and unmarshals it into T, so
// one set of struct tags governs the base file and the override keys alike.
// JSON is only the override's value syntax; field matching happens here.
func decode[T any](doc Document, strict bool) (T, error) {
	var result T

	data, err := yaml.Marshal(doc)
	if err != nil {
		return result, &LoadError{Kind: ErrDeserialize, Err: err}
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(strict)
	if err := decoder.Decode(&result); err != nil {
		var zero T
		return zero, &LoadError{Kind: ErrDeserialize, Err: err}
	}

	return result, nil
}
