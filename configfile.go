// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configfile

import "reflect"

// DefaultEnvPrefix is prepended to a configuration type's simple name when
// deriving its override variable, unless the type implements [Keyed] or the
// prefix is changed via [Settings.EnvPrefix].
const DefaultEnvPrefix = "CONFIG_"

// File associates a configuration type with the file its base document is
// read from. The path is constant for the lifetime of the process; declare it
// with a value receiver so the zero value of the type can report it:
//
//	func (CameraSettings) ConfigFilePath() string {
//		return "assets/config/camera_settings.yaml"
//	}
type File interface {
	// ConfigFilePath returns the location of the type's base configuration
	// file. Relative paths are resolved against [Settings.BaseDir] when set.
	ConfigFilePath() string
}

// Keyed pins a configuration type's override variable to an explicit name.
// When implemented, the returned name is used verbatim: no prefix is applied
// and the type's simple name plays no part. Implement it with a value
// receiver, like [File].
type Keyed interface {
	// OverrideKey returns the full name of the environment variable holding
	// the type's override document.
	OverrideKey() string
}

// TypeName returns the simple name of T: the last path component of its
// fully-qualified type name, with pointer indirections stripped. It is the
// registration name used by [LoadAndRegister] and the basis of the derived
// override variable.
//
// Distinct configuration types sharing a simple name therefore share an
// override variable and a registry slot; implement [Keyed] on one of them to
// disambiguate.
func TypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Name()
}

// OverrideKeyFor returns the environment variable consulted for overrides of
// T under [DefaultEnvPrefix]. Pure: it always produces a name and never
// touches the environment.
func OverrideKeyFor[T any]() string {
	return overrideKeyFor[T](DefaultEnvPrefix)
}

func overrideKeyFor[T any](prefix string) string {
	var t T
	if keyed, ok := any(t).(Keyed); ok {
		return keyed.OverrideKey()
	}

	return prefix + TypeName[T]()
}
