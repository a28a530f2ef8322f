// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configfile

import (
	"path/filepath"

	"github.com/MKhiriev/go-config-file/logger"
)

// settingsEnvPrefix is the prefix applied to all env tag lookups on
// [Settings], keeping the loader's own variables apart from the
// CONFIG_<TypeName> override namespace.
const settingsEnvPrefix = "CONFIGFILE_"

// Settings tune the loader machinery itself, as opposed to the configuration
// values being loaded. A zero value means "use the default". Settings are
// assembled from up to three sources, the first non-zero value winning per
// field:
//  1. Explicit settings passed to [LoadWith] / [LoadAndRegisterWith]
//  2. CONFIGFILE_* environment variables
//  3. Built-in defaults
type Settings struct {
	// BaseDir, when non-empty, is prepended to every relative configuration
	// file path. Absolute paths are used as-is.
	// Env: CONFIGFILE_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// EnvPrefix is prepended to a configuration type's simple name when
	// deriving its override variable. Defaults to [DefaultEnvPrefix].
	// Ignored for types implementing [Keyed].
	// Env: CONFIGFILE_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// StrictFields rejects document keys without a counterpart in the target
	// type during decoding, instead of ignoring them.
	// Env: CONFIGFILE_STRICT_FIELDS
	StrictFields bool `env:"STRICT_FIELDS"`

	// DisableOverrides skips the environment override step entirely, so the
	// result is always the base document, decoded.
	// Env: CONFIGFILE_DISABLE_OVERRIDES
	DisableOverrides bool `env:"DISABLE_OVERRIDES"`

	// Logger receives load-pipeline log entries. Defaults to [logger.Nop].
	// Not settable from the environment.
	Logger *logger.Logger `env:"-"`
}

// resolvePath applies BaseDir to relative configuration file paths.
func (s Settings) resolvePath(path string) string {
	if s.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(s.BaseDir, path)
}

func defaultSettings() Settings {
	return Settings{
		EnvPrefix: DefaultEnvPrefix,
		Logger:    logger.Nop(),
	}
}
