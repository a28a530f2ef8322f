package main

import (
	"flag"

	configfile "github.com/MKhiriev/go-config-file"
)

// cliFlags holds the values parsed from the command line.
type cliFlags struct {
	filePath string
	typeName string
	envKey   string
	prefix   string
	override string
}

// parseFlags reads the preview tool's command-line flags.
func parseFlags() *cliFlags {
	flags := &cliFlags{}

	flag.StringVar(&flags.filePath, "f", "", "path to the yaml configuration file")
	flag.StringVar(&flags.typeName, "t", "", "configuration type name used to derive the override variable")
	flag.StringVar(&flags.envKey, "k", "", "explicit override variable name, takes precedence over -t and -p")
	flag.StringVar(&flags.prefix, "p", configfile.DefaultEnvPrefix, "prefix for the derived override variable")
	flag.StringVar(&flags.override, "o", "", "inline override json, bypasses the environment")
	flag.Parse()

	return flags
}

// overrideKey resolves which environment variable the preview consults.
// An empty result means no override lookup at all.
func (f *cliFlags) overrideKey() string {
	if f.envKey != "" {
		return f.envKey
	}

	if f.typeName != "" {
		return f.prefix + f.typeName
	}

	return ""
}
