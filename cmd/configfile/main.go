// configfile previews a merged configuration document: it reads a YAML
// configuration file, applies the JSON override an application would pick up
// from the environment, and prints the result to stdout as YAML.
//
// Usage:
//
//	configfile -f assets/config/camera_settings.yaml -t CameraSettings
//	configfile -f server.yaml -k CONFIG_Server
//	configfile -f server.yaml -o '{"port": 9090}'
package main

import (
	"fmt"
	"os"

	configfile "github.com/MKhiriev/go-config-file"
	"github.com/MKhiriev/go-config-file/logger"
	"gopkg.in/yaml.v3"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("configfile")
	flags := parseFlags()
	if flags.filePath == "" {
		log.Fatal().Msg("no configuration file provided, use -f")
	}

	doc, err := configfile.ReadDocument(flags.filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading config file")
	}

	merged, err := applyPreviewOverride(doc, flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error applying override")
	}

	out, err := yaml.Marshal(merged)
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding merged config")
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal().Err(err).Msg("error writing merged config")
	}
}

// applyPreviewOverride merges the override from the -o flag or from the
// environment variable named by the flags, whichever is given. With neither,
// the base document is previewed as-is.
func applyPreviewOverride(doc configfile.Document, flags *cliFlags) (configfile.Document, error) {
	if flags.override != "" {
		override, err := configfile.ParseOverride(flags.override)
		if err != nil {
			return nil, err
		}

		return doc.Merge(override), nil
	}

	if key := flags.overrideKey(); key != "" {
		return configfile.ApplyOverride(doc, key)
	}

	return doc, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
