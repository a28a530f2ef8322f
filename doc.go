// Package configfile loads strongly-typed application configuration from
// YAML files with selective runtime overrides supplied through environment
// variables.
//
// A configuration type declares its file location by implementing [File]:
//
//	type CameraSettings struct {
//		PanSpeed  float64 `yaml:"pan_speed"`
//		ZoomSpeed float64 `yaml:"zoom_speed"`
//	}
//
//	func (CameraSettings) ConfigFilePath() string {
//		return "assets/config/camera_settings.yaml"
//	}
//
//	settings, err := configfile.Load[CameraSettings]()
//
// The file provides the base document. If an environment variable named
// CONFIG_<TypeName> (here CONFIG_CameraSettings) is set, its value is parsed
// as a JSON object and merged onto the base document with shallow
// replace-by-key semantics: each top-level override key replaces the
// corresponding base value wholesale, nested structures are never combined.
// The merged document is decoded into the target type through its yaml
// struct tags, so override keys use the same field names as the file.
//
// A load either fully succeeds or fails with a [*LoadError]; an absent
// override variable is the only condition that is both expected and not an
// error. The main entry points are [Load] and [LoadWith] for plain loading,
// and [LoadAndRegister] and [LoadAndRegisterWith] for loading plus
// registration in a [Store] such as the registry package's Registry.
package configfile
