package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the parseFlags function.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, flags *cliFlags)
	}{
		{
			name: "all flags set",
			args: []string{
				"-f", "assets/config/camera.yaml",
				"-t", "CameraSettings",
				"-k", "CUSTOM_KEY",
				"-p", "APPCFG_",
				"-o", `{"pan_speed": 2000.0}`,
			},
			validate: func(t *testing.T, flags *cliFlags) {
				assert.Equal(t, "assets/config/camera.yaml", flags.filePath)
				assert.Equal(t, "CameraSettings", flags.typeName)
				assert.Equal(t, "CUSTOM_KEY", flags.envKey)
				assert.Equal(t, "APPCFG_", flags.prefix)
				assert.Equal(t, `{"pan_speed": 2000.0}`, flags.override)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-f", "server.yaml",
				"-t", "Server",
			},
			validate: func(t *testing.T, flags *cliFlags) {
				assert.Equal(t, "server.yaml", flags.filePath)
				assert.Equal(t, "Server", flags.typeName)
				assert.Empty(t, flags.envKey)
				assert.Equal(t, "CONFIG_", flags.prefix)
				assert.Empty(t, flags.override)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, flags *cliFlags) {
				assert.Empty(t, flags.filePath)
				assert.Empty(t, flags.typeName)
				assert.Empty(t, flags.envKey)
				assert.Equal(t, "CONFIG_", flags.prefix)
				assert.Empty(t, flags.override)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			flags := parseFlags()
			require.NotNil(t, flags)
			tt.validate(t, flags)
		})
	}
}

// TestCliFlags_OverrideKey tests resolution of which environment variable
// the preview consults.
func TestCliFlags_OverrideKey(t *testing.T) {
	tests := []struct {
		name     string
		flags    cliFlags
		expected string
	}{
		{
			name:     "explicit key wins over type name",
			flags:    cliFlags{envKey: "CUSTOM_KEY", typeName: "Server", prefix: "CONFIG_"},
			expected: "CUSTOM_KEY",
		},
		{
			name:     "type name with prefix",
			flags:    cliFlags{typeName: "Server", prefix: "CONFIG_"},
			expected: "CONFIG_Server",
		},
		{
			name:     "custom prefix",
			flags:    cliFlags{typeName: "Server", prefix: "APPCFG_"},
			expected: "APPCFG_Server",
		},
		{
			name:     "nothing provided means no lookup",
			flags:    cliFlags{prefix: "CONFIG_"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.flags.overrideKey())
		})
	}
}
