package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/byd-android-2017/args/internal/app"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	configDir := t.TempDir()
	hclPath := filepath.Join(configDir, "defaults.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte(`
		p          = 9090
		d          = "/from/config"
		log-format = "json"
	`), 0600), "failed to set up test file")
	yamlPath := filepath.Join(configDir, "defaults.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("g: [a, b]\no: json\n"), 0600), "failed to set up test file")
	badPath := filepath.Join(configDir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("p: not-a-number\n"), 0600), "failed to set up test file")

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-l", "-p", "8088", "-d", "/usr/logs",
				"-g", "this", "is", "a", "list",
				"-n", "1", "2", "-3", "5",
				"-log-level", "debug", "-log-format", "json", "-o", "json",
			},
			expectedConfig: &app.Config{
				Logging:   true,
				Port:      8088,
				Directory: "/usr/logs",
				Group:     []string{"this", "is", "a", "list"},
				Numbers:   []int{1, 2, -3, 5},
				LogLevel:  "debug",
				LogFormat: "json",
				Output:    "json",
			},
		},
		{
			name: "Defaults when no flags are given",
			args: []string{},
			expectedConfig: &app.Config{
				Group:     []string{},
				Numbers:   []int{},
				LogLevel:  "info",
				LogFormat: "text",
				Output:    "text",
			},
		},
		{
			name: "Enum values are case-insensitive",
			args: []string{"-log-level", "WARN", "-o", "JSON"},
			expectedConfig: &app.Config{
				Group:     []string{},
				Numbers:   []int{},
				LogLevel:  "warn",
				LogFormat: "text",
				Output:    "json",
			},
		},
		{
			name: "HCL config file supplies defaults, flags win",
			args: []string{"-c", hclPath, "-p", "1"},
			expectedConfig: &app.Config{
				Port:       1,
				Directory:  "/from/config",
				Group:      []string{},
				Numbers:    []int{},
				ConfigPath: hclPath,
				LogLevel:   "info",
				LogFormat:  "json",
				Output:     "text",
			},
		},
		{
			name: "YAML config file supplies list defaults",
			args: []string{"-c", yamlPath},
			expectedConfig: &app.Config{
				Group:      []string{"a", "b"},
				Numbers:    []int{},
				ConfigPath: yamlPath,
				LogLevel:   "info",
				LogFormat:  "text",
				Output:     "json",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:", "Expected help text to be printed")
			},
		},
		{
			name:      "Extra value for flag returns an error",
			args:      []string{"-l", "yes"},
			expectErr: true,
		},
		{
			name:      "Missing value returns an error",
			args:      []string{"-p"},
			expectErr: true,
		},
		{
			name:      "Malformed number returns an error",
			args:      []string{"-p", "80x"},
			expectErr: true,
		},
		{
			name:      "Port out of range returns an error",
			args:      []string{"-p", "70000"},
			expectErr: true,
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"-log-level", "foo"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"-log-format", "yaml"},
			expectErr: true,
		},
		{
			name:      "Invalid output format returns an error",
			args:      []string{"-o", "xml"},
			expectErr: true,
		},
		{
			name:      "Missing config file returns an error",
			args:      []string{"-c", filepath.Join(configDir, "missing.hcl")},
			expectErr: true,
		},
		{
			name:      "Config value of the wrong type returns an error",
			args:      []string{"-c", badPath},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			appConfig, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				exitErr, isExitError := err.(*ExitError)
				require.True(t, isExitError, "Expected error to be of type ExitError")
				require.Equal(t, 2, exitErr.Code)
				return // End test here if an error is expected
			}
			require.NoError(t, err)

			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, appConfig); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
