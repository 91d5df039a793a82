package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-rewrite/flags"
)

// helper to run MakeAllConfigs with a synthetic CLI context.

func runConfigFromArgs(t *testing.T, args []string) (Config, error) {

	t.Helper()

	app := cli.NewApp()

	app.HideHelp = true
	app.HideVersion = true

	// Register the same flag groups textnorm uses.
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.RewriteFlags()...)

	var (
		got    Config
		cfgErr error
	)
	app.Action = func(c *cli.Context) error {
		got, cfgErr = MakeAllConfigs(c)
		return nil
	}

	require.NoError(t, app.Run(append([]string{"textnorm"}, args...)), "app.Run failed")
	return got, cfgErr
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textnorm.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestMakeAllConfigs_defaults checks that a bare run picks the defaults from
// defaults.go.
func TestMakeAllConfigs_defaults(t *testing.T) {
	cfg, err := runConfigFromArgs(t, nil)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
	require.Equal(t, "default", cfg.Rewrite.Preset)
	require.Equal(t, 3, cfg.Logging.Verbosity)
	require.False(t, cfg.Rewrite.Write)
}

// TestMakeAllConfigs_flagOverrides verifies that every command-line flag
// overrides the corresponding field in the aggregated Config struct.
func TestMakeAllConfigs_flagOverrides(t *testing.T) {
	tests := []struct {
		name string                         // descriptive name for the scenario
		args []string                       // CLI arguments to feed into MakeAllConfigs
		want func(t *testing.T, cfg Config) // assertion helper examining the final config
	}{
		{
			name: "preset and passes",
			args: []string{"--preset", "strict", "--passes", "crlf, nfc,", "--tabwidth", "2"},
			want: func(t *testing.T, cfg Config) {
				require.Equal(t, "strict", cfg.Rewrite.Preset)
				// passes list should split on comma, trim whitespace and drop empties
				require.Equal(t, []string{"crlf", "nfc"}, cfg.Rewrite.Passes)
				require.Equal(t, 2, cfg.Rewrite.TabWidth)
			},
		},
		{
			name: "write shorthand",
			args: []string{"-w"},
			want: func(t *testing.T, cfg Config) {
				require.True(t, cfg.Rewrite.Write)
				require.False(t, cfg.Rewrite.Check)
			},
		},
		{
			name: "logging and metrics",
			args: []string{"--log.format", "json", "--log.verbosity", "5", "--log.color", "--metrics"},
			want: func(t *testing.T, cfg Config) {
				require.Equal(t, LoggingConfig{Verbosity: 5, Format: "json", Color: true}, cfg.Logging)
				require.True(t, cfg.Metrics)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := runConfigFromArgs(t, test.args) // build config using the test helper
			require.NoError(t, err)
			test.want(t, cfg)               // apply the scenario-specific assertions
			t.Logf("args = %#v", test.args) //	NOTE: this will only be printed if the test fails
		})
	}
}

// TestMakeAllConfigs_configFile checks the precedence defaults < file < flags.
func TestMakeAllConfigs_configFile(t *testing.T) {
	path := writeConfigFile(t, `
metrics = true

[rewrite]
preset = "minimal"
passes = ["crlf", "final-newline"]
tab_width = 3

[log]
format = "logfmt"
verbosity = 4
`)

	cfg, err := runConfigFromArgs(t, []string{"--config", path, "--log.verbosity", "1"})
	require.NoError(t, err)

	require.Equal(t, "minimal", cfg.Rewrite.Preset)
	require.Equal(t, []string{"crlf", "final-newline"}, cfg.Rewrite.Passes)
	require.Equal(t, 3, cfg.Rewrite.TabWidth)
	require.True(t, cfg.Metrics)
	require.Equal(t, "logfmt", cfg.Logging.Format)
	require.Equal(t, 1, cfg.Logging.Verbosity, "flag must win over the file")
}

func TestMakeAllConfigs_errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := writeConfigFile(t, "[rewrite]\npresett = \"strict\"\n")
		_, err := runConfigFromArgs(t, []string{"--config", path})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to load config file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runConfigFromArgs(t, []string{"--config", filepath.Join(t.TempDir(), "nope.toml")})
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("write and check", func(t *testing.T) {
		_, err := runConfigFromArgs(t, []string{"--write", "--check"})
		require.Error(t, err)
	})
}

func TestRewriteConfig_ResolvePreset(t *testing.T) {
	p, err := RewriteConfig{Preset: "strict"}.ResolvePreset()
	require.NoError(t, err)
	require.Equal(t, "strict", p.Name)
	require.Equal(t, 4, p.TabWidth)

	p, err = RewriteConfig{Preset: "strict", Passes: []string{"nfc"}, TabWidth: 2}.ResolvePreset()
	require.NoError(t, err)
	require.Equal(t, []string{"nfc"}, p.Passes)
	require.Equal(t, 2, p.TabWidth)

	_, err = RewriteConfig{Preset: "bogus"}.ResolvePreset()
	require.Error(t, err)
}
