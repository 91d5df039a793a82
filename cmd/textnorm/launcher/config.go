// This file maps the config file and CLI context to the Config struct.

package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-rewrite/normalize"
)

// Config aggregates everything a textnorm run needs.
type Config struct {
	Rewrite RewriteConfig `toml:"rewrite"`
	Logging LoggingConfig `toml:"log"`
	Metrics bool          `toml:"metrics"`
}

type RewriteConfig struct {
	Preset   string   `toml:"preset"`
	Passes   []string `toml:"passes"` // overrides the preset's list when non-empty
	TabWidth int      `toml:"tab_width"`
	Write    bool     `toml:"write"`
	Check    bool     `toml:"check"`
}

type LoggingConfig struct {
	Verbosity int    `toml:"verbosity"`
	Format    string `toml:"format"`
	Color     bool   `toml:"color"`
}

// ResolvePreset layers the explicit pass list and tab width over the named
// preset.
func (c RewriteConfig) ResolvePreset() (normalize.Preset, error) {
	p, err := normalize.GetPresetByName(c.Preset)
	if err != nil {
		return normalize.Preset{}, err
	}
	normalize.ApplyPreset(&p, normalize.Preset{Passes: c.Passes, TabWidth: c.TabWidth})
	return p, nil
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

//	Default config function creates a default config object using the DefaultConfig function from defaults.go
//	This keeps this main config file clean and in sync with the defaults.go file

func defaultConfig() Config {
	return Config{
		Rewrite: RewriteConfig{
			Preset:   DefaultConfig().Rewrite.Preset,
			TabWidth: DefaultConfig().Rewrite.TabWidth,
			Write:    DefaultConfig().Rewrite.Write,
			Check:    DefaultConfig().Rewrite.Check,
		},
		Logging: LoggingConfig{
			Verbosity: DefaultConfig().Logging.Verbosity,
			Format:    DefaultConfig().Logging.Format,
			Color:     DefaultConfig().Logging.Color,
		},
		Metrics: DefaultConfig().Metrics.Enable,
	}
}

// MakeAllConfigs merges defaults, the optional config file, then CLI
// overrides into a single config struct.

func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.String("config"); file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if cfg.Rewrite.Write && cfg.Rewrite.Check {
		return Config{}, errors.New("--write and --check are mutually exclusive")
	}
	return cfg, nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

// loadConfigFile decodes a TOML file over cfg. Keys absent from the file
// keep their current value; unknown keys are an error.
func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("preset") {
		cfg.Rewrite.Preset = ctx.String("preset")
	}
	if ctx.IsSet("passes") {
		cfg.Rewrite.Passes = splitCSV(ctx.String("passes"))
	}
	if ctx.IsSet("tabwidth") {
		cfg.Rewrite.TabWidth = ctx.Int("tabwidth")
	}
	if ctx.Bool("write") {
		cfg.Rewrite.Write = true
	}
	if ctx.Bool("check") {
		cfg.Rewrite.Check = true
	}

	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}

	if ctx.Bool("metrics") {
		cfg.Metrics = true
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
