package launcher

import (
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-rewrite/flags"
)

// Launch parses args and runs textnorm on the process's standard streams.
func Launch(args []string) error {
	return NewApp(os.Stdin, os.Stdout, os.Stderr).Run(args)
}

// NewApp returns the textnorm application wired to the given streams.
// Normalized text goes to stdout, logs go to stderr.
func NewApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := flags.NewApp()
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Action = func(ctx *cli.Context) error {
		cfg, err := MakeAllConfigs(ctx)
		if err != nil {
			return err
		}
		if err := setupLogging(stderr, cfg.Logging); err != nil {
			return err
		}

		preset, err := cfg.Rewrite.ResolvePreset()
		if err != nil {
			return err
		}
		passes, err := preset.Build()
		if err != nil {
			return err
		}
		log.Debug("Passes resolved", "preset", preset.Name, "passes", strings.Join(preset.Passes, ","), "tabwidth", preset.TabWidth)

		r := &runner{
			passes: passes,
			write:  cfg.Rewrite.Write,
			check:  cfg.Rewrite.Check,
			stats:  newStats(),
			stdin:  stdin,
			stdout: stdout,
		}
		err = r.run(ctx.Args())
		if cfg.Metrics {
			r.stats.report()
		}
		return err
	}
	return app
}
