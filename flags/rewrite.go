package flags

import (
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-rewrite/normalize"
)

// RewriteFlags selects which passes run and what happens to their output.

func RewriteFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "preset",
			Usage: "Named pass list (default|strict|minimal)",
			Value: "default",
		},
		cli.StringFlag{
			Name:  "passes",
			Usage: "Comma-separated pass list, overrides the preset (" + strings.Join(normalize.Names(), ",") + ")",
		},
		cli.IntFlag{
			Name:  "tabwidth",
			Usage: "Columns per tab stop for expand-tabs (0 = preset default)",
		},
		cli.BoolFlag{
			Name:  "write, w",
			Usage: "Write the result back to files that changed instead of printing it",
		},
		cli.BoolFlag{
			Name:  "check",
			Usage: "Exit with an error if any file would be rewritten",
		},
	}
}
