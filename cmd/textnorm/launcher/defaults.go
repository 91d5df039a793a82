package launcher

// Defaults bundles the baseline configuration values the launcher uses
// before config files and flags override them.

type Defaults struct {
	Rewrite RewriteDefaults
	Logging LoggingDefaults
	Metrics MetricsDefaults
}

// RewriteDefaults captures which passes run and what happens to the output.
type RewriteDefaults struct {
	Preset   string //	Named pass list (see normalize.GetPresetByName). The default preset only touches line endings and trailing whitespace, so it is safe on any text file.
	TabWidth int    //	Columns per tab stop for expand-tabs. Zero leaves the choice to the preset (strict uses 4, the others 8).
	Write    bool   //	Rewrite changed files in place. Off by default so a bare run never modifies anything.
	Check    bool   //	Only report; fail when at least one file would change. Meant for CI.
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text, json or logfmt).
	Color     bool   //	Whether to use ANSI color codes in text logs. Off by default because logs usually end up next to normalized output in a pipe.
}

type MetricsDefaults struct {
	Enable bool //	Log the file and byte counters once the run finishes.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	return Defaults{
		Rewrite: RewriteDefaults{
			Preset: "default",
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
		},
	}
}
