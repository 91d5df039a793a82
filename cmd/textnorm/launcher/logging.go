package launcher

import (
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"
)

var ErrLogConfig = errors.New("invalid logging config")

// newLogHandler builds the root log handler for cfg, writing to w.
func newLogHandler(w io.Writer, cfg LoggingConfig) (log.Handler, error) {
	var format log.Format
	switch cfg.Format {
	case "", "text":
		format = log.TerminalFormat(cfg.Color)
	case "json":
		format = log.JSONFormat()
	case "logfmt":
		format = log.LogfmtFormat()
	default:
		return nil, fmt.Errorf("%w: format %q (text|json|logfmt)", ErrLogConfig, cfg.Format)
	}

	if cfg.Verbosity < int(log.LvlCrit) || cfg.Verbosity > int(log.LvlTrace) {
		return nil, fmt.Errorf("%w: verbosity %d (0..5)", ErrLogConfig, cfg.Verbosity)
	}
	return log.LvlFilterHandler(log.Lvl(cfg.Verbosity), log.StreamHandler(w, format)), nil
}

// setupLogging installs the handler on the root logger.
func setupLogging(w io.Writer, cfg LoggingConfig) error {
	h, err := newLogHandler(w, cfg)
	if err != nil {
		return err
	}
	log.Root().SetHandler(h)
	return nil
}
