package launcher

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"
)

func TestNewLogHandler(t *testing.T) {
	t.Run("json respects verbosity", func(t *testing.T) {
		var buf bytes.Buffer
		h, err := newLogHandler(&buf, LoggingConfig{Format: "json", Verbosity: int(log.LvlInfo)})
		require.NoError(t, err)

		logger := log.New()
		logger.SetHandler(h)
		logger.Debug("hidden")
		logger.Info("shown", "path", "a.txt")

		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), `"msg":"shown"`)
		require.Contains(t, buf.String(), `"path":"a.txt"`)
	})

	t.Run("logfmt", func(t *testing.T) {
		var buf bytes.Buffer
		h, err := newLogHandler(&buf, LoggingConfig{Format: "logfmt", Verbosity: int(log.LvlTrace)})
		require.NoError(t, err)

		logger := log.New()
		logger.SetHandler(h)
		logger.Trace("deep", "n", 1)
		require.Contains(t, buf.String(), "msg=deep")
		require.Contains(t, buf.String(), "n=1")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := newLogHandler(&bytes.Buffer{}, LoggingConfig{Format: "yaml", Verbosity: 3})
		require.ErrorIs(t, err, ErrLogConfig)

		_, err = newLogHandler(&bytes.Buffer{}, LoggingConfig{Format: "text", Verbosity: 9})
		require.ErrorIs(t, err, ErrLogConfig)
	})
}
