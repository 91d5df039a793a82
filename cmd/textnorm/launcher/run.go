package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"

	"github.com/rony4d/go-rewrite/normalize"
	"github.com/rony4d/go-rewrite/utils/fast"
)

var ErrWouldRewrite = errors.New("files would be rewritten")

// runner applies a pass list to files or to a stream.
type runner struct {
	passes []normalize.Pass
	write  bool
	check  bool
	stats  *stats

	stdin  io.Reader
	stdout io.Writer
}

// run normalizes every path, or stdin to stdout when there are none.
// In check mode it fails with ErrWouldRewrite if anything would change.
func (r *runner) run(paths []string) error {
	if len(paths) == 0 {
		return r.stream()
	}

	pending := 0
	for _, path := range paths {
		changed, err := r.file(path)
		if err != nil {
			return err
		}
		if changed {
			pending++
		}
	}
	if r.check && pending > 0 {
		return fmt.Errorf("%w: %d of %d", ErrWouldRewrite, pending, len(paths))
	}
	return nil
}

func (r *runner) stream() error {
	data, err := io.ReadAll(r.stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	res := r.apply("<stdin>", data)
	if r.check {
		if !res.Unchanged() {
			return fmt.Errorf("%w: <stdin>", ErrWouldRewrite)
		}
		return nil
	}
	_, err = io.WriteString(r.stdout, res.Output)
	return err
}

// file normalizes one file and reports whether its content changes.
func (r *runner) file(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	res := r.apply(path, data)
	switch {
	case r.check:
	case r.write:
		if res.Unchanged() {
			break
		}
		if err := os.WriteFile(path, fast.UnsafeBytes(res.Output), info.Mode().Perm()); err != nil {
			return false, fmt.Errorf("write %s: %w", path, err)
		}
		log.Info("Rewrote file", "path", path, "passes", strings.Join(res.Changed, ","))
	default:
		if _, err := io.WriteString(r.stdout, res.Output); err != nil {
			return false, err
		}
	}
	return !res.Unchanged(), nil
}

// apply runs the passes over data. data is owned by the runner and never
// modified, so it is viewed as a string without a copy.
func (r *runner) apply(name string, data []byte) normalize.Result {
	res := normalize.Run(fast.UnsafeString(data), r.passes...)
	r.stats.record(len(data), res)

	if res.Unchanged() {
		log.Debug("Text unchanged", "name", name, "size", len(data))
	} else {
		log.Debug("Text changed", "name", name, "passes", strings.Join(res.Changed, ","),
			"copied", !res.Borrowed, "in", len(data), "out", len(res.Output))
	}
	return res
}
