// Package normalize provides text clean-up passes built on rewrite.Buffer.
//
// Every pass describes its output by pushing it into a Buffer created over its
// input, so a text that is already clean goes through a whole pipeline without
// a single copy.
package normalize

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rony4d/go-rewrite/rewrite"
)

var (
	ErrUnknownPass   = errors.New("unknown pass")
	ErrInvalidOption = errors.New("invalid option")
)

// Func writes the normalized form of in to b. b was created over in.
type Func func(b *rewrite.Buffer, in string)

// Pass is a named Func.
type Pass struct {
	Name  string
	Apply Func
}

// Options tunes the passes that take parameters.
type Options struct {
	TabWidth int // columns per tab stop for expand-tabs
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{TabWidth: 8}
}

// Result describes the outcome of Run.
type Result struct {
	Output string
	// Borrowed is true when Output is a prefix of the input that was never
	// copied, which is also the case when the text was shortened.
	Borrowed bool
	// Changed lists the passes whose output differed from their input, in
	// the order they ran.
	Changed []string
}

// Unchanged reports whether Output is exactly the input.
func (r Result) Unchanged() bool {
	return len(r.Changed) == 0
}

// Run applies passes to in, in order. Each pass sees the previous pass's
// output. A single Buffer is reused for all of them.
func Run(in string, passes ...Pass) Result {
	res := Result{Output: in, Borrowed: true}

	var b rewrite.Buffer
	for _, p := range passes {
		b.Reset(rewrite.Borrow(res.Output))
		p.Apply(&b, res.Output)
		out := b.Finalize()

		if out.IsOwned() {
			res.Borrowed = false
		}
		if out.IsOwned() || out.Len() != len(res.Output) {
			res.Changed = append(res.Changed, p.Name)
		}
		res.Output = out.String()
	}
	return res
}

// passes maps pass names to constructors.
var passes = map[string]func(Options) (Func, error){
	"crlf":             fixed(crlfToLF),
	"trim-trailing":    fixed(trimTrailingSpace),
	"trim-blank-lines": fixed(trimTrailingBlankLines),
	"final-newline":    fixed(finalNewline),
	"nfc":              fixed(nfc),
	"expand-tabs": func(opts Options) (Func, error) {
		if opts.TabWidth < 1 {
			return nil, fmt.Errorf("%w: tab width %d", ErrInvalidOption, opts.TabWidth)
		}
		return expandTabs(opts.TabWidth), nil
	},
}

func fixed(fn Func) func(Options) (Func, error) {
	return func(Options) (Func, error) { return fn, nil }
}

// Names returns the names Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(passes))
	for name := range passes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the pass called name configured with opts.
func Lookup(name string, opts Options) (Pass, error) {
	ctor, ok := passes[name]
	if !ok {
		return Pass{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownPass, name, Names())
	}
	fn, err := ctor(opts)
	if err != nil {
		return Pass{}, fmt.Errorf("pass %s: %w", name, err)
	}
	return Pass{Name: name, Apply: fn}, nil
}

// Build looks up every name in order.
func Build(names []string, opts Options) ([]Pass, error) {
	out := make([]Pass, 0, len(names))
	for _, name := range names {
		p, err := Lookup(name, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
