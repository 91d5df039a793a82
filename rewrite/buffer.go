package rewrite

import (
	"unicode/utf8"

	"github.com/rony4d/go-rewrite/utils/fast"
)

// Buffer accumulates a rewritten version of a Source.
//
// While every write matches the original at the cursor, the output is just
// original[:cursor] and nothing is allocated. The first mismatching write
// copies original[:cursor] into an owned output exactly once; from then on
// every write is appended there and the original is no longer consulted.
//
// The zero value is a Buffer over the empty string.
type Buffer struct {
	src Source
	// in is the cursor over the original. Before divergence its position is
	// the number of original bytes verified identical so far; afterwards it
	// is frozen.
	in fast.Reader
	// out holds the whole output once diverged, empty before.
	out      fast.Writer
	diverged bool
	done     bool
}

// New returns a Buffer that compares its writes against src.
func New(src Source) *Buffer {
	b := new(Buffer)
	b.Reset(src)
	return b
}

// Reset discards any state and starts over on src. It may be called on a
// finalized Buffer. Text values returned earlier stay valid.
func (b *Buffer) Reset(src Source) {
	b.src = src
	b.in.Reset(src.bytes())
	b.out.Reset(nil)
	b.diverged = false
	b.done = false
}

// Push appends a single rune. Invalid runes are written as U+FFFD.
func (b *Buffer) Push(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	b.push(tmp[:n])
}

// PushString appends s.
func (b *Buffer) PushString(s string) {
	b.push(fast.UnsafeBytes(s))
}

// Write appends p. It implements io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.push(p)
	return len(p), nil
}

// WriteString appends s. It implements io.StringWriter and never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	b.PushString(s)
	return len(s), nil
}

// WriteRune appends r and returns the number of bytes written.
func (b *Buffer) WriteRune(r rune) (int, error) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	b.push(tmp[:n])
	return n, nil
}

// WriteByte appends c. It implements io.ByteWriter and never fails.
func (b *Buffer) WriteByte(c byte) error {
	tmp := [1]byte{c}
	b.push(tmp[:])
	return nil
}

// Len returns the length in bytes of the output written so far.
func (b *Buffer) Len() int {
	if b.diverged {
		return b.out.Len()
	}
	return b.in.Position()
}

// Diverged reports whether the output stopped matching the original. Once
// true it stays true until Reset.
func (b *Buffer) Diverged() bool {
	return b.diverged
}

// Finalize returns the output and ends the Buffer's use. Without divergence
// the result is a borrowed view of original[:Len()], whichever kind of Source
// was used; otherwise it is the owned output.
//
// Calling any write method or Finalize again before Reset panics.
func (b *Buffer) Finalize() Text {
	b.checkLive()
	b.done = true
	if !b.diverged {
		return Text{s: b.src.prefix(b.in.Position()), borrowed: true}
	}
	// The Buffer forgets out, so the string is the only reference left.
	t := Text{s: fast.UnsafeString(b.out.Bytes())}
	b.out.Reset(nil)
	return t
}

func (b *Buffer) push(p []byte) {
	b.checkLive()
	if !b.diverged && b.in.HasPrefix(p) {
		b.in.Skip(len(p))
		return
	}
	b.diverge(len(p))
	b.out.Write(p)
}

// diverge switches to the owned output, copying the matched prefix. It is a
// no-op after the first call. extra is the size of the write that caused it,
// used only as a capacity hint.
func (b *Buffer) diverge(extra int) {
	if b.diverged {
		return
	}
	b.diverged = true

	matched := b.in.Position()
	if b.src.owned {
		// The prefix is already in place; keep appending over the rest.
		b.out.Reset(b.src.buf[:matched])
		return
	}

	size := b.src.Len()
	if need := matched + extra; need > size {
		size = need
	}
	b.out.Reset(make([]byte, 0, size))
	b.out.Write(b.in.Consumed())
}

func (b *Buffer) checkLive() {
	if b.done {
		panic("rewrite: use of finalized Buffer")
	}
}
