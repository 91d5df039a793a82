// Package rewrite implements a lazy-copy text buffer.
//
// A Buffer is created over an original text and fed the desired output from
// left to right. As long as every write reproduces the original byte-for-byte
// at the current position, nothing is allocated and Finalize returns a view
// into the original. The first write that differs makes the buffer copy the
// already-matched prefix once into an owned output and keep appending there.
//
// Typical use is a formatter or normalizer that wants to avoid re-allocating
// output that ends up identical to its input:
//
//	var b rewrite.Buffer
//	b.Reset(rewrite.Borrow(src))
//	for _, line := range lines {
//	    b.PushString(strings.TrimRight(line, " "))
//	    b.Push('\n')
//	}
//	out := b.Finalize()
//	if out.IsBorrowed() {
//	    // src was already clean
//	}
//
// Comparison is byte-exact. Text that is canonically equivalent but encoded
// differently (for example NFC vs NFD) counts as a divergence.
//
// A Buffer is not safe for concurrent use.
package rewrite
