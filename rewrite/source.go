package rewrite

import "github.com/rony4d/go-rewrite/utils/fast"

// Source is the original text a Buffer compares its writes against.
// It is either borrowed from the caller (Borrow) or handed over to the
// buffer (Own). There are no other kinds.
type Source struct {
	str   string
	buf   []byte
	owned bool
}

// Borrow wraps a string the caller keeps. Borrowed results alias s.
func Borrow(s string) Source {
	return Source{str: s}
}

// Own transfers b to the buffer. Borrowed results alias b, and on divergence
// the buffer truncates b to the matched prefix and appends to it in place,
// so the caller must not touch b afterwards.
func Own(b []byte) Source {
	return Source{buf: b, owned: true}
}

// Len returns the length of the original text in bytes.
func (s Source) Len() int {
	if s.owned {
		return len(s.buf)
	}
	return len(s.str)
}

// IsOwned reports whether the source was created with Own.
func (s Source) IsOwned() bool {
	return s.owned
}

// bytes returns a read-only byte view of the original text.
func (s Source) bytes() []byte {
	if s.owned {
		return s.buf
	}
	return fast.UnsafeBytes(s.str)
}

// prefix returns original[:n] as a string without copying.
func (s Source) prefix(n int) string {
	if s.owned {
		return fast.UnsafeString(s.buf[:n])
	}
	return s.str[:n]
}
