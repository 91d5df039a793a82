package rewrite

// Text is the result of Finalize: either a view into the original text
// (borrowed) or a freshly built string (owned). Callers can use it the same
// way in both cases.
type Text struct {
	s        string
	borrowed bool
}

// String returns the text.
func (t Text) String() string {
	return t.s
}

// Len returns the length of the text in bytes.
func (t Text) Len() int {
	return len(t.s)
}

// IsBorrowed reports whether the text is a prefix of the original that was
// never copied.
func (t Text) IsBorrowed() bool {
	return t.borrowed
}

// IsOwned reports whether the output diverged from the original and had to
// be materialized.
func (t Text) IsOwned() bool {
	return !t.borrowed
}

// Source returns the text as a borrowed Source, so it can feed the next
// Buffer in a chain of rewrites.
func (t Text) Source() Source {
	return Borrow(t.s)
}
