package fast

// buffer.go provides a lightweight, non-thread-safe wrapper around byte slices.
//
// Purpose:
// - The rewrite buffer needs two very small things: a cursor walking over the original text (Reader)
//   and an append-only output (Writer). bytes.Buffer and bytes.Reader carry more state than that.
// - Read/ReadByte/Skip perform NO bounds checking errors (they panic past the end), which is
//   faster but requires the caller to be careful. HasPrefix is the checked entry point.

import "unicode/utf8"

type Reader struct {
	// buf is the underlying data source. It is never written through.
	buf []byte
	// offset tracks the current reading position (cursor).
	offset int
}

type Writer struct {
	// buf is the accumulating byte slice.
	buf []byte
}

// NewReader creates a Reader to consume the provided byte slice.
func NewReader(bb []byte) *Reader {
	return &Reader{
		buf:    bb,
		offset: 0,
	}
}

// Reset points the Reader at bb and rewinds the cursor to 0.
func (b *Reader) Reset(bb []byte) {
	b.buf = bb
	b.offset = 0
}

// NewWriter creates a Writer that appends to the provided initial slice.
// Often called with `make([]byte, 0, capacity)` to pre-allocate memory, or
// with `src[:n]` to keep appending over storage the caller handed over.
func NewWriter(bb []byte) *Writer {
	return &Writer{
		buf: bb,
	}
}

// Reset makes the Writer append to bb from now on.
func (b *Writer) Reset(bb []byte) {
	b.buf = bb
}

// WriteByte appends a single byte to the buffer.
func (b *Writer) WriteByte(v byte) {
	b.buf = append(b.buf, v)
}

// Write appends a slice of bytes (bulk write) to the buffer.
func (b *Writer) Write(v []byte) {
	b.buf = append(b.buf, v...)
}

// WriteString appends s without converting it to a []byte first.
func (b *Writer) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Writer) WriteRune(r rune) {
	b.buf = utf8.AppendRune(b.buf, r)
}

// Len returns the number of accumulated bytes.
func (b *Writer) Len() int {
	return len(b.buf)
}

// Read consumes and returns the next 'n' bytes from the buffer.
//
// WARNING: This function does NOT check if 'n' bytes are available.
// If (offset + n) > len(buf), this will panic with a runtime slice bounds out of range error.
//
// Note: It returns a slice that *shares memory* with the original buffer.
func (b *Reader) Read(n int) []byte {
	res := b.buf[b.offset : b.offset+n]
	b.offset += n
	return res
}

// ReadByte consumes and returns a single byte.
// WARNING: Panics if buffer is empty.
func (b *Reader) ReadByte() byte {
	res := b.buf[b.offset]
	b.offset++
	return res
}

// HasPrefix reports whether the unread part of the buffer starts with p.
// The comparison is byte-exact. If fewer than len(p) bytes remain the answer
// is false; it never reads past the end.
func (b *Reader) HasPrefix(p []byte) bool {
	end := b.offset + len(p)
	if end > len(b.buf) {
		return false
	}
	return string(b.buf[b.offset:end]) == string(p)
}

// Skip advances the cursor by n bytes without returning them.
// WARNING: like Read, it does not check that n bytes remain.
func (b *Reader) Skip(n int) {
	b.offset += n
}

// Position returns the current cursor index of the Reader.
// Useful for determining how many bytes have been consumed.
func (b *Reader) Position() int {
	return b.offset
}

// Consumed returns buf[:Position()], the bytes already read.
func (b *Reader) Consumed() []byte {
	return b.buf[:b.offset]
}

// Bytes returns the entire underlying buffer of the Reader.
func (b *Reader) Bytes() []byte {
	return b.buf
}

// Bytes returns the accumulated content of the Writer.
func (b *Writer) Bytes() []byte {
	return b.buf
}

// Empty checks if the Reader has reached the end of the buffer.
// Returns true if there are no more bytes to read.
func (b *Reader) Empty() bool {
	return len(b.buf) == b.offset
}
