package fast

import "unsafe"

// UnsafeString returns a string that shares memory with b.
// The caller must treat b as immutable from this point on.
//
// WARNING: the returned string changes if b is modified afterwards.
func UnsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// UnsafeBytes returns a byte slice that shares memory with s.
// The returned slice must never be written to.
func UnsafeBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
