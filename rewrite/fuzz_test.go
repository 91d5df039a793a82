package rewrite

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzBuffer pushes an arbitrary text split at an arbitrary point and checks
// the result against the obvious model: the concatenation, borrowed exactly
// when it is a prefix of the original.
func FuzzBuffer(f *testing.F) {
	f.Add("abc", "abc", 1)
	f.Add("abc", "ab", 1)
	f.Add("abc", "abcd", 2)
	f.Add("abc", "abd", 0)
	f.Add("", "", 0)
	f.Add("日本語", "日本", 3)
	f.Add("emoji 🎉 test", "emoji 🎉", 7)

	f.Fuzz(func(t *testing.T, original, expected string, split int) {
		if !utf8.ValidString(expected) {
			return
		}
		if split < 0 {
			split = -(split + 1)
		}
		split %= len(expected) + 1
		for split < len(expected) && !utf8.RuneStart(expected[split]) {
			split--
		}

		b := New(Borrow(original))
		b.PushString(expected[:split])
		if b.Len() != split {
			t.Fatalf("Len = %d after first write, want %d", b.Len(), split)
		}
		for _, r := range expected[split:] {
			b.Push(r)
		}
		got := b.Finalize()

		if got.String() != expected {
			t.Fatalf("content mismatch: got %q, want %q", got.String(), expected)
		}
		if want := strings.HasPrefix(original, expected); got.IsBorrowed() != want {
			t.Fatalf("IsBorrowed = %v, want %v", got.IsBorrowed(), want)
		}
		if got.IsBorrowed() && len(expected) > 0 && !sameData(original, got.String()) {
			t.Fatalf("borrowed text does not point into the original")
		}

		// The same writes against an owned copy give the same answer.
		ob := New(Own([]byte(original)))
		ob.PushString(expected)
		og := ob.Finalize()
		if og.String() != expected || og.IsBorrowed() != got.IsBorrowed() {
			t.Fatalf("owned source mismatch: got %q (borrowed=%v)", og.String(), og.IsBorrowed())
		}
	})
}
