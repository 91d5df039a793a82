package normalize

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/rony4d/go-rewrite/rewrite"
)

// nfc rewrites the text into Unicode Normalization Form C.
func nfc(b *rewrite.Buffer, in string) {
	if norm.NFC.IsNormalString(in) {
		b.PushString(in)
		return
	}
	// Segments that are already composed still match the input, so the
	// Buffer only starts copying at the first one that changes.
	var it norm.Iter
	it.InitString(norm.NFC, in)
	for !it.Done() {
		b.Write(it.Next())
	}
}

const spaces = "                                "

// expandTabs replaces tabs with spaces up to the next multiple of width.
// Columns are counted in grapheme clusters using their display width, so
// wide and combining characters line up the way a terminal shows them.
func expandTabs(width int) Func {
	return func(b *rewrite.Buffer, in string) {
		var (
			col     int
			cluster string
			w       int
		)
		state := -1
		for len(in) > 0 {
			cluster, in, w, state = uniseg.FirstGraphemeClusterInString(in, state)
			switch cluster {
			case "\t":
				n := width - col%width
				pushSpaces(b, n)
				col += n
			case "\n", "\r\n", "\r":
				b.PushString(cluster)
				col = 0
			default:
				b.PushString(cluster)
				col += w
			}
		}
	}
}

func pushSpaces(b *rewrite.Buffer, n int) {
	for n > len(spaces) {
		b.PushString(spaces)
		n -= len(spaces)
	}
	b.PushString(spaces[:n])
}
