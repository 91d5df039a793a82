package normalize

import (
	"strings"

	"github.com/rony4d/go-rewrite/rewrite"
)

// crlfToLF replaces every CRLF with LF. A lone CR is kept.
func crlfToLF(b *rewrite.Buffer, in string) {
	for {
		i := strings.Index(in, "\r\n")
		if i < 0 {
			b.PushString(in)
			return
		}
		b.PushString(in[:i])
		b.Push('\n')
		in = in[i+2:]
	}
}

// trimTrailingSpace strips spaces and tabs before every line ending and at
// the end of the text. CRLF endings are preserved.
func trimTrailingSpace(b *rewrite.Buffer, in string) {
	for len(in) > 0 {
		line, eol := in, ""
		if i := strings.IndexByte(in, '\n'); i >= 0 {
			line, eol, in = in[:i], in[i:i+1], in[i+1:]
		} else {
			in = ""
		}

		cr := strings.HasSuffix(line, "\r")
		if cr {
			line = line[:len(line)-1]
		}
		b.PushString(strings.TrimRight(line, " \t"))
		if cr {
			b.Push('\r')
		}
		b.PushString(eol)
	}
}

// trimTrailingBlankLines collapses the run of line endings at the end of the
// text into its first one. A text made only of line endings becomes empty.
func trimTrailingBlankLines(b *rewrite.Buffer, in string) {
	body := strings.TrimRight(in, "\r\n")
	if body == "" {
		return
	}
	b.PushString(body)

	switch tail := in[len(body):]; {
	case strings.HasPrefix(tail, "\r\n"):
		b.PushString("\r\n")
	case tail != "":
		b.PushString(tail[:1])
	}
}

// finalNewline makes sure a non-empty text ends with a line feed.
func finalNewline(b *rewrite.Buffer, in string) {
	if in == "" {
		return
	}
	b.PushString(in)
	if !strings.HasSuffix(in, "\n") {
		b.Push('\n')
	}
}
