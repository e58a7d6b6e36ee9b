package cmd

import (
	"io"
	"unicode/utf8"

	"github.com/opstack/pslang/internal/fileinput"
)

// namedReader pairs a reader with the name fileinput.Input reports for it
// in Location.Name.
type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// runeSource adapts a fileinput.Input's rune-at-a-time reading (which
// tracks line/column location across a queue of sources) back into the
// byte-oriented io.Reader the lexer scans from. pending holds bytes of a
// multi-byte rune that didn't fit in the caller's last buffer.
type runeSource struct {
	in      *fileinput.Input
	pending []byte
}

func (rs *runeSource) Read(p []byte) (int, error) {
	if len(rs.pending) == 0 {
		r, _, err := rs.in.ReadRune()
		if err != nil {
			return 0, err
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		rs.pending = buf[:n]
	}
	n := copy(p, rs.pending)
	rs.pending = rs.pending[n:]
	return n, nil
}
