package ps

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/opstack/pslang/internal/codec"
)

// errCloseBrace is returned internally by Lexer.next when it reads a '}'
// while collecting a procedure body; it never escapes the package.
var errCloseBrace = newError(Syntax, "unexpected }")

// Lexer turns a byte stream into a lazy sequence of Objects, per the
// grammar of numerics, string literals, names, and procedures. It interns
// Name bytes and allocates String/Array cells directly into the Context's
// VM as it lexes.
type Lexer struct {
	src *bufio.Reader
	ctx *Context
}

// NewLexer returns a Lexer reading from r, allocating composites into
// ctx's VM and interning names into ctx's symbol table.
func NewLexer(r io.Reader, ctx *Context) *Lexer {
	return &Lexer{src: bufio.NewReader(r), ctx: ctx}
}

func isWhitespace(b byte) bool {
	switch b {
	case 0x00, ' ', '\t', '\r', '\n', '\b', '\f':
		return true
	default:
		return false
	}
}

func isDelimiter(b byte) bool {
	switch b {
	case '<', '>', '(', ')', '[', ']', '{', '}', '/', '%':
		return true
	default:
		return false
	}
}

func (lx *Lexer) readByte() (byte, error) { return lx.src.ReadByte() }

func (lx *Lexer) peekByte() (byte, bool) {
	b, err := lx.src.Peek(1)
	if err != nil || len(b) == 0 {
		return 0, false
	}
	return b[0], true
}

func (lx *Lexer) skipWhitespaceAndComments() error {
	for {
		b, ok := lx.peekByte()
		if !ok {
			return nil
		}
		if isWhitespace(b) {
			_, _ = lx.readByte()
			continue
		}
		if b == '%' {
			_, _ = lx.readByte()
			for {
				c, err := lx.readByte()
				if err == io.EOF {
					return nil
				}
				if c == '\n' || c == '\f' {
					break
				}
			}
			continue
		}
		return nil
	}
}

// Next returns the next Object in the stream, or io.EOF once exhausted.
func (lx *Lexer) Next() (Object, error) {
	return lx.next(false)
}

func (lx *Lexer) next(inProc bool) (Object, error) {
	if err := lx.skipWhitespaceAndComments(); err != nil {
		return Object{}, err
	}
	b, err := lx.readByte()
	if err == io.EOF {
		return Object{}, io.EOF
	}

	switch b {
	case '(':
		return lx.readParenString()
	case '<':
		if p, ok := lx.peekByte(); ok && p == '<' {
			_, _ = lx.readByte()
			return lx.ctx.internName("<<", ModeExecutable), nil
		}
		if p, ok := lx.peekByte(); ok && p == '~' {
			_, _ = lx.readByte()
			return lx.readAscii85String()
		}
		return lx.readHexString()
	case '>':
		if p, ok := lx.peekByte(); ok && p == '>' {
			_, _ = lx.readByte()
			return lx.ctx.internName(">>", ModeExecutable), nil
		}
		return lx.ctx.internName(">", ModeExecutable), nil
	case '{':
		return lx.readProcedure()
	case '}':
		if inProc {
			return Object{}, errCloseBrace
		}
		return Object{}, newError(Syntax, "unexpected }")
	case '/':
		name, err := lx.readRegularRun()
		if err != nil {
			return Object{}, err
		}
		return lx.ctx.internName(name, ModeLiteral), nil
	case '[', ']':
		return lx.ctx.internName(string(b), ModeExecutable), nil
	default:
		token, err := lx.readRegularRunFrom(b)
		if err != nil {
			return Object{}, err
		}
		if obj, ok := parseNumeric(token); ok {
			return obj, nil
		}
		return lx.ctx.internName(token, ModeExecutable), nil
	}
}

func (lx *Lexer) readRegularRun() (string, error) {
	b, err := lx.readByte()
	if err == io.EOF {
		return "", nil
	}
	return lx.readRegularRunFrom(b)
}

func (lx *Lexer) readRegularRunFrom(first byte) (string, error) {
	var buf []byte
	buf = append(buf, first)
	for {
		b, ok := lx.peekByte()
		if !ok || isWhitespace(b) || isDelimiter(b) {
			break
		}
		_, _ = lx.readByte()
		buf = append(buf, b)
	}
	return string(buf), nil
}

// readProcedure collects objects until a matching '}', materializing them
// as an executable-mode, ExecuteOnly array.
func (lx *Lexer) readProcedure() (Object, error) {
	var elems []Object
	for {
		obj, err := lx.next(true)
		if err == errCloseBrace {
			break
		}
		if err == io.EOF {
			return Object{}, newError(Syntax, "unterminated procedure")
		}
		if err != nil {
			return Object{}, err
		}
		elems = append(elems, obj)
	}
	h, err := lx.ctx.VM.InsertArray(&ArrayCell{Elems: elems, Mode: ModeExecutable, Access: AccessExecuteOnly})
	if err != nil {
		return Object{}, err
	}
	return NewArray(h), nil
}

// readParenString reads a "(...)" literal: balanced, unescaped nested
// parens preserved, with \n \r \t \b \f \\ \( \) escapes, <LF>/<CR>[<LF>]
// line continuation, and three-digit octal escapes.
func (lx *Lexer) readParenString() (Object, error) {
	depth := 1
	var buf []byte
	for {
		b, err := lx.readByte()
		if err == io.EOF {
			return Object{}, newError(Syntax, "unterminated string")
		}
		switch b {
		case '(':
			depth++
			buf = append(buf, b)
		case ')':
			depth--
			if depth == 0 {
				h, err := lx.ctx.VM.InsertString(&StringCell{Bytes: buf, Access: AccessUnlimited})
				if err != nil {
					return Object{}, err
				}
				return NewString(h), nil
			}
			buf = append(buf, b)
		case '\\':
			b2, err := lx.readByte()
			if err == io.EOF {
				return Object{}, newError(Syntax, "unterminated string")
			}
			switch b2 {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case '\\':
				buf = append(buf, '\\')
			case '(':
				buf = append(buf, '(')
			case ')':
				buf = append(buf, ')')
			case '\n':
				// line continuation: produces no character
			case '\r':
				if p, ok := lx.peekByte(); ok && p == '\n' {
					_, _ = lx.readByte()
				}
			default:
				if b2 >= '0' && b2 <= '7' {
					val := int(b2 - '0')
					for n := 0; n < 2; n++ {
						p, ok := lx.peekByte()
						if !ok || p < '0' || p > '7' {
							break
						}
						_, _ = lx.readByte()
						val = val*8 + int(p-'0')
					}
					buf = append(buf, byte(val))
				} else {
					buf = append(buf, b2)
				}
			}
		default:
			buf = append(buf, b)
		}
	}
}

// readHexString reads a "<...>" literal up to the closing '>'.
func (lx *Lexer) readHexString() (Object, error) {
	var raw []byte
	for {
		b, err := lx.readByte()
		if err == io.EOF {
			return Object{}, newError(Syntax, "unterminated hex string")
		}
		if b == '>' {
			break
		}
		raw = append(raw, b)
	}
	decoded, err := codec.DecodeHex(raw)
	if err != nil {
		return Object{}, newError(Syntax, "invalid hex string")
	}
	h, err := lx.ctx.VM.InsertString(&StringCell{Bytes: decoded, Access: AccessUnlimited})
	if err != nil {
		return Object{}, err
	}
	return NewString(h), nil
}

// readAscii85String reads a "<~...~>" literal; the lexer has already
// consumed "<~".
func (lx *Lexer) readAscii85String() (Object, error) {
	var raw []byte
	for {
		b, err := lx.readByte()
		if err == io.EOF {
			return Object{}, newError(Syntax, "unterminated ascii85 string")
		}
		if b == '~' {
			p, ok := lx.peekByte()
			if ok && p == '>' {
				_, _ = lx.readByte()
				break
			}
		}
		raw = append(raw, b)
	}
	decoded, err := codec.DecodeAscii85(raw)
	if err != nil {
		return Object{}, newError(Syntax, "invalid ascii85 string")
	}
	h, err := lx.ctx.VM.InsertString(&StringCell{Bytes: decoded, Access: AccessUnlimited})
	if err != nil {
		return Object{}, err
	}
	return NewString(h), nil
}

// parseNumeric classifies a provisionally-numeric token per the grammar of
// §6: base#digits radix integers, decimal/scientific reals, and plain
// signed 32-bit integers, falling through to false (treat as a name) on
// any parse failure.
func parseNumeric(token string) (Object, bool) {
	if token == "" {
		return Object{}, false
	}
	first := token[0]
	if !(first == '+' || first == '-' || first == '.' || (first >= '0' && first <= '9')) {
		return Object{}, false
	}

	if idx := strings.IndexByte(token, '#'); idx > 0 {
		baseStr, digitsStr := token[:idx], token[idx+1:]
		base, err := strconv.Atoi(baseStr)
		if err != nil || base < 2 || base > 36 || digitsStr == "" {
			return Object{}, false
		}
		v, err := strconv.ParseInt(digitsStr, base, 64)
		if err != nil {
			return Object{}, false
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			return NewReal(float64(v)), true
		}
		return NewInteger(int32(v)), true
	}

	if v, err := strconv.ParseInt(token, 10, 32); err == nil {
		return NewInteger(int32(v)), true
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return NewReal(f), true
	}
	return Object{}, false
}
