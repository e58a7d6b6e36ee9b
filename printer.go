package ps

import (
	"strconv"
	"strings"
)

// formatReal renders a Real the way the reference printer does: a whole
// number prints with one decimal place ("3.0"), anything else prints via
// Go's shortest round-tripping decimal form.
func formatReal(r float64) string {
	if r == float64(int64(r)) {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// Sprint renders obj in the pretty-printed form used for stack dumps and
// the CLI's trace output: Integer decimal, Real per formatReal, Boolean
// true/false, String "(bytes)" without re-escaping, Name verbatim, Mark
// "mark", Null "null", literal arrays as "[ ... ]", executable arrays
// (procedures) as "{ ... }", and dictionaries as "<< k v ... >>".
func (ctx *Context) Sprint(obj Object) (string, error) {
	var buf strings.Builder
	if err := ctx.writeObject(&buf, obj); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SprintStack renders the operand stack bottom to top, space separated.
func (ctx *Context) SprintStack() (string, error) {
	var buf strings.Builder
	for i, obj := range ctx.Operand {
		if i > 0 {
			buf.WriteByte(' ')
		}
		if err := ctx.writeObject(&buf, obj); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func (ctx *Context) writeObject(buf *strings.Builder, obj Object) error {
	switch obj.Kind {
	case KindBoolean:
		if obj.Boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInteger:
		buf.WriteString(strconv.FormatInt(int64(obj.Integer), 10))
	case KindReal:
		buf.WriteString(formatReal(obj.Real))
	case KindNull:
		buf.WriteString("null")
	case KindMark:
		buf.WriteString("mark")
	case KindFontId:
		buf.WriteString("fontid")
	case KindName:
		buf.WriteString(ctx.names.text(obj.Name.Symbol))
	case KindOperator:
		buf.WriteString("--operator--")
	case KindString:
		cell, err := ctx.VM.String(obj.Handle)
		if err != nil {
			return err
		}
		buf.WriteByte('(')
		buf.Write(cell.Bytes)
		buf.WriteByte(')')
	case KindArray:
		cell, err := ctx.VM.Array(obj.Handle)
		if err != nil {
			return err
		}
		open, shut := "[ ", " ]"
		if cell.Mode == ModeExecutable {
			open, shut = "{ ", " }"
		}
		buf.WriteString(open)
		for i, elem := range cell.Elems {
			if i > 0 {
				buf.WriteByte(' ')
			}
			if err := ctx.writeObject(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteString(shut)
	case KindDictionary:
		cell, err := ctx.VM.Dictionary(obj.Handle)
		if err != nil {
			return err
		}
		buf.WriteString("<< ")
		for _, key := range cell.Keys {
			buf.WriteString(key)
			buf.WriteByte(' ')
			v, _ := cell.Get(key)
			if err := ctx.writeObject(buf, v); err != nil {
				return err
			}
			buf.WriteByte(' ')
		}
		buf.WriteString(">>")
	default:
		buf.WriteString("--invalid--")
	}
	return nil
}
