package ps

import (
	"fmt"
	"io"
)

// Context holds every piece of mutable state a single evaluation needs: the
// operand stack, the dictionary stack, the VM arena, the RNG, and the
// $error dictionary. There are no process-wide singletons — multiple
// independent Contexts may coexist and evaluate concurrently, each with
// exclusive ownership of its own state (see context_concurrent_test.go).
type Context struct {
	Operand   []Object
	DictStack []Handle
	VM        *VM

	rng   rng
	names nameTable

	Logf   func(format string, args ...interface{})
	Input  io.Reader
	Output io.Writer

	packing bool
}

// NewContext constructs a Context with systemdict, globaldict, and
// userdict pushed (bottom to top) on the dictionary stack, and a freshly
// allocated $error dictionary installed in userdict, per options.
func NewContext(opts ...ContextOption) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ctx := &Context{
		VM:     NewVM(o.memLimit),
		Logf:   o.logf,
		Input:  o.input,
		Output: o.output,
	}

	sysHandle, err := ctx.VM.InsertDictionary(&DictionaryCell{
		Values: systemDictValues(ctx),
		Access: AccessExecuteOnly,
	})
	if err != nil {
		return nil, err
	}
	globalHandle, err := ctx.VM.InsertDictionary(&DictionaryCell{Values: map[string]Object{}})
	if err != nil {
		return nil, err
	}
	userHandle, err := ctx.VM.InsertDictionary(&DictionaryCell{Values: map[string]Object{}})
	if err != nil {
		return nil, err
	}
	ctx.DictStack = []Handle{sysHandle, globalHandle, userHandle}

	errHandle, err := ctx.VM.InsertDictionary(&DictionaryCell{Values: map[string]Object{
		"newerror": NewBoolean(false),
	}})
	if err != nil {
		return nil, err
	}
	userDict, err := ctx.VM.Dictionary(userHandle)
	if err != nil {
		return nil, err
	}
	userDict.Set(errorDictName, NewDictionary(errHandle))

	if o.seed != 0 {
		ctx.rng.seed(o.seed)
	}

	return ctx, nil
}

// systemDictValues builds the entries for systemdict's dictionary cell: the
// builtin operators plus the true and false booleans. It is a plain map
// rather than built through DictionaryCell.Set, so the cell's Keys slice
// stays empty: key-order iteration (the pretty printer, dictionary copy)
// sees no entries in systemdict, while Get and FindDef see all of them.
func systemDictValues(ctx *Context) map[string]Object {
	entries := builtinOperators()
	values := make(map[string]Object, len(entries)+2)
	for name, fn := range entries {
		values[name] = NewOperator(fn)
	}
	values["true"] = NewBoolean(true)
	values["false"] = NewBoolean(false)
	return values
}

// Push appends obj to the top of the operand stack.
func (ctx *Context) Push(obj Object) { ctx.Operand = append(ctx.Operand, obj) }

// Pop removes and returns the top of the operand stack, failing
// StackUnderflow if empty.
func (ctx *Context) Pop() (Object, error) {
	if len(ctx.Operand) == 0 {
		return Object{}, newError(StackUnderflow, "")
	}
	top := ctx.Operand[len(ctx.Operand)-1]
	ctx.Operand = ctx.Operand[:len(ctx.Operand)-1]
	return top, nil
}

// PopInt pops and type-checks an Integer.
func (ctx *Context) PopInt() (int32, error) {
	obj, err := ctx.Pop()
	if err != nil {
		return 0, err
	}
	if obj.Kind != KindInteger {
		return 0, newError(TypeCheck, "expected integer")
	}
	return obj.Integer, nil
}

// PopReal pops an Integer or Real, promoting to float64.
func (ctx *Context) PopReal() (float64, error) {
	obj, err := ctx.Pop()
	if err != nil {
		return 0, err
	}
	return obj.AsReal()
}

// PopUSize pops an Integer and converts it to a non-negative index,
// failing RangeCheck (not TypeCheck) on a negative value.
func (ctx *Context) PopUSize() (int, error) {
	i, err := ctx.PopInt()
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, newError(RangeCheck, "negative index")
	}
	return int(i), nil
}

// PopBoolean pops and type-checks a Boolean.
func (ctx *Context) PopBoolean() (bool, error) {
	obj, err := ctx.Pop()
	if err != nil {
		return false, err
	}
	if obj.Kind != KindBoolean {
		return false, newError(TypeCheck, "expected boolean")
	}
	return obj.Boolean, nil
}

// PopDict pops and type-checks a Dictionary, returning its cell.
func (ctx *Context) PopDict() (*DictionaryCell, error) {
	obj, err := ctx.Pop()
	if err != nil {
		return nil, err
	}
	if obj.Kind != KindDictionary {
		return nil, newError(TypeCheck, "expected dictionary")
	}
	return ctx.VM.Dictionary(obj.Handle)
}

// PopArray pops and type-checks an Array, returning its cell.
func (ctx *Context) PopArray() (*ArrayCell, error) {
	obj, err := ctx.Pop()
	if err != nil {
		return nil, err
	}
	if obj.Kind != KindArray {
		return nil, newError(TypeCheck, "expected array")
	}
	return ctx.VM.Array(obj.Handle)
}

// PopString pops and type-checks a String, returning its cell.
func (ctx *Context) PopString() (*StringCell, error) {
	obj, err := ctx.Pop()
	if err != nil {
		return nil, err
	}
	if obj.Kind != KindString {
		return nil, newError(TypeCheck, "expected string")
	}
	return ctx.VM.String(obj.Handle)
}

// stringify implements the uniform dictionary-key normalization: Name and
// String keys stringify to their bytes; Integer/Real stringify to their
// textual form.
func (ctx *Context) stringify(obj Object) (string, error) {
	b, err := ctx.stringifyBytes(obj)
	return string(b), err
}

func (ctx *Context) stringifyBytes(obj Object) ([]byte, error) {
	switch obj.Kind {
	case KindName:
		return []byte(ctx.names.text(obj.Name.Symbol)), nil
	case KindString:
		cell, err := ctx.VM.String(obj.Handle)
		if err != nil {
			return nil, err
		}
		return cell.Bytes, nil
	case KindInteger:
		return []byte(fmt.Sprintf("%d", obj.Integer)), nil
	case KindReal:
		return []byte(formatReal(obj.Real)), nil
	default:
		return nil, newError(TypeCheck, "expected name, string, or number")
	}
}

// FindDef scans the dictionary stack from top to bottom for key, returning
// the first dictionary's binding regardless of its access level — systemdict
// itself is execute-only, and a lookup that honored that would never find an
// operator. Absence raises Undefined.
func (ctx *Context) FindDef(key string) (Object, error) {
	for i := len(ctx.DictStack) - 1; i >= 0; i-- {
		dict, err := ctx.VM.Dictionary(ctx.DictStack[i])
		if err != nil {
			return Object{}, err
		}
		if v, ok := dict.Get(key); ok {
			return v, nil
		}
	}
	return Object{}, newError(Undefined, key)
}

// findDictFor returns the dictionary cell nearest the top of the stack
// that already contains key, used by the store operator.
func (ctx *Context) findDictFor(key string) (*DictionaryCell, bool, error) {
	for i := len(ctx.DictStack) - 1; i >= 0; i-- {
		dict, err := ctx.VM.Dictionary(ctx.DictStack[i])
		if err != nil {
			return nil, false, err
		}
		if _, ok := dict.Get(key); ok {
			return dict, true, nil
		}
	}
	return nil, false, nil
}

// currentDict returns the dictionary cell at the top of the dictionary
// stack.
func (ctx *Context) currentDict() (*DictionaryCell, error) {
	if len(ctx.DictStack) == 0 {
		return nil, newError(DictStackUnderflow, "")
	}
	return ctx.VM.Dictionary(ctx.DictStack[len(ctx.DictStack)-1])
}

// internName interns s and returns a Name object for it with the given mode.
func (ctx *Context) internName(s string, mode Mode) Object {
	return NewName(ctx.names.intern(s), mode)
}
