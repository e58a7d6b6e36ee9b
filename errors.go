package ps

import "fmt"

// ErrorKind is the fourteen-member taxonomy of failure categories an
// operator or the execution loop can raise.
type ErrorKind int

// The complete set of error kinds; names match the $error/errorname
// vocabulary and the handler-dictionary names operators dispatch to.
const (
	Unregistered ErrorKind = iota
	Syntax
	UnexpectedEof
	Undefined
	TypeCheck
	RangeCheck
	StackUnderflow
	UnmatchedMark
	InvalidAccess
	LimitCheck
	DictStackUnderflow
	IoError
	UndefinedResult
	VmError
)

var errorKindNames = [...]string{
	Unregistered:       "Unregistered",
	Syntax:             "Syntax",
	UnexpectedEof:      "UnexpectedEof",
	Undefined:          "Undefined",
	TypeCheck:          "TypeCheck",
	RangeCheck:         "RangeCheck",
	StackUnderflow:     "StackUnderflow",
	UnmatchedMark:      "UnmatchedMark",
	InvalidAccess:      "InvalidAccess",
	LimitCheck:         "LimitCheck",
	DictStackUnderflow: "DictStackUnderflow",
	IoError:            "IoError",
	UndefinedResult:    "UndefinedResult",
	VmError:            "VmError",
}

// String returns the kind's canonical $error/errorname spelling.
func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "Unregistered"
}

// Error is the concrete error value every operator and the execution loop
// return. It carries a Kind for programmatic dispatch and an optional
// human-readable detail.
type Error struct {
	Kind   ErrorKind
	Detail string

	reported bool
}

func newError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Error implements the error interface as "<KIND>: <detail>", the
// user-visible form the CLI prints to standard error after cobra's
// "Error: " prefix.
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// AsError reports whether err is (or wraps) a *ps.Error, returning it.
func AsError(err error) (*Error, bool) {
	pe, ok := err.(*Error)
	return pe, ok
}

const errorDictName = "$error"

// reportError populates the $error dictionary with the fields the original
// error-reporting operators use (newerror, errorname, command, ostack),
// then dispatches to a same-named handler in the dictionary stack if one is
// bound, mirroring handleerror's "newerror := false" acknowledgment
// protocol.
func (ctx *Context) reportError(err error, command Object) error {
	pe, ok := AsError(err)
	if !ok {
		pe = newError(Unregistered, err.Error())
	}
	if pe.reported {
		return pe
	}
	pe.reported = true

	dict, derr := ctx.errorDict()
	if derr != nil {
		return err
	}

	ostack := make([]Object, len(ctx.Operand))
	copy(ostack, ctx.Operand)
	arrHandle, aerr := ctx.VM.InsertArray(&ArrayCell{Elems: ostack, Mode: ModeLiteral, Access: AccessUnlimited})
	if aerr != nil {
		return err
	}

	dict.Set("newerror", NewBoolean(true))
	dict.Set("errorname", NewName(ctx.names.intern(pe.Kind.String()), ModeExecutable))
	dict.Set("command", command)
	dict.Set("ostack", NewArray(arrHandle))

	if handler, ferr := ctx.FindDef(pe.Kind.String()); ferr == nil {
		_ = ctx.Execute(handler)
	}

	return pe
}

// errorDict resolves the $error dictionary cell, which Context always
// installs in userdict at construction.
func (ctx *Context) errorDict() (*DictionaryCell, error) {
	obj, err := ctx.FindDef(errorDictName)
	if err != nil {
		return nil, err
	}
	if obj.Kind != KindDictionary {
		return nil, newError(VmError, "$error is not a dictionary")
	}
	return ctx.VM.Dictionary(obj.Handle)
}

// ErrorInfo reports the current contents of the $error dictionary as plain
// Go values, for front ends that want to render it (e.g. the CLI's --json
// dump) without reaching into VM internals themselves.
func (ctx *Context) ErrorInfo() (newerror bool, errorname, command, ostack string, err error) {
	dict, derr := ctx.errorDict()
	if derr != nil {
		return false, "", "", "", derr
	}
	if v, ok := dict.Get("newerror"); ok {
		newerror = v.Kind == KindBoolean && v.Boolean
	}
	if v, ok := dict.Get("errorname"); ok {
		if s, serr := ctx.Sprint(v); serr == nil {
			errorname = s
		}
	}
	if v, ok := dict.Get("command"); ok {
		if s, serr := ctx.Sprint(v); serr == nil {
			command = s
		}
	}
	if v, ok := dict.Get("ostack"); ok {
		if s, serr := ctx.Sprint(v); serr == nil {
			ostack = s
		}
	}
	return newerror, errorname, command, ostack, nil
}

// handleerror clears the newerror flag in $error; it is itself registered
// as an operator so scripts can invoke it explicitly after inspecting the
// error state.
func opHandleError(ctx *Context) error {
	dict, err := ctx.errorDict()
	if err != nil {
		return err
	}
	dict.Set("newerror", NewBoolean(false))
	return nil
}
