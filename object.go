package ps

import "fmt"

// Kind identifies the tag of an Object's tagged union.
type Kind int

// The object kinds named by the type operator and the error taxonomy.
const (
	KindInvalid Kind = iota
	KindBoolean
	KindInteger
	KindReal
	KindNull
	KindMark
	KindFontId
	KindName
	KindOperator
	KindArray
	KindDictionary
	KindString
)

// String returns the PostScript type name pushed by the type operator.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "booleantype"
	case KindInteger:
		return "integertype"
	case KindReal:
		return "realtype"
	case KindNull:
		return "nulltype"
	case KindMark:
		return "marktype"
	case KindFontId:
		return "fonttype"
	case KindName:
		return "nametype"
	case KindOperator:
		return "operatortype"
	case KindArray:
		return "arraytype"
	case KindDictionary:
		return "dicttype"
	case KindString:
		return "stringtype"
	default:
		return "invalidtype"
	}
}

// Mode selects whether executing an object looks it up / runs it (Executable)
// or simply pushes it unchanged (Literal).
type Mode int

// The two modes a Name or composite array/dictionary can carry.
const (
	ModeExecutable Mode = iota
	ModeLiteral
)

// Access is the per-composite permission lattice: Unlimited grants read,
// write and execute; ReadOnly grants read and execute; ExecuteOnly grants
// only execute; None grants nothing.
type Access int

// Lattice members, ordered Unlimited ⊒ ReadOnly ⊒ ExecuteOnly ⊒ None.
const (
	AccessUnlimited Access = iota
	AccessReadOnly
	AccessExecuteOnly
	AccessNone
)

// IsWriteable reports whether the access level permits mutation.
func (a Access) IsWriteable() bool { return a == AccessUnlimited }

// IsReadable reports whether the access level permits reading contents.
func (a Access) IsReadable() bool { return a == AccessUnlimited || a == AccessReadOnly }

// IsExecutable reports whether the access level permits execution.
func (a Access) IsExecutable() bool {
	return a == AccessUnlimited || a == AccessReadOnly || a == AccessExecuteOnly
}

// Operator is a built-in procedure: a function from Context to an error.
type Operator func(ctx *Context) error

// Object is the tagged union at the heart of the language: every value on
// the operand stack, bound in a dictionary, or held in an array is an
// Object. Composite kinds (Array, Dictionary, String) carry a Handle into
// the owning Context's VM rather than their contents directly, giving them
// reference semantics: copying an Object copies the handle, not the backing
// storage.
type Object struct {
	Kind    Kind
	Boolean bool
	Integer int32
	Real    float64
	Name    Name
	Op      Operator
	Handle  Handle
}

// Name is the payload of a Name object: its interned byte identity and its
// executable/literal mode.
type Name struct {
	Symbol Symbol
	Mode   Mode
}

// Null is the singleton null object, used as the default fill for fresh
// arrays and pushed by the null operator.
var Null = Object{Kind: KindNull}

// Mark is the singleton sentinel object used to delimit groups on the
// operand stack ([, mark, <<).
var Mark = Object{Kind: KindMark}

// FontId is the singleton placeholder object for the fonttype kind; the
// core engine never constructs a font, but the type tag must exist so
// `type` and the error taxonomy can name it.
var FontId = Object{Kind: KindFontId}

// NewBoolean returns a Boolean object.
func NewBoolean(b bool) Object { return Object{Kind: KindBoolean, Boolean: b} }

// NewInteger returns an Integer object.
func NewInteger(i int32) Object { return Object{Kind: KindInteger, Integer: i} }

// NewReal returns a Real object.
func NewReal(r float64) Object { return Object{Kind: KindReal, Real: r} }

// NewOperator returns an Operator object wrapping fn.
func NewOperator(fn Operator) Object { return Object{Kind: KindOperator, Op: fn} }

// NewName returns a Name object with the given interned symbol and mode.
func NewName(sym Symbol, mode Mode) Object {
	return Object{Kind: KindName, Name: Name{Symbol: sym, Mode: mode}}
}

// NewArray returns an Array object referencing handle h.
func NewArray(h Handle) Object { return Object{Kind: KindArray, Handle: h} }

// NewDictionary returns a Dictionary object referencing handle h.
func NewDictionary(h Handle) Object { return Object{Kind: KindDictionary, Handle: h} }

// NewString returns a String object referencing handle h.
func NewString(h Handle) Object { return Object{Kind: KindString, Handle: h} }

// IsNumeric reports whether o is an Integer or Real.
func (o Object) IsNumeric() bool { return o.Kind == KindInteger || o.Kind == KindReal }

// IsComposite reports whether o carries a VM handle.
func (o Object) IsComposite() bool {
	switch o.Kind {
	case KindArray, KindDictionary, KindString:
		return true
	default:
		return false
	}
}

// AsReal promotes an Integer or Real object to a float64, failing TypeCheck
// on any other kind.
func (o Object) AsReal() (float64, error) {
	switch o.Kind {
	case KindInteger:
		return float64(o.Integer), nil
	case KindReal:
		return o.Real, nil
	default:
		return 0, newError(TypeCheck, fmt.Sprintf("expected numeric, got %v", o.Kind))
	}
}

// effectiveMode reports the effective mode of o: a Name's own mode, an
// Array's mode as stored in the VM, or ModeLiteral for a Dictionary and
// for every other kind.
func (o Object) effectiveMode(vm *VM) (Mode, error) {
	switch o.Kind {
	case KindName:
		return o.Name.Mode, nil
	case KindArray:
		arr, err := vm.Array(o.Handle)
		if err != nil {
			return ModeLiteral, err
		}
		return arr.Mode, nil
	case KindDictionary:
		return ModeLiteral, nil
	default:
		return ModeLiteral, nil
	}
}

// objectsEqual implements the eq operator's comparison rules: numeric cross
// comparison via real promotion, Name/String byte-identity, handle identity
// for arrays and dictionaries, and value equality for booleans, marks,
// nulls and font ids. Operators never compare equal, not even to themselves.
func objectsEqual(ctx *Context, lhs, rhs Object) (bool, error) {
	if lhs.IsNumeric() && rhs.IsNumeric() {
		l, err := lhs.AsReal()
		if err != nil {
			return false, err
		}
		r, err := rhs.AsReal()
		if err != nil {
			return false, err
		}
		return l == r, nil
	}

	if (lhs.Kind == KindString || lhs.Kind == KindName) &&
		(rhs.Kind == KindString || rhs.Kind == KindName) {
		lb, err := ctx.stringifyBytes(lhs)
		if err != nil {
			return false, err
		}
		rb, err := ctx.stringifyBytes(rhs)
		if err != nil {
			return false, err
		}
		return string(lb) == string(rb), nil
	}

	if lhs.Kind != rhs.Kind {
		return false, nil
	}

	switch lhs.Kind {
	case KindBoolean:
		return lhs.Boolean == rhs.Boolean, nil
	case KindArray, KindDictionary:
		return lhs.Handle == rhs.Handle, nil
	case KindMark, KindNull, KindFontId:
		return true, nil
	default:
		return false, nil
	}
}
