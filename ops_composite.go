package ps

// opArray allocates a fresh length-n array filled with Null, literal mode,
// unlimited access.
func opArray(ctx *Context) error {
	n, err := ctx.PopUSize()
	if err != nil {
		return err
	}
	elems := make([]Object, n)
	for i := range elems {
		elems[i] = Null
	}
	h, err := ctx.VM.InsertArray(&ArrayCell{Elems: elems, Mode: ModeLiteral, Access: AccessUnlimited})
	if err != nil {
		return err
	}
	ctx.Push(NewArray(h))
	return nil
}

// opEndArray implements "]": collects operand stack entries back to the
// nearest Mark into a new literal array, in original order.
func opEndArray(ctx *Context) error {
	var elems []Object
	for {
		obj, err := ctx.Pop()
		if err != nil {
			return newError(UnmatchedMark, "")
		}
		if obj.Kind == KindMark {
			break
		}
		elems = append(elems, obj)
	}
	for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}
	h, err := ctx.VM.InsertArray(&ArrayCell{Elems: elems, Mode: ModeLiteral, Access: AccessUnlimited})
	if err != nil {
		return err
	}
	ctx.Push(NewArray(h))
	return nil
}

// opLength pushes the element/entry count of an Array or Dictionary.
func opLength(ctx *Context) error {
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	switch obj.Kind {
	case KindArray:
		arr, err := ctx.VM.Array(obj.Handle)
		if err != nil {
			return err
		}
		if !arr.Access.IsReadable() {
			return newError(InvalidAccess, "")
		}
		ctx.Push(NewInteger(int32(len(arr.Elems))))
		return nil
	case KindDictionary:
		dict, err := ctx.VM.Dictionary(obj.Handle)
		if err != nil {
			return err
		}
		if !dict.Access.IsReadable() {
			return newError(InvalidAccess, "")
		}
		ctx.Push(NewInteger(int32(dict.Len())))
		return nil
	case KindString:
		str, err := ctx.VM.String(obj.Handle)
		if err != nil {
			return err
		}
		ctx.Push(NewInteger(int32(len(str.Bytes))))
		return nil
	default:
		return newError(TypeCheck, "expected array, dictionary, or string")
	}
}

// opGet reads one element out of an Array (by integer index) or
// Dictionary (by stringified key).
func opGet(ctx *Context) error {
	key, err := ctx.Pop()
	if err != nil {
		return err
	}
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	switch obj.Kind {
	case KindArray:
		arr, err := ctx.VM.Array(obj.Handle)
		if err != nil {
			return err
		}
		if arr.Access == AccessExecuteOnly || arr.Access == AccessNone {
			return newError(InvalidAccess, "")
		}
		idx, err := indexFromKey(key)
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(arr.Elems) {
			return newError(RangeCheck, "")
		}
		ctx.Push(arr.Elems[idx])
		return nil
	case KindDictionary:
		dict, err := ctx.VM.Dictionary(obj.Handle)
		if err != nil {
			return err
		}
		if !dict.Access.IsReadable() {
			return newError(InvalidAccess, "")
		}
		k, err := ctx.stringify(key)
		if err != nil {
			return err
		}
		v, ok := dict.Get(k)
		if !ok {
			return newError(Undefined, k)
		}
		ctx.Push(v)
		return nil
	default:
		return newError(TypeCheck, "expected array or dictionary")
	}
}

func indexFromKey(key Object) (int, error) {
	if key.Kind != KindInteger {
		return 0, newError(TypeCheck, "expected integer index")
	}
	if key.Integer < 0 {
		return 0, newError(RangeCheck, "negative index")
	}
	return int(key.Integer), nil
}

// opPut writes one element into an Array (by integer index) or
// Dictionary (by stringified key).
func opPut(ctx *Context) error {
	value, err := ctx.Pop()
	if err != nil {
		return err
	}
	key, err := ctx.Pop()
	if err != nil {
		return err
	}
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	switch obj.Kind {
	case KindArray:
		arr, err := ctx.VM.Array(obj.Handle)
		if err != nil {
			return err
		}
		if !arr.Access.IsWriteable() {
			return newError(InvalidAccess, "")
		}
		idx, err := indexFromKey(key)
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(arr.Elems) {
			return newError(RangeCheck, "")
		}
		arr.Elems[idx] = value
		return nil
	case KindDictionary:
		k, err := ctx.stringify(key)
		if err != nil {
			return err
		}
		dict, err := ctx.VM.Dictionary(obj.Handle)
		if err != nil {
			return err
		}
		if !dict.Access.IsWriteable() {
			return newError(InvalidAccess, "")
		}
		dict.Set(k, value)
		return nil
	default:
		return newError(TypeCheck, "expected array or dictionary")
	}
}

// opGetInterval pushes a fresh array holding count elements of a source
// array starting at index.
func opGetInterval(ctx *Context) error {
	count, err := ctx.PopUSize()
	if err != nil {
		return err
	}
	index, err := ctx.PopUSize()
	if err != nil {
		return err
	}
	arr, err := ctx.PopArray()
	if err != nil {
		return err
	}
	if !arr.Access.IsReadable() {
		return newError(InvalidAccess, "")
	}
	if index >= len(arr.Elems) {
		return newError(RangeCheck, "")
	}
	if index+count > len(arr.Elems) {
		return newError(RangeCheck, "")
	}
	sub := append([]Object(nil), arr.Elems[index:index+count]...)
	h, err := ctx.VM.InsertArray(&ArrayCell{Elems: sub, Mode: ModeLiteral, Access: AccessUnlimited})
	if err != nil {
		return err
	}
	ctx.Push(NewArray(h))
	return nil
}

// opPutInterval overwrites a writeable destination array's elements,
// starting at index, with a readable source array's contents, and pushes
// the destination array back.
func opPutInterval(ctx *Context) error {
	source, err := ctx.PopArray()
	if err != nil {
		return err
	}
	if !source.Access.IsReadable() {
		return newError(InvalidAccess, "")
	}
	src := append([]Object(nil), source.Elems...)

	index, err := ctx.PopUSize()
	if err != nil {
		return err
	}
	destObj, err := ctx.Pop()
	if err != nil {
		return err
	}
	if destObj.Kind != KindArray {
		return newError(TypeCheck, "expected array")
	}
	dest, err := ctx.VM.Array(destObj.Handle)
	if err != nil {
		return err
	}
	if !dest.Access.IsWriteable() {
		return newError(InvalidAccess, "")
	}
	if index+len(src) > len(dest.Elems) {
		return newError(RangeCheck, "")
	}
	copy(dest.Elems[index:], src)
	ctx.Push(destObj)
	return nil
}

// opAstore pops values to fill a pre-allocated array (bottom to top, so
// the array's first element is the deepest popped value) and pushes the
// array back.
func opAstore(ctx *Context) error {
	top, err := ctx.Pop()
	if err != nil {
		return err
	}
	if top.Kind != KindArray {
		return newError(TypeCheck, "expected array")
	}
	arr, err := ctx.VM.Array(top.Handle)
	if err != nil {
		return err
	}
	if !arr.Access.IsWriteable() {
		return newError(InvalidAccess, "")
	}
	n := len(arr.Elems)
	if n > len(ctx.Operand) {
		return newError(StackUnderflow, "")
	}
	stored := make([]Object, n)
	for i := n - 1; i >= 0; i-- {
		v, err := ctx.Pop()
		if err != nil {
			return err
		}
		stored[i] = v
	}
	arr.Elems = stored
	ctx.Push(top)
	return nil
}

// opAload pushes every element of a readable array, bottom to top, then
// the array itself.
func opAload(ctx *Context) error {
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	if obj.Kind != KindArray {
		return newError(TypeCheck, "expected array")
	}
	arr, err := ctx.VM.Array(obj.Handle)
	if err != nil {
		return err
	}
	if !arr.Access.IsReadable() {
		return newError(InvalidAccess, "")
	}
	for _, e := range arr.Elems {
		ctx.Push(e)
	}
	ctx.Push(obj)
	return nil
}

// opForAll runs a procedure once per element (array) or key/value pair
// (dictionary), pushing the element (or key then value) before each call.
func opForAll(ctx *Context) error {
	proc, err := ctx.Pop()
	if err != nil {
		return err
	}
	if proc.Kind != KindArray {
		return newError(TypeCheck, "expected procedure")
	}
	procCell, err := ctx.VM.Array(proc.Handle)
	if err != nil {
		return err
	}
	if procCell.Mode != ModeExecutable {
		return newError(TypeCheck, "expected procedure")
	}

	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	switch obj.Kind {
	case KindArray:
		arr, err := ctx.VM.Array(obj.Handle)
		if err != nil {
			return err
		}
		if !arr.Access.IsReadable() {
			return newError(InvalidAccess, "")
		}
		elems := append([]Object(nil), arr.Elems...)
		for _, e := range elems {
			ctx.Push(e)
			if err := ctx.Execute(proc); err != nil {
				return err
			}
		}
		return nil
	case KindDictionary:
		dict, err := ctx.VM.Dictionary(obj.Handle)
		if err != nil {
			return err
		}
		if !dict.Access.IsReadable() {
			return newError(InvalidAccess, "")
		}
		keys := append([]string(nil), dict.Keys...)
		for _, k := range keys {
			v, ok := dict.Get(k)
			if !ok {
				continue
			}
			ctx.Push(ctx.internName(k, ModeLiteral))
			ctx.Push(v)
			if err := ctx.Execute(proc); err != nil {
				return err
			}
		}
		return nil
	default:
		return newError(TypeCheck, "expected array or dictionary")
	}
}

// opPackedArray allocates a length-n, read-only array, the packing
// counterpart to array.
func opPackedArray(ctx *Context) error {
	n, err := ctx.PopUSize()
	if err != nil {
		return err
	}
	elems := make([]Object, n)
	for i := range elems {
		elems[i] = Null
	}
	h, err := ctx.VM.InsertArray(&ArrayCell{Elems: elems, Mode: ModeLiteral, Access: AccessReadOnly})
	if err != nil {
		return err
	}
	ctx.Push(NewArray(h))
	return nil
}

// opSetPacking toggles the packing-mode flag read by currentpacking.
func opSetPacking(ctx *Context) error {
	b, err := ctx.PopBoolean()
	if err != nil {
		return err
	}
	ctx.packing = b
	return nil
}

// opCurrentPacking pushes the packing-mode flag.
func opCurrentPacking(ctx *Context) error {
	ctx.Push(NewBoolean(ctx.packing))
	return nil
}
