package ps

// opDup duplicates the top of the operand stack.
func opDup(ctx *Context) error {
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	ctx.Push(obj)
	ctx.Push(obj)
	return nil
}

// opExch swaps the top two operand stack entries.
func opExch(ctx *Context) error {
	first, err := ctx.Pop()
	if err != nil {
		return err
	}
	second, err := ctx.Pop()
	if err != nil {
		return err
	}
	ctx.Push(first)
	ctx.Push(second)
	return nil
}

// opPop discards the top of the operand stack.
func opPop(ctx *Context) error {
	_, err := ctx.Pop()
	return err
}

// opCopy implements the three-way overload: an Integer n duplicates the
// top n stack entries in place; an Array or Dictionary copies the
// readable source's entries into the writeable destination and pushes the
// destination back.
func opCopy(ctx *Context) error {
	top, err := ctx.Pop()
	if err != nil {
		return err
	}

	switch top.Kind {
	case KindInteger:
		n := int(top.Integer)
		if n < 0 {
			return newError(RangeCheck, "negative count")
		}
		if n > len(ctx.Operand) {
			return newError(StackUnderflow, "")
		}
		base := len(ctx.Operand) - n
		ctx.Operand = append(ctx.Operand, ctx.Operand[base:base+n]...)
		return nil

	case KindArray:
		src, err := ctx.PopArray()
		if err != nil {
			return err
		}
		if !src.Access.IsReadable() {
			return newError(InvalidAccess, "")
		}
		dst, err := ctx.VM.Array(top.Handle)
		if err != nil {
			return err
		}
		if !dst.Access.IsWriteable() {
			return newError(InvalidAccess, "")
		}
		if len(src.Elems) > len(dst.Elems) {
			return newError(RangeCheck, "")
		}
		copy(dst.Elems, src.Elems)
		ctx.Push(top)
		return nil

	case KindDictionary:
		src, err := ctx.PopDict()
		if err != nil {
			return err
		}
		if !src.Access.IsReadable() {
			return newError(InvalidAccess, "")
		}
		dst, err := ctx.VM.Dictionary(top.Handle)
		if err != nil {
			return err
		}
		if !dst.Access.IsWriteable() {
			return newError(InvalidAccess, "")
		}
		for _, key := range src.Keys {
			v, _ := src.Get(key)
			dst.Set(key, v)
		}
		ctx.Push(top)
		return nil

	default:
		return newError(TypeCheck, "expected integer, array, or dictionary")
	}
}

// opRoll performs an n-element, j-position circular shift of the top of
// the operand stack; j may be negative.
func opRoll(ctx *Context) error {
	j, err := ctx.PopInt()
	if err != nil {
		return err
	}
	n, err := ctx.PopInt()
	if err != nil {
		return err
	}
	if n < 0 {
		return newError(RangeCheck, "negative count")
	}
	if int(n) > len(ctx.Operand) {
		return newError(StackUnderflow, "")
	}
	if n == 0 {
		return nil
	}

	j = ((j % n) + n) % n
	base := len(ctx.Operand) - int(n)
	window := append([]Object(nil), ctx.Operand[base:]...)

	rolled := make([]Object, n)
	for i := 0; i < int(n); i++ {
		rolled[(i+int(j))%int(n)] = window[i]
	}
	copy(ctx.Operand[base:], rolled)
	return nil
}

// opIndex pushes a copy of the stack entry idx slots below the top.
func opIndex(ctx *Context) error {
	idx, err := ctx.PopUSize()
	if err != nil {
		return err
	}
	if len(ctx.Operand) == 0 {
		return newError(RangeCheck, "")
	}
	pos := len(ctx.Operand) - 1 - idx
	if pos < 0 {
		return newError(RangeCheck, "")
	}
	ctx.Push(ctx.Operand[pos])
	return nil
}

// opMark pushes the Mark sentinel; also bound to the one-byte name "[".
func opMark(ctx *Context) error {
	ctx.Push(Mark)
	return nil
}

// opClear empties the operand stack.
func opClear(ctx *Context) error {
	ctx.Operand = ctx.Operand[:0]
	return nil
}

// opCount pushes the current operand stack depth.
func opCount(ctx *Context) error {
	ctx.Push(NewInteger(int32(len(ctx.Operand))))
	return nil
}

// opCountToMark pushes the number of entries above the nearest Mark,
// failing UnmatchedMark if none is present.
func opCountToMark(ctx *Context) error {
	for i := len(ctx.Operand) - 1; i >= 0; i-- {
		if ctx.Operand[i].Kind == KindMark {
			return pushCount(ctx, len(ctx.Operand)-1-i)
		}
	}
	return newError(UnmatchedMark, "")
}

func pushCount(ctx *Context, n int) error {
	ctx.Push(NewInteger(int32(n)))
	return nil
}

// opClearToMark discards entries up to and including the nearest Mark,
// failing UnmatchedMark if none is present.
func opClearToMark(ctx *Context) error {
	for {
		obj, err := ctx.Pop()
		if err != nil {
			return newError(UnmatchedMark, "")
		}
		if obj.Kind == KindMark {
			return nil
		}
	}
}
