package ps

// opDict allocates a fresh dictionary with a documented capacity hint;
// the engine does not enforce the capacity as a hard cap (see maxlength).
func opDict(ctx *Context) error {
	capacity, err := ctx.PopUSize()
	if err != nil {
		return err
	}
	h, err := ctx.VM.InsertDictionary(&DictionaryCell{Capacity: capacity, Values: map[string]Object{}})
	if err != nil {
		return err
	}
	ctx.Push(NewDictionary(h))
	return nil
}

// opEndDict implements ">>": collects key/value pairs back to the
// nearest Mark into a new dictionary. An unpaired key below the mark is
// RangeCheck.
func opEndDict(ctx *Context) error {
	pairs := map[string]Object{}
	var order []string
	for {
		value, err := ctx.Pop()
		if err != nil {
			return newError(UnmatchedMark, "")
		}
		if value.Kind == KindMark {
			break
		}
		key, err := ctx.Pop()
		if err != nil {
			return newError(UnmatchedMark, "")
		}
		if key.Kind == KindMark {
			return newError(RangeCheck, "unpaired key")
		}
		k, err := ctx.stringify(key)
		if err != nil {
			return err
		}
		if _, exists := pairs[k]; !exists {
			order = append(order, k)
		}
		pairs[k] = value
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	h, err := ctx.VM.InsertDictionary(&DictionaryCell{Keys: order, Values: pairs})
	if err != nil {
		return err
	}
	ctx.Push(NewDictionary(h))
	return nil
}

// opMaxLength pushes a readable dictionary's capacity hint.
func opMaxLength(ctx *Context) error {
	dict, err := ctx.PopDict()
	if err != nil {
		return err
	}
	if !dict.Access.IsReadable() {
		return newError(InvalidAccess, "")
	}
	ctx.Push(NewInteger(int32(dict.Capacity)))
	return nil
}

// opBegin pushes a Dictionary onto the dictionary stack.
func opBegin(ctx *Context) error {
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	if obj.Kind != KindDictionary {
		return newError(TypeCheck, "expected dictionary")
	}
	ctx.DictStack = append(ctx.DictStack, obj.Handle)
	return nil
}

// opEnd pops the dictionary stack, refusing to remove the three initial
// system/global/user dictionaries.
func opEnd(ctx *Context) error {
	if len(ctx.DictStack) <= 3 {
		return newError(DictStackUnderflow, "")
	}
	ctx.DictStack = ctx.DictStack[:len(ctx.DictStack)-1]
	return nil
}

// opDef binds key to value in the dictionary at the top of the
// dictionary stack.
func opDef(ctx *Context) error {
	value, err := ctx.Pop()
	if err != nil {
		return err
	}
	keyObj, err := ctx.Pop()
	if err != nil {
		return err
	}
	key, err := ctx.stringify(keyObj)
	if err != nil {
		return err
	}
	dict, err := ctx.currentDict()
	if err != nil {
		return err
	}
	if !dict.Access.IsWriteable() {
		return newError(InvalidAccess, "")
	}
	dict.Set(key, value)
	return nil
}

// opLoad resolves key through the dictionary stack and pushes its value
// without executing it.
func opLoad(ctx *Context) error {
	keyObj, err := ctx.Pop()
	if err != nil {
		return err
	}
	key, err := ctx.stringify(keyObj)
	if err != nil {
		return err
	}
	obj, err := ctx.FindDef(key)
	if err != nil {
		return err
	}
	ctx.Push(obj)
	return nil
}

// opStore rebinds key in the dictionary that already holds it, falling
// back to the current dictionary when key is unbound anywhere.
func opStore(ctx *Context) error {
	value, err := ctx.Pop()
	if err != nil {
		return err
	}
	keyObj, err := ctx.Pop()
	if err != nil {
		return err
	}
	key, err := ctx.stringify(keyObj)
	if err != nil {
		return err
	}

	dict, found, err := ctx.findDictFor(key)
	if err != nil {
		return err
	}
	if !found {
		dict, err = ctx.currentDict()
		if err != nil {
			return err
		}
	}
	dict.Set(key, value)
	return nil
}

// opUndef removes key from a writeable dictionary.
func opUndef(ctx *Context) error {
	keyObj, err := ctx.Pop()
	if err != nil {
		return err
	}
	key, err := ctx.stringify(keyObj)
	if err != nil {
		return err
	}
	dict, err := ctx.PopDict()
	if err != nil {
		return err
	}
	if !dict.Access.IsWriteable() {
		return newError(InvalidAccess, "")
	}
	if !dict.Delete(key) {
		return newError(Undefined, key)
	}
	return nil
}

// opKnown reports whether key is bound in a readable dictionary.
func opKnown(ctx *Context) error {
	keyObj, err := ctx.Pop()
	if err != nil {
		return err
	}
	key, err := ctx.stringify(keyObj)
	if err != nil {
		return err
	}
	dict, err := ctx.PopDict()
	if err != nil {
		return err
	}
	if !dict.Access.IsReadable() {
		return newError(InvalidAccess, "")
	}
	_, ok := dict.Get(key)
	ctx.Push(NewBoolean(ok))
	return nil
}

// opWhereDef searches the dictionary stack for key, pushing the owning
// dictionary and true, or just false if unbound anywhere. Like FindDef it
// ignores access levels, so operators in execute-only systemdict are found.
func opWhereDef(ctx *Context) error {
	keyObj, err := ctx.Pop()
	if err != nil {
		return err
	}
	key, err := ctx.stringify(keyObj)
	if err != nil {
		return err
	}
	for i := len(ctx.DictStack) - 1; i >= 0; i-- {
		dict, err := ctx.VM.Dictionary(ctx.DictStack[i])
		if err != nil {
			return err
		}
		if _, ok := dict.Get(key); ok {
			ctx.Push(NewDictionary(ctx.DictStack[i]))
			ctx.Push(NewBoolean(true))
			return nil
		}
	}
	ctx.Push(NewBoolean(false))
	return nil
}

// opCurrentDict pushes the dictionary at the top of the dictionary stack.
func opCurrentDict(ctx *Context) error {
	h := ctx.DictStack[len(ctx.DictStack)-1]
	ctx.Push(NewDictionary(h))
	return nil
}

// opCountDictStack pushes the current dictionary stack depth.
func opCountDictStack(ctx *Context) error {
	ctx.Push(NewInteger(int32(len(ctx.DictStack))))
	return nil
}
