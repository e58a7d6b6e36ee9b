package ps

// opEq implements the eq operator's value-equality rules: cross-type
// Name/String comparison by bytes, numeric cross comparison by real
// promotion, everything else by objectsEqual.
func opEq(ctx *Context) error {
	rhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	lhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	eq, err := objectsEqual(ctx, lhs, rhs)
	if err != nil {
		return err
	}
	ctx.Push(NewBoolean(eq))
	return nil
}

// opNe is the logical negation of opEq.
func opNe(ctx *Context) error {
	rhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	lhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	eq, err := objectsEqual(ctx, lhs, rhs)
	if err != nil {
		return err
	}
	ctx.Push(NewBoolean(!eq))
	return nil
}
