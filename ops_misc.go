package ps

// opNull pushes the Null singleton.
func opNull(ctx *Context) error {
	ctx.Push(Null)
	return nil
}

// opExec executes the top of the operand stack as code, the explicit
// counterpart to a bare executable name — used to invoke a procedure
// that was pushed as data (by load, or as a top-level {...} literal).
func opExec(ctx *Context) error {
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	return ctx.Execute(obj)
}

// opIf conditionally executes a procedure.
func opIf(ctx *Context) error {
	proc, err := ctx.Pop()
	if err != nil {
		return err
	}
	cond, err := ctx.PopBoolean()
	if err != nil {
		return err
	}
	if !cond {
		return nil
	}
	return ctx.Execute(proc)
}

// opIfElse executes one of two procedures depending on the boolean
// condition.
func opIfElse(ctx *Context) error {
	elseProc, err := ctx.Pop()
	if err != nil {
		return err
	}
	thenProc, err := ctx.Pop()
	if err != nil {
		return err
	}
	cond, err := ctx.PopBoolean()
	if err != nil {
		return err
	}
	if cond {
		return ctx.Execute(thenProc)
	}
	return ctx.Execute(elseProc)
}
