package ps

import "io"

// Execute runs a single object per its effective mode: a literal value (or
// literal-mode name/array) pushes unchanged; an executable Name resolves
// through the dictionary stack and recurses; an executable Array (a
// procedure) runs its elements in sequence; an Operator invokes directly.
// A failing operator or name lookup is reported through reportError before
// propagating, matching the single-dispatch error plumbing: each failure
// populates $error exactly once, at the point it originates, then keeps
// bubbling up unchanged.
func (ctx *Context) Execute(obj Object) error {
	if s, err := ctx.Sprint(obj); err == nil {
		ctx.Logf("exec %s", s)
	}
	switch obj.Kind {
	case KindOperator:
		if err := obj.Op(ctx); err != nil {
			return ctx.reportError(err, obj)
		}
		return nil

	case KindName:
		if obj.Name.Mode == ModeLiteral {
			ctx.Push(obj)
			return nil
		}
		name := ctx.names.text(obj.Name.Symbol)
		resolved, err := ctx.FindDef(name)
		if err != nil {
			return ctx.reportError(err, obj)
		}
		return ctx.Execute(resolved)

	case KindArray:
		arr, err := ctx.VM.Array(obj.Handle)
		if err != nil {
			return ctx.reportError(err, obj)
		}
		if arr.Mode != ModeExecutable {
			ctx.Push(obj)
			return nil
		}
		if !arr.Access.IsExecutable() {
			return ctx.reportError(newError(InvalidAccess, "array not executable"), obj)
		}
		for _, elem := range arr.Elems {
			if err := ctx.Execute(elem); err != nil {
				return err
			}
		}
		return nil

	default:
		// Boolean, Integer, Real, String, Null, Mark, FontId, Dictionary:
		// no executable form, so they always push.
		ctx.Push(obj)
		return nil
	}
}

// Run lexes src to exhaustion, pushing each freshly-lexed procedure
// (an executable array straight out of the lexer) instead of running it —
// {...} only runs once something executes it explicitly (if, ifelse,
// exec, a procedure bound by def and later invoked by name) — and
// Executing everything else immediately.
func (ctx *Context) Run(lx *Lexer) error {
	for {
		obj, err := lx.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if obj.Kind == KindArray {
			ctx.Push(obj)
			continue
		}
		if err := ctx.Execute(obj); err != nil {
			return err
		}
	}
}
