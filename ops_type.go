package ps

// opType pushes an executable Name naming obj's Kind, per the gettype
// vocabulary (e.g. "integertype", "arraytype").
func opType(ctx *Context) error {
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	ctx.Push(ctx.internName(obj.Kind.String(), ModeExecutable))
	return nil
}
