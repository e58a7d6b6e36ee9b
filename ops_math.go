package ps

import "math"

func isValidReal(r float64) bool { return !math.IsInf(r, 0) && !math.IsNaN(r) }

func radiansToDegrees(r float64) float64 { return r * (180.0 / math.Pi) }
func degreesToRadians(d float64) float64 { return (d * math.Pi) / 180.0 }

func positiveDegrees(d float64) float64 {
	if d < 0 {
		return 360.0 + d
	}
	return d
}

// numericBinOp pops two numeric operands (rhs first per stack order) and
// applies intOp when both are Integer (falling back to realOp on overflow,
// per checked-add semantics), or realOp after promoting either operand.
func numericBinOp(ctx *Context, intOp func(a, b int32) (int32, bool), realOp func(a, b float64) float64) error {
	rhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	lhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	if !lhs.IsNumeric() || !rhs.IsNumeric() {
		return newError(TypeCheck, "expected numerics")
	}

	if lhs.Kind == KindInteger && rhs.Kind == KindInteger && intOp != nil {
		if v, ok := intOp(lhs.Integer, rhs.Integer); ok {
			ctx.Push(NewInteger(v))
			return nil
		}
	}

	l, _ := lhs.AsReal()
	r, _ := rhs.AsReal()
	total := realOp(l, r)
	if !isValidReal(total) {
		return newError(UndefinedResult, "")
	}
	ctx.Push(NewReal(total))
	return nil
}

func opAdd(ctx *Context) error {
	return numericBinOp(ctx,
		func(a, b int32) (int32, bool) {
			s := int64(a) + int64(b)
			if s < math.MinInt32 || s > math.MaxInt32 {
				return 0, false
			}
			return int32(s), true
		},
		func(a, b float64) float64 { return a + b },
	)
}

func opSub(ctx *Context) error {
	return numericBinOp(ctx,
		func(a, b int32) (int32, bool) {
			s := int64(a) - int64(b)
			if s < math.MinInt32 || s > math.MaxInt32 {
				return 0, false
			}
			return int32(s), true
		},
		func(a, b float64) float64 { return a - b },
	)
}

func opMul(ctx *Context) error {
	return numericBinOp(ctx,
		func(a, b int32) (int32, bool) {
			s := int64(a) * int64(b)
			if s < math.MinInt32 || s > math.MaxInt32 {
				return 0, false
			}
			return int32(s), true
		},
		func(a, b float64) float64 { return a * b },
	)
}

// opDiv always produces a Real, per the language's / operator.
func opDiv(ctx *Context) error {
	rhs, err := ctx.PopReal()
	if err != nil {
		return err
	}
	lhs, err := ctx.PopReal()
	if err != nil {
		return err
	}
	if rhs == 0 {
		return newError(UndefinedResult, "division by zero")
	}
	total := lhs / rhs
	if !isValidReal(total) {
		return newError(UndefinedResult, "")
	}
	ctx.Push(NewReal(total))
	return nil
}

// opIdiv is truncating integer division; both operands must be Integer.
func opIdiv(ctx *Context) error {
	rhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	lhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	if rhs.Kind != KindInteger || lhs.Kind != KindInteger {
		return newError(TypeCheck, "expected integers")
	}
	if rhs.Integer == 0 {
		return newError(UndefinedResult, "division by zero")
	}
	ctx.Push(NewInteger(lhs.Integer / rhs.Integer))
	return nil
}

// opMod is truncating integer remainder; both operands must be Integer.
func opMod(ctx *Context) error {
	rhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	lhs, err := ctx.Pop()
	if err != nil {
		return err
	}
	if rhs.Kind != KindInteger || lhs.Kind != KindInteger {
		return newError(TypeCheck, "expected integers")
	}
	if rhs.Integer == 0 {
		return newError(UndefinedResult, "division by zero")
	}
	ctx.Push(NewInteger(lhs.Integer % rhs.Integer))
	return nil
}

// numericUnaryOp pops one numeric operand and applies intOp/realOp the
// same way numericBinOp does for two.
func numericUnaryOp(ctx *Context, intOp func(a int32) (int32, bool), realOp func(a float64) float64) error {
	obj, err := ctx.Pop()
	if err != nil {
		return err
	}
	if !obj.IsNumeric() {
		return newError(TypeCheck, "expected numeric")
	}
	if obj.Kind == KindInteger && intOp != nil {
		if v, ok := intOp(obj.Integer); ok {
			ctx.Push(NewInteger(v))
			return nil
		}
	}
	r, _ := obj.AsReal()
	total := realOp(r)
	if !isValidReal(total) {
		return newError(UndefinedResult, "")
	}
	ctx.Push(NewReal(total))
	return nil
}

func opAbs(ctx *Context) error {
	return numericUnaryOp(ctx,
		func(a int32) (int32, bool) {
			if a == math.MinInt32 {
				return 0, false
			}
			if a < 0 {
				return -a, true
			}
			return a, true
		},
		math.Abs,
	)
}

func opNeg(ctx *Context) error {
	return numericUnaryOp(ctx,
		func(a int32) (int32, bool) {
			if a == math.MinInt32 {
				return 0, false
			}
			return -a, true
		},
		func(a float64) float64 { return -a },
	)
}

// identityIntOp leaves an Integer operand unchanged: ceiling/floor/round/
// truncate of an integer is that integer.
func identityIntOp(a int32) (int32, bool) { return a, true }

func opCeiling(ctx *Context) error { return numericUnaryOp(ctx, identityIntOp, math.Ceil) }
func opFloor(ctx *Context) error   { return numericUnaryOp(ctx, identityIntOp, math.Floor) }
func opRound(ctx *Context) error   { return numericUnaryOp(ctx, identityIntOp, math.Round) }
func opTruncate(ctx *Context) error {
	return numericUnaryOp(ctx, identityIntOp, math.Trunc)
}

func opSqrt(ctx *Context) error { return numericUnaryOp(ctx, nil, math.Sqrt) }
func opExp(ctx *Context) error {
	return numericBinOp(ctx, nil, math.Pow)
}
func opLn(ctx *Context) error  { return numericUnaryOp(ctx, nil, math.Log) }
func opLog(ctx *Context) error { return numericUnaryOp(ctx, nil, math.Log10) }

// opAtan computes atan2(num, den) in degrees, normalized to [0, 360).
func opAtan(ctx *Context) error {
	return numericBinOp(ctx, nil, func(num, den float64) float64 {
		return positiveDegrees(radiansToDegrees(math.Atan2(num, den)))
	})
}

func opCos(ctx *Context) error {
	return numericUnaryOp(ctx, nil, func(deg float64) float64 { return math.Cos(degreesToRadians(deg)) })
}

func opSin(ctx *Context) error {
	return numericUnaryOp(ctx, nil, func(deg float64) float64 { return math.Sin(degreesToRadians(deg)) })
}

// opRand advances the RNG and pushes its non-negative output.
func opRand(ctx *Context) error {
	ctx.Push(NewInteger(ctx.rng.next()))
	return nil
}

// opSrand reseeds the RNG from an Integer operand.
func opSrand(ctx *Context) error {
	seed, err := ctx.PopInt()
	if err != nil {
		return err
	}
	ctx.rng.seed(seed)
	return nil
}

// opRrand pushes the generator's current seed without advancing it.
func opRrand(ctx *Context) error {
	ctx.Push(NewInteger(ctx.rng.current()))
	return nil
}
