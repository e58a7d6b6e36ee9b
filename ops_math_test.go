package ps

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticIntegerStaysInteger(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "2 3 add"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, KindInteger, ctx.Operand[0].Kind)
	assert.Equal(t, int32(5), ctx.Operand[0].Integer)
}

func TestArithmeticOverflowPromotesToReal(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "2147483647 1 add"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, KindReal, ctx.Operand[0].Kind)
	assert.Equal(t, float64(math.MaxInt32)+1, ctx.Operand[0].Real)
}

func TestDivAlwaysReal(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "4 2 div"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, KindReal, ctx.Operand[0].Kind)
	assert.Equal(t, 2.0, ctx.Operand[0].Real)
}

func TestDivByZeroIsUndefinedResult(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	err = run(t, ctx, "1 0 div")
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, UndefinedResult, pe.Kind)
}

func TestIdivAndModRequireIntegers(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "7 2 idiv"))
	assert.Equal(t, int32(3), ctx.Operand[0].Integer)

	ctx2, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx2, "7 2 mod"))
	assert.Equal(t, int32(1), ctx2.Operand[0].Integer)

	ctx3, err := NewContext()
	require.NoError(t, err)
	err = run(t, ctx3, "7.0 2 idiv")
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, TypeCheck, pe.Kind)
}

func TestAbsNegOverflowGuard(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "-2147483648 abs"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, KindReal, ctx.Operand[0].Kind, "abs(MinInt32) overflows int32, promotes to real")
}

func TestRoundingOps(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "3.7 ceiling"))
	assert.Equal(t, 4.0, ctx.Operand[0].Real)

	ctx2, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx2, "3.7 floor"))
	assert.Equal(t, 3.0, ctx2.Operand[0].Real)

	ctx3, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx3, "3.2 truncate"))
	assert.Equal(t, 3.0, ctx3.Operand[0].Real)
}

func TestAtanNormalizesNegativeToPositiveDegrees(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "-1 0 atan"))
	require.Len(t, ctx.Operand, 1)
	got := ctx.Operand[0].Real
	assert.InDelta(t, 270.0, got, 1e-9)
}

func TestRandSrandRrandReproducible(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "99 srand rand"))
	require.Len(t, ctx.Operand, 1)
	first := ctx.Operand[0].Integer

	ctx2, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx2, "99 srand rand"))
	assert.Equal(t, first, ctx2.Operand[0].Integer)

	require.NoError(t, run(t, ctx, "rrand"))
	assert.Equal(t, int32(99), ctx.Operand[1].Integer)
}
