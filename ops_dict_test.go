package ps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictDefKnownLoad(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "/x 42 def x"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, int32(42), ctx.Operand[0].Integer)

	require.NoError(t, run(t, ctx, "currentdict /x known"))
	require.Len(t, ctx.Operand, 2)
	assert.True(t, ctx.Operand[1].Boolean)
}

func TestDictBeginEndRespectsFloor(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "10 dict begin"))
	require.Len(t, ctx.DictStack, 4)

	require.NoError(t, run(t, ctx, "end"))
	require.Len(t, ctx.DictStack, 3)

	err = run(t, ctx, "end")
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, DictStackUnderflow, pe.Kind)
}

func TestDictScopingShadowsOuter(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "/x 1 def 5 dict begin /x 2 def x"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, int32(2), ctx.Operand[0].Integer, "inner dict's binding shadows the outer one")

	require.NoError(t, run(t, ctx, "end x"))
	require.Len(t, ctx.Operand, 2)
	assert.Equal(t, int32(1), ctx.Operand[1].Integer, "outer binding reappears once the inner dict ends")
}

func TestDictStoreRebindsOwningDict(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "/x 1 def 5 dict begin /x 9 store end x"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, int32(9), ctx.Operand[0].Integer, "store rebinds x in userdict, where it was already defined, not in the inner dict")
}

func TestDictUndef(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "/x 1 def currentdict /x undef"))
	require.NoError(t, run(t, ctx, "currentdict /x known"))
	require.Len(t, ctx.Operand, 1)
	assert.False(t, ctx.Operand[0].Boolean)
}

func TestDictWhereDef(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "/add where"))
	require.Len(t, ctx.Operand, 2)
	assert.True(t, ctx.Operand[1].Boolean)
	assert.Equal(t, KindDictionary, ctx.Operand[0].Kind)

	ctx2, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx2, "/nope where"))
	require.Len(t, ctx2.Operand, 1)
	assert.False(t, ctx2.Operand[0].Boolean)
}

func TestDictMaxLengthAndCountDictStack(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "10 dict maxlength"))
	assert.Equal(t, int32(10), ctx.Operand[0].Integer)

	require.NoError(t, run(t, ctx, "countdictstack"))
	assert.Equal(t, int32(3), ctx.Operand[1].Integer)
}

func TestEndDictUnpairedKeyIsRangeCheck(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	err = run(t, ctx, "<< /a >>")
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, RangeCheck, pe.Kind)
}
