package ps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayAllocateGetPut(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "3 array dup 1 99 put dup 1 get"))
	require.Len(t, ctx.Operand, 2)
	assert.Equal(t, KindArray, ctx.Operand[0].Kind)
	assert.Equal(t, int32(99), ctx.Operand[1].Integer)
}

func TestEndArrayCollectsToMarkInOrder(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "[ 1 2 3 ] 0 get"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, int32(1), ctx.Operand[0].Integer)
}

func TestEndArrayUnmatchedMark(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	err = run(t, ctx, "1 2 ]")
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, UnmatchedMark, pe.Kind)
}

func TestLengthArrayDictString(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "[ 1 2 3 ] length"))
	assert.Equal(t, int32(3), ctx.Operand[0].Integer)

	ctx2, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx2, "<< /a 1 /b 2 >> length"))
	assert.Equal(t, int32(2), ctx2.Operand[0].Integer)

	ctx3, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx3, "(hello) length"))
	assert.Equal(t, int32(5), ctx3.Operand[0].Integer)
}

func TestGetIntervalPutInterval(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "[ 1 2 3 4 5 ] 1 3 getinterval"))
	require.Len(t, ctx.Operand, 1)
	cell, err := ctx.VM.Array(ctx.Operand[0].Handle)
	require.NoError(t, err)
	require.Len(t, cell.Elems, 3)
	assert.Equal(t, int32(2), cell.Elems[0].Integer)
	assert.Equal(t, int32(4), cell.Elems[2].Integer)

	ctx2, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx2, "[ 0 0 0 0 ] 1 [ 9 9 ] putinterval"))
	require.Len(t, ctx2.Operand, 1)
	cell2, err := ctx2.VM.Array(ctx2.Operand[0].Handle)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 9, 9, 0}, []int32{
		cell2.Elems[0].Integer, cell2.Elems[1].Integer, cell2.Elems[2].Integer, cell2.Elems[3].Integer,
	})
}

func TestAstoreAload(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "1 2 3 3 array astore"))
	require.Len(t, ctx.Operand, 1)
	cell, err := ctx.VM.Array(ctx.Operand[0].Handle)
	require.NoError(t, err)
	assert.Equal(t, int32(1), cell.Elems[0].Integer)
	assert.Equal(t, int32(3), cell.Elems[2].Integer)

	require.NoError(t, run(t, ctx, "aload"))
	require.Len(t, ctx.Operand, 4)
	assert.Equal(t, int32(1), ctx.Operand[0].Integer)
	assert.Equal(t, int32(3), ctx.Operand[2].Integer)
	assert.Equal(t, KindArray, ctx.Operand[3].Kind)
}

func TestForAllArrayAndDictionary(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "0 [ 1 2 3 ] { add } forall"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, int32(6), ctx.Operand[0].Integer)

	ctx2, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx2, "0 << /a 10 /b 20 >> { exch pop add } forall"))
	require.Len(t, ctx2.Operand, 1)
	assert.Equal(t, int32(30), ctx2.Operand[0].Integer)
}

func TestPackedArrayIsReadOnly(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "2 packedarray"))
	cell, err := ctx.VM.Array(ctx.Operand[0].Handle)
	require.NoError(t, err)
	assert.Equal(t, AccessReadOnly, cell.Access)
}

func TestSetCurrentPacking(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "true setpacking currentpacking"))
	require.Len(t, ctx.Operand, 1)
	assert.True(t, ctx.Operand[0].Boolean)
}
