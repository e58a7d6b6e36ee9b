package ps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOperator(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "5 type"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, KindName, ctx.Operand[0].Kind)
	assert.Equal(t, "integertype", ctx.names.text(ctx.Operand[0].Name.Symbol))
}

func TestEqNeCrossTypeNumeric(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "2 2.0 eq"))
	require.Len(t, ctx.Operand, 1)
	assert.True(t, ctx.Operand[0].Boolean)

	ctx2, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx2, "1 2 ne"))
	assert.True(t, ctx2.Operand[0].Boolean)
}

func TestEqNameAndStringByBytes(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "/foo (foo) eq"))
	require.Len(t, ctx.Operand, 1)
	assert.True(t, ctx.Operand[0].Boolean)
}

func TestNullOperator(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, run(t, ctx, "null"))
	require.Len(t, ctx.Operand, 1)
	assert.Equal(t, KindNull, ctx.Operand[0].Kind)
}
