package ps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextInstallsDictStack(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.Len(t, ctx.DictStack, 3, "systemdict, globaldict, userdict")

	sysDict, err := ctx.VM.Dictionary(ctx.DictStack[0])
	require.NoError(t, err)
	assert.Equal(t, AccessExecuteOnly, sysDict.Access)
	_, ok := sysDict.Get("add")
	assert.True(t, ok, "systemdict is pre-populated with builtin operators")

	obj, err := ctx.FindDef(errorDictName)
	require.NoError(t, err)
	assert.Equal(t, KindDictionary, obj.Kind)
}

func TestPushPopStackUnderflow(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	_, err = ctx.Pop()
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, StackUnderflow, pe.Kind)

	ctx.Push(NewInteger(5))
	v, err := ctx.Pop()
	require.NoError(t, err)
	assert.Equal(t, int32(5), v.Integer)
}

func TestPopUSizeRangeCheckNotTypeCheck(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	ctx.Push(NewInteger(-1))
	_, err = ctx.PopUSize()
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, RangeCheck, pe.Kind, "negative index is RangeCheck, not TypeCheck")
}

func TestPopTypedMismatch(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	ctx.Push(NewBoolean(true))
	_, err = ctx.PopInt()
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, TypeCheck, pe.Kind)
}

func TestFindDefSearchesTopDown(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	userDict, err := ctx.currentDict()
	require.NoError(t, err)
	userDict.Set("add", NewInteger(99))

	obj, err := ctx.FindDef("add")
	require.NoError(t, err)
	assert.Equal(t, int32(99), obj.Integer, "userdict's add shadows systemdict's")
}

func TestFindDefUndefined(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	_, err = ctx.FindDef("nope")
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, Undefined, pe.Kind)
}

func TestStringifyUniformAcrossKeyTypes(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	s, err := ctx.stringify(NewInteger(42))
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = ctx.stringify(NewReal(1.5))
	require.NoError(t, err)
	assert.Equal(t, "1.5", s)

	s, err = ctx.stringify(ctx.internName("foo", ModeLiteral))
	require.NoError(t, err)
	assert.Equal(t, "foo", s)
}
