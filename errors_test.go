package ps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "TypeCheck", TypeCheck.String())
	assert.Equal(t, "Unregistered", ErrorKind(999).String())
}

func TestErrorErrorString(t *testing.T) {
	e := newError(RangeCheck, "negative index")
	assert.Equal(t, "RangeCheck: negative index", e.Error())

	e2 := newError(StackUnderflow, "")
	assert.Equal(t, "StackUnderflow", e2.Error())
}

func TestReportErrorPopulatesErrorDict(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	err = run(t, ctx, "1 2 add 3 4 undefinedword")
	require.Error(t, err)

	newerror, errorname, command, _, ierr := ctx.ErrorInfo()
	require.NoError(t, ierr)
	assert.True(t, newerror)
	assert.Equal(t, "Undefined", errorname)
	assert.Equal(t, "undefinedword", command)
}

func TestHandleErrorClearsNewerror(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	_ = run(t, ctx, "nope")
	newerror, _, _, _, ierr := ctx.ErrorInfo()
	require.NoError(t, ierr)
	require.True(t, newerror)

	require.NoError(t, run(t, ctx, "handleerror"))
	newerror, _, _, _, ierr = ctx.ErrorInfo()
	require.NoError(t, ierr)
	assert.False(t, newerror)
}

func TestUserDefinedHandlerIsDispatched(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	require.NoError(t, run(t, ctx, "/Undefined { 777 } def"))
	require.Error(t, run(t, ctx, "nope"))
	require.Len(t, ctx.Operand, 1, "the bound Undefined handler ran and pushed its marker")
	assert.Equal(t, int32(777), ctx.Operand[0].Integer)
}
