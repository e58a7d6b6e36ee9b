package ps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVMHandlesNeverReused(t *testing.T) {
	vm := NewVM(0)

	h1, err := vm.InsertArray(&ArrayCell{Access: AccessUnlimited})
	require.NoError(t, err)
	h2, err := vm.InsertDictionary(&DictionaryCell{})
	require.NoError(t, err)
	h3, err := vm.InsertString(&StringCell{Bytes: []byte("x")})
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, h2, h3)
	assert.Less(t, h1, h2)
	assert.Less(t, h2, h3)
}

func TestVMTypedAccessorsRejectWrongKind(t *testing.T) {
	vm := NewVM(0)
	h, err := vm.InsertArray(&ArrayCell{})
	require.NoError(t, err)

	_, err = vm.Dictionary(h)
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, TypeCheck, pe.Kind)

	_, err = vm.Array(123)
	require.Error(t, err)
	pe, ok = AsError(err)
	require.True(t, ok)
	assert.Equal(t, VmError, pe.Kind)
}

func TestVMLimitCheck(t *testing.T) {
	vm := NewVM(1)
	_, err := vm.InsertArray(&ArrayCell{})
	require.NoError(t, err)

	_, err = vm.InsertArray(&ArrayCell{})
	require.Error(t, err)
	pe, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, LimitCheck, pe.Kind)
}

func TestDictionaryCellOrderAndDelete(t *testing.T) {
	var d DictionaryCell
	d.Set("b", NewInteger(2))
	d.Set("a", NewInteger(1))
	d.Set("b", NewInteger(22))

	assert.Equal(t, []string{"b", "a"}, d.Keys)
	v, ok := d.Get("b")
	require.True(t, ok)
	assert.Equal(t, int32(22), v.Integer)
	assert.Equal(t, 2, d.Len())

	assert.True(t, d.Delete("b"))
	assert.False(t, d.Delete("b"))
	assert.Equal(t, []string{"a"}, d.Keys)
}
