package cmd

import (
	"strings"
	"testing"

	ps "github.com/opstack/pslang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestErrorJSONFields(t *testing.T) {
	ctx, err := ps.NewContext()
	require.NoError(t, err)

	lx := ps.NewLexer(strings.NewReader("nosuchword"), ctx)
	runErr := ctx.Run(lx)
	require.Error(t, runErr)

	js, err := errorJSON(ctx)
	require.NoError(t, err)

	assert.True(t, gjson.Get(js, "newerror").Bool())
	assert.Equal(t, "Undefined", gjson.Get(js, "errorname").String())
	assert.Equal(t, "nosuchword", gjson.Get(js, "command").String())
}
