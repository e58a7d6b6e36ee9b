package cmd

import (
	ps "github.com/opstack/pslang"
	"github.com/tidwall/sjson"
)

// errorJSON renders the current $error dictionary as a JSON object, for
// --json. Field names match $error's own keys (newerror, errorname,
// command, ostack) so a caller can gjson.Get the same paths either way.
func errorJSON(ctx *ps.Context) (string, error) {
	newerror, errorname, command, ostack, err := ctx.ErrorInfo()
	if err != nil {
		return "", err
	}

	js := "{}"
	for _, set := range []struct {
		path string
		val  interface{}
	}{
		{"newerror", newerror},
		{"errorname", errorname},
		{"command", command},
		{"ostack", ostack},
	} {
		js, err = sjson.Set(js, set.path, set.val)
		if err != nil {
			return "", err
		}
	}
	return js, nil
}
