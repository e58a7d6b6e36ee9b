// Command pslang runs the PostScript-family stack language over a file or
// standard input.
package main

import (
	"os"

	"github.com/opstack/pslang/cmd/pslang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
