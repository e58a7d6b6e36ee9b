package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by release build flags; dev builds report "dev".
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "pslang",
	Short: "pslang runs a PostScript-family stack language",
	Long: `pslang is an interpreter for a small PostScript-family stack
language: a tagged-union object model, an operand and dictionary stack,
and a systemdict of stack, math, composite, and control-flow operators.

Run a script file or pipe a program on standard input:

  pslang run script.ps
  echo '1 2 add' | pslang run --dump`,
	Version: Version,
}

// Execute runs the root command, returning any error the invoked
// subcommand produced.
func Execute() error {
	return rootCmd.Execute()
}
