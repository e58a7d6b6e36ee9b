package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	ps "github.com/opstack/pslang"
	"github.com/opstack/pslang/internal/fileinput"
	"github.com/opstack/pslang/internal/flushio"
	"github.com/opstack/pslang/internal/logio"
	"github.com/opstack/pslang/internal/panicerr"
	"github.com/spf13/cobra"
)

var (
	memLimit   int
	timeout    time.Duration
	trace      bool
	dump       bool
	jsonOut    bool
	configPath string
	teePath    string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "run a pslang program from a file or standard input",
	Long: `run evaluates a pslang program read from the named file, or from
standard input if no file is given.

Examples:

  pslang run script.ps
  echo '1 2 add' | pslang run --dump
  pslang run --trace --dump script.ps
  pslang run --json script.ps
  pslang run --tee session.log script.ps`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&memLimit, "mem-limit", 0, "enable a VM arena memory limit")
	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "specify a time limit for execution")
	runCmd.Flags().BoolVar(&trace, "trace", false, "enable trace logging of every executed object")
	runCmd.Flags().BoolVar(&dump, "dump", false, "print the operand stack after execution")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the $error dictionary as JSON on failure")
	runCmd.Flags().StringVar(&configPath, "config", "", "load flag defaults from a YAML config file")
	runCmd.Flags().StringVar(&teePath, "tee", "", "additionally write program output to this file")
}

func runScript(c *cobra.Command, args []string) error {
	if configPath != "" {
		fc, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if !c.Flags().Changed("mem-limit") && fc.MemLimit != 0 {
			memLimit = fc.MemLimit
		}
		if !c.Flags().Changed("timeout") {
			if d, err := fc.timeout(); err != nil {
				return fmt.Errorf("config timeout: %w", err)
			} else if d != 0 {
				timeout = d
			}
		}
		if !c.Flags().Changed("trace") && fc.Trace {
			trace = true
		}
		if !c.Flags().Changed("dump") && fc.Dump {
			dump = true
		}
		if !c.Flags().Changed("json") && fc.JSON {
			jsonOut = true
		}
		if !c.Flags().Changed("tee") && fc.Tee != "" {
			teePath = fc.Tee
		}
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	logf := func(string, ...interface{}) {}
	if trace {
		logf = log.Leveledf("TRACE")
	}

	var in fileinput.Input
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		in.Queue = append(in.Queue, namedReader{f, args[0]})
	} else {
		in.Queue = append(in.Queue, namedReader{os.Stdin, "<stdin>"})
	}

	out := flushio.NewWriteFlusher(c.OutOrStdout())
	if teePath != "" {
		teeFile, err := os.Create(teePath)
		if err != nil {
			return fmt.Errorf("opening --tee file: %w", err)
		}
		defer teeFile.Close()
		out = flushio.WriteFlushers(out, flushio.NewWriteFlusher(teeFile))
	}
	defer out.Flush()

	ctx, err := ps.NewContext(
		ps.WithMemLimit(memLimit),
		ps.WithLogf(logf),
		ps.WithInput(&in),
		ps.WithOutput(out),
	)
	if err != nil {
		return err
	}

	runCtx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, timeout)
		defer cancel()
	}

	lx := ps.NewLexer(&runeSource{in: &in}, ctx)

	runErr := panicerr.Recover("pslang run", func() error {
		done := make(chan error, 1)
		go func() { done <- ctx.Run(lx) }()
		select {
		case err := <-done:
			return err
		case <-runCtx.Done():
			return runCtx.Err()
		}
	})

	if dump {
		if stack, serr := ctx.SprintStack(); serr == nil {
			fmt.Fprintf(c.ErrOrStderr(), "stack: %s\n", stack)
		}
	}

	if runErr != nil {
		if jsonOut {
			if js, jerr := errorJSON(ctx); jerr == nil {
				fmt.Fprintln(c.OutOrStdout(), js)
			}
		}
		return runErr
	}

	return nil
}
