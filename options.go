package ps

import "io"

// ContextOption configures a Context at construction. The shape mirrors the
// teacher's VMOption/apply pattern, flattened to plain functional options
// since a Context has no VM-specific memory layout to special-case.
type ContextOption func(*options)

type options struct {
	memLimit int
	logf     func(format string, args ...interface{})
	seed     int32
	input    io.Reader
	output   io.Writer
}

func defaultOptions() *options {
	return &options{
		logf: func(string, ...interface{}) {},
	}
}

// WithMemLimit caps the VM arena at limit live cells; exceeding it raises
// LimitCheck. A limit of 0 (the default) leaves the arena unbounded.
func WithMemLimit(limit int) ContextOption {
	return func(o *options) { o.memLimit = limit }
}

// WithLogf installs a diagnostic logging sink; Execute calls it once per
// executed object with that object's printed form. The default is a silent
// no-op.
func WithLogf(logf func(format string, args ...interface{})) ContextOption {
	return func(o *options) { o.logf = logf }
}

// WithSeed reseeds the RNG at construction instead of leaving it at its
// zero state, mirroring srand's effect on a fresh Context.
func WithSeed(seed int32) ContextOption {
	return func(o *options) { o.seed = seed }
}

// WithInput records the reader a caller intends to lex from; Context itself
// does not consume it; cmd/pslang uses it to keep construction and
// source-selection symmetric with the teacher's withInput.
func WithInput(r io.Reader) ContextOption {
	return func(o *options) { o.input = r }
}

// WithOutput records a writer as Context.Output. No builtin operator writes
// to it, and the CLI's --dump output goes to standard error, not here.
func WithOutput(w io.Writer) ContextOption {
	return func(o *options) { o.output = w }
}
