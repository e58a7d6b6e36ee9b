/*
Package ps implements a small PostScript-family execution engine: a byte
lexer, a tagged-union object model, a handle-addressed virtual memory arena,
an operand/dictionary-stack execution context, a recursive execution loop,
and a library of built-in operators.

The pieces are layered the way a PostScript interpreter's are traditionally
described:

  - object.go defines the Object tagged union (Boolean, Integer, Real, Null,
    Mark, FontId, Name, Operator, Array, Dictionary, String), its Mode
    (literal vs executable) and Access lattice.
  - vm.go is the arena: composite objects (arrays, dictionaries, strings)
    live in a VM keyed by a stable Handle, so copying an Object copies a
    reference, not its backing storage.
  - lexer.go turns a byte stream into a stream of Objects.
  - context.go holds the operand stack, the dictionary stack, the VM, the
    RNG, and the $error dictionary used by error reporting.
  - exec.go is the execution loop: literals push, executable objects
    dispatch, procedures recurse.
  - the ops_*.go files are the built-in operator library, grouped by the
    kind of object they act on.
  - printer.go formats Objects back out for display or $error dumps.
  - errors.go is the ErrorKind taxonomy and $error population/handler
    dispatch machinery.

cmd/pslang is the command-line front end built on top of this package; it is
a thin cobra-based driver and carries none of the language semantics itself.
*/
package ps
