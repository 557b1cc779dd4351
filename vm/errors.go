package vm

import "errors"

// Load errors. These are reported before any execution begins; no partial
// execution occurs.
var (
	// ErrMissingHead indicates the source text contains no @ head marker.
	ErrMissingHead = errors.New("program has no @ head marker")

	// ErrAmbiguousHead indicates the source text contains more than one
	// @ head marker.
	ErrAmbiguousHead = errors.New("program has more than one @ head marker")
)

// Runtime faults. The instruction set itself is total; faults only arise
// from host-imposed limits or the I/O collaborator. All are terminal for
// the run.
var (
	// ErrStepLimit indicates the configured step budget was exhausted.
	ErrStepLimit = errors.New("step limit exceeded")

	// ErrIO wraps a failure reported by the I/O port.
	ErrIO = errors.New("i/o fault")
)
