package readtape

import "fmt"

// FatalError aborts the run after flushing buffered output (§7). It is
// reserved for the listed fatal conditions; per-block diagnostics are
// data in a BlockResult, never an error value.
type FatalError struct {
	Reason string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("readtape: fatal: %s", e.Reason)
}
