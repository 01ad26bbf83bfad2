package commit

import (
	"errors"
	"fmt"
)

// ExecError reports a failure while applying an instruction batch. The
// underlying scene error is wrapped unmodified; this layer adds which
// property edit and how many instructions were in flight, and attempts no
// partial recovery or retry.
type ExecError struct {
	Code         ExecErrorCode
	Label        string
	Instructions int
	Err          error
}

// ExecErrorCode categorizes executor failures.
type ExecErrorCode string

const (
	// ErrCodeScopeOpen means the engine refused to open an update scope
	// (another commit is still executing).
	ErrCodeScopeOpen ExecErrorCode = "SCOPE_OPEN"

	// ErrCodeStage means an instruction targeted a node the document
	// rejected; nothing was applied.
	ErrCodeStage ExecErrorCode = "STAGE"

	// ErrCodeCommit means the transaction itself failed to commit.
	ErrCodeCommit ExecErrorCode = "COMMIT"
)

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: commit %q (%d instructions): %v", e.Code, e.Label, e.Instructions, e.Err)
}

// Unwrap exposes the underlying scene error for errors.Is / errors.As.
func (e *ExecError) Unwrap() error { return e.Err }

// IsBusy reports whether err means another commit holds the update scope.
func IsBusy(err error) bool {
	var ee *ExecError
	return errors.As(err, &ee) && ee.Code == ErrCodeScopeOpen
}
