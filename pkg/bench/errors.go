package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrShortTransfer matches a TransferError: a write or read of the
	// configured size that the stream could not complete in one call.
	ErrShortTransfer = errors.New("bench: short transfer")

	// ErrInconsistent matches an InconsistencyError: the bytes read back
	// differ from the bytes written.
	ErrInconsistent = errors.New("bench: inconsistency detected in read data")
)

// TransferError reports a write or read that moved fewer bytes than
// requested.
type TransferError struct {
	Op    string // "write" or "read"
	Cycle int
	Want  int
	Got   int
	Err   error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("bench: short %s in cycle %d: %d of %d bytes: %v", e.Op, e.Cycle, e.Got, e.Want, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

func (e *TransferError) Is(target error) bool { return target == ErrShortTransfer }

// InconsistencyError reports the first offset where the read data differs
// from the expected corpus.
type InconsistencyError struct {
	Offset int
	Want   byte
	Got    byte
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%v: offset %d: want %q, got %q", ErrInconsistent, e.Offset, e.Want, e.Got)
}

func (e *InconsistencyError) Is(target error) bool { return target == ErrInconsistent }
