package editor

import (
	"errors"
	"fmt"
)

var (
	ErrAtRoot          = errors.New("editor: already at the root view")
	ErrNoActiveSession = errors.New("editor: no edit in progress")
	ErrNotASequence    = errors.New("editor: current view is not a sequence")
)

// PersistError wraps a save or load failure, separating codec trouble from
// plain I/O.
type PersistError struct {
	Op  string // "encode", "decode", "read" or "write"
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("editor: %s failed: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
