package behaviortree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree construction.
var (
	// ErrIndexOutOfRange indicates InsertChild was given an index outside [0, Len()].
	ErrIndexOutOfRange = errors.New("child index out of range")

	// ErrCycle indicates a child would make a composite reachable from itself.
	ErrCycle = errors.New("child would create a cycle")
)

// Sentinel errors for ticking a tree.
var (
	// ErrNilContext indicates Tick() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrInvalidStatus indicates a status outside Success, Running and Fail.
	ErrInvalidStatus = errors.New("invalid status")
)

// IndexError is the panic value of InsertChild when the index is out of range.
type IndexError struct {
	// Index is the requested insertion position.
	Index int
	// Len is the number of children at the time of the call.
	Len int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("insert child at %d (len %d): %v", e.Index, e.Len, ErrIndexOutOfRange)
}

// Unwrap returns ErrIndexOutOfRange for errors.Is support.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// InvalidStatusError reports a status outside the defined set.
type InvalidStatusError struct {
	// Status is the offending value.
	Status Status
}

// Error implements the error interface.
func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%v: %d", ErrInvalidStatus, uint8(e.Status))
}

// Unwrap returns ErrInvalidStatus for errors.Is support.
func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// PanicError captures a panic raised while ticking a tree.
// It includes the stack trace for debugging.
type PanicError struct {
	// Tree is the name of the tree being ticked.
	Tree string
	// TickID identifies the tick that panicked.
	TickID string
	// Value is the value passed to panic().
	Value any
	// Stack is the full stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("tree %s tick %s panicked: %v", e.Tree, e.TickID, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// CancellationError reports a tick that was skipped because its context was done.
type CancellationError struct {
	// Tree is the name of the tree that was not ticked.
	Tree string
	// Cause is context.Canceled or context.DeadlineExceeded.
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	return fmt.Sprintf("tick of tree %s cancelled: %v", e.Tree, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CancellationError) Unwrap() error {
	return e.Cause
}

// HistoryError wraps a failure to record a tick in the history store.
// The tick itself completed; Status holds its result.
type HistoryError struct {
	// Tree is the name of the ticked tree.
	Tree string
	// TickID identifies the tick that could not be recorded.
	TickID string
	// Status is the result of the tick.
	Status Status
	// Err is the underlying store error.
	Err error
}

// Error implements the error interface.
func (e *HistoryError) Error() string {
	return fmt.Sprintf("record tick %s of tree %s (%s): %v", e.TickID, e.Tree, e.Status, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *HistoryError) Unwrap() error {
	return e.Err
}
