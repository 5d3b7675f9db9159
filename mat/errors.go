package mat

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-matpool/vec"
)

var (
	// ErrDimensionMismatch reports incompatible operand shapes. It is the
	// same value as vec.ErrDimensionMismatch.
	ErrDimensionMismatch = vec.ErrDimensionMismatch

	// ErrShape reports a buffer whose length does not match its dimensions.
	ErrShape = errors.New("mat: data length does not match dimensions")

	// ErrChannelRecv reports a task whose reply channel closed without a value.
	ErrChannelRecv = errors.New("mat: reply channel closed without a result")

	// ErrTaskSend reports a task that could not be queued on a worker.
	ErrTaskSend = errors.New("mat: failed to send task to worker")
)

// DispatchError lists the destination indices of tasks that could not be
// queued. Their output cells were never computed.
type DispatchError struct {
	Indices []int
	Err     error
}

func (e *DispatchError) Error() string {
	if len(e.Indices) == 0 {
		return fmt.Sprintf("%v: %v", ErrTaskSend, e.Err)
	}
	return fmt.Sprintf("%v: %d task(s) not dispatched, first index %d: %v",
		ErrTaskSend, len(e.Indices), e.Indices[0], e.Err)
}

// Is reports ErrTaskSend so callers can match with errors.Is.
func (e *DispatchError) Is(target error) bool {
	return target == ErrTaskSend
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
