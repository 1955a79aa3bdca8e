package frame

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of errors returned when the inputs of an
// interpolation cannot be combined.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrSizeMismatch is returned when frames of different lengths are passed
// to a single interpolation call. No output is produced in this case.
type ErrSizeMismatch struct {
	Lengths []int
}

var _ error = (*ErrSizeMismatch)(nil)

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("frame size mismatch: %v", e.Lengths)
}

func (e *ErrSizeMismatch) Unwrap() error {
	return ErrInvalidArgument
}

func checkSizes(frames ...Frame) error {
	for _, f := range frames[1:] {
		if len(f) != len(frames[0]) {
			lengths := make([]int, len(frames))
			for idx, f := range frames {
				lengths[idx] = len(f)
			}
			return &ErrSizeMismatch{Lengths: lengths}
		}
	}
	return nil
}
