package blendstream

import (
	"fmt"

	"github.com/xaionaro-go/minfi/pkg/frame"
)

// ErrInputEnded is returned when one input ends while the other one still
// has samples. The remaining samples of the longer input are not read, so
// only a lower bound of its length is known.
type ErrInputEnded struct {
	// Input is the index of the input that ended: 0 for the first, 1 for
	// the second.
	Input int

	// Length is the total amount of samples of the input that ended.
	Length uint64

	// OtherAtLeast is the amount of samples read from the other input.
	OtherAtLeast uint64
}

var _ error = (*ErrInputEnded)(nil)

func (e *ErrInputEnded) Error() string {
	return fmt.Sprintf(
		"input #%d ended after %d samples while input #%d has at least %d",
		e.Input, e.Length, 1-e.Input, e.OtherAtLeast,
	)
}

func (e *ErrInputEnded) Unwrap() error {
	return frame.ErrInvalidArgument
}
