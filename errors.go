package bigarray

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength    = errors.New("bigarray: invalid length")
	ErrInvalidType      = errors.New("bigarray: invalid type")
	ErrTrailingElements = errors.New("bigarray: trailing elements after fixed-length sequence")
	ErrTupleLength      = errors.New("bigarray: element count differs from declared tuple length")
)

// LengthError reports a sequence that ran out at Index. Expected is the
// visitor's description of what it wanted.
type LengthError struct {
	Index    int
	Expected string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid length %d, expected %s", e.Index, e.Expected)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// TypeError reports input of the wrong shape, e.g. a string where an array was
// expected.
type TypeError struct {
	Got      string
	Expected string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Got, e.Expected)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrInvalidType
}

func expectingLength(n int) string {
	return fmt.Sprintf("an array of length %d", n)
}
