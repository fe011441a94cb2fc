package jsonsplit

import (
	"fmt"
	"io"
)

// StateError signifies a closing delimiter that does not match the innermost open structure.
type StateError struct {
	// Got is the state on top of the stack, StateNone if nothing was open.
	Got  State
	Want State
}

func (e *StateError) Error() string {
	if e.Got == StateNone {
		return fmt.Sprintf("expected state %s, got nothing", e.Want)
	}
	return fmt.Sprintf("expected state %s, got %s", e.Want, e.Got)
}

// HexError signifies an invalid digit in a \uXXXX escape sequence.
type HexError struct {
	Got byte
}

func (e *HexError) Error() string {
	return fmt.Sprintf("expected hex character, got %q", e.Got)
}

// EscapeError signifies an unknown character after '\' in a string.
type EscapeError struct {
	Got byte
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("expected escape sequence, got %q", e.Got)
}

// SyntaxError wraps an analyzer error with the stream offset of the offending byte.
// It is recoverable: the splitter keeps going after returning it.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// PrematureEndError signifies that the source was exhausted before the array closed.
type PrematureEndError struct {
	Depth  int
	Offset int64
}

func (e *PrematureEndError) Error() string {
	if e.Depth == 0 {
		return fmt.Sprintf("unexpected end of input at offset %d before array start", e.Offset)
	}
	return fmt.Sprintf("unexpected end of input at offset %d with %d open states", e.Offset, e.Depth)
}

func (e *PrematureEndError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// ElementSizeError signifies an element exceeding the MaxElementSize option.
type ElementSizeError struct {
	Max    int
	Offset int64
}

func (e *ElementSizeError) Error() string {
	return fmt.Sprintf("element exceeds %d bytes at offset %d", e.Max, e.Offset)
}

// DecodeError wraps a deserialization failure of the element at Index.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode element %d: %s", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsRecoverable reports whether a splitter can keep producing elements after err.
func IsRecoverable(err error) bool {
	switch err.(type) {
	case *SyntaxError, *DecodeError:
		return true
	default:
		return false
	}
}
