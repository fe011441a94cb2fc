package jsonsplit

import (
	"errors"
	"io"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{&StateError{Got: StateString, Want: StateArray}, "expected state Array, got String"},
		{&StateError{Want: StateObject}, "expected state Object, got nothing"},
		{&HexError{Got: 'z'}, "expected hex character, got 'z'"},
		{&EscapeError{Got: 'q'}, "expected escape sequence, got 'q'"},
		{&SyntaxError{Offset: 3, Err: &HexError{Got: 'g'}}, "expected hex character, got 'g' at offset 3"},
		{&PrematureEndError{Offset: 2}, "unexpected end of input at offset 2 before array start"},
		{&PrematureEndError{Depth: 2, Offset: 10}, "unexpected end of input at offset 10 with 2 open states"},
		{&ElementSizeError{Max: 8, Offset: 12}, "element exceeds 8 bytes at offset 12"},
		{&DecodeError{Index: 4, Err: errors.New("boom")}, "failed to decode element 4: boom"},
	} {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Invalid error message:\nexpect: %s\nactual: %s", tc.want, got)
		}
	}
}

func TestPrematureEndUnwrap(t *testing.T) {
	var err error = &PrematureEndError{Depth: 1}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Expecting io.ErrUnexpectedEOF")
	}
	if IsRecoverable(err) {
		t.Errorf("Premature end should be terminal")
	}
}
