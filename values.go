package jsonsplit

import (
	"github.com/valyala/fastjson"
)

// Values parses array elements into fastjson values.
type Values struct {
	s *Splitter
	p fastjson.Parser
	n int
}

// NewValues returns a Values for the elements produced by s.
func NewValues(s *Splitter) *Values {
	return &Values{s: s}
}

// Next parses the next element.
// The returned value is only valid until the next call.
func (v *Values) Next() (*fastjson.Value, error) {
	span, err := v.s.Next()
	if err != nil {
		return nil, err
	}
	i := v.n
	v.n++
	val, err := v.p.ParseBytes(span)
	if err != nil {
		return nil, &DecodeError{Index: i, Err: err}
	}
	return val, nil
}

// Validate checks that span is a single valid JSON value.
func Validate(span []byte) error {
	return fastjson.ValidateBytes(span)
}
