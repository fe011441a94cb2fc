package jsonsplit

import (
	"io"
	"iter"

	jsoniter "github.com/json-iterator/go"
)

// Unmarshaler decodes a single JSON value.
// jsoniter.API and UnmarshalFunc(json.Unmarshal) both implement it.
type Unmarshaler interface {
	Unmarshal(data []byte, v interface{}) error
}

// UnmarshalFunc adapts a function to the Unmarshaler interface.
type UnmarshalFunc func(data []byte, v interface{}) error

// Unmarshal implements Unmarshaler.
func (f UnmarshalFunc) Unmarshal(data []byte, v interface{}) error {
	return f(data, v)
}

// DefaultUnmarshaler is used by decoders created with a nil Unmarshaler.
var DefaultUnmarshaler Unmarshaler = jsoniter.ConfigCompatibleWithStandardLibrary

// Decoder decodes array elements into values of type T.
type Decoder[T any] struct {
	s *Splitter
	u Unmarshaler
	n int
}

// NewDecoder returns a Decoder for the elements produced by s.
func NewDecoder[T any](s *Splitter, u Unmarshaler) *Decoder[T] {
	if u == nil {
		u = DefaultUnmarshaler
	}
	return &Decoder[T]{s: s, u: u}
}

// Next decodes the next element.
// Splitter errors are returned unchanged, decoding failures as *DecodeError.
func (d *Decoder[T]) Next() (v T, err error) {
	span, err := d.s.Next()
	if err != nil {
		return v, err
	}
	i := d.n
	d.n++
	if err = d.u.Unmarshal(span, &v); err != nil {
		var zero T
		return zero, &DecodeError{Index: i, Err: err}
	}
	return v, nil
}

// All returns an iterator over the remaining decoded elements.
func (d *Decoder[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

// Decode reads a whole JSON array from r decoding every element with the default unmarshaler.
// It stops at the first error.
func Decode[T any](r io.Reader) ([]T, error) {
	var values []T
	for v, err := range NewDecoder[T](NewReader(r), nil).All() {
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}
