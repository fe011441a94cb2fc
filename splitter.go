package jsonsplit

import (
	"io"
	"iter"
)

// Splitter splits a JSON array into the raw bytes of its elements.
//
// Elements are produced one at a time by Next, pulling chunks from the
// source only when the current chunk is exhausted. Whitespace around
// elements is stripped and separating commas are dropped. Nested values
// are returned as is.
//
// A Splitter is not safe for concurrent use.
type Splitter struct {
	src     Source
	a       Analyzer
	buf     []byte
	chunk   []byte
	pos     int
	offset  int64
	comma   bool
	done    bool
	max     int
	bufSize int
}

// Option configures a Splitter.
type Option func(s *Splitter)

// MaxElementSize limits the size of a single element.
// An element growing past n bytes is reported with an *ElementSizeError
// and ends the stream.
func MaxElementSize(n int) Option {
	return func(s *Splitter) {
		s.max = n
	}
}

// BufferSize sets the chunk size used by NewReader.
func BufferSize(n int) Option {
	return func(s *Splitter) {
		s.bufSize = n
	}
}

// New returns a Splitter for the array produced by src.
func New(src Source, options ...Option) *Splitter {
	s := Splitter{src: src}
	for _, option := range options {
		if option != nil {
			option(&s)
		}
	}
	return &s
}

// NewReader returns a Splitter reading the array from r.
func NewReader(r io.Reader, options ...Option) *Splitter {
	s := New(nil, options...)
	s.src = NewReaderSource(r, s.bufSize)
	return s
}

// Depth returns the current nesting depth.
func (s *Splitter) Depth() int {
	return s.a.Depth()
}

// Offset returns the number of bytes consumed so far.
func (s *Splitter) Offset() int64 {
	return s.offset
}

// Done reports whether the stream has ended.
func (s *Splitter) Done() bool {
	return s.done
}

// Next returns the next element of the array.
//
// The returned slice is owned by the caller. A *SyntaxError reports an
// offending byte and the stream can be resumed by calling Next again. Any
// other error ends the stream. Once the array is closed, or after a
// terminal error was returned, Next returns io.EOF.
func (s *Splitter) Next() ([]byte, error) {
	for !s.done {
		for s.pos < len(s.chunk) {
			c := s.chunk[s.pos]
			s.pos++
			s.offset++
			depth := s.a.Depth()
			if err := s.a.Process(c); err != nil {
				return nil, &SyntaxError{Offset: s.offset - 1, Err: err}
			}
			switch {
			case depth == 0:
				// Outside of the array
			case depth == 1 && c == delimValueSeparator:
				span := s.take()
				// The element following a comma is emitted even if empty.
				s.comma = true
				return span, nil
			case depth == 1 && isSpace(c):
			case s.a.Depth() == 0:
				s.done = true
				s.chunk, s.pos = nil, 0
				if len(s.buf) > 0 || s.comma {
					return s.take(), nil
				}
				return nil, io.EOF
			default:
				if s.max > 0 && len(s.buf) >= s.max {
					s.done = true
					s.buf = nil
					return nil, &ElementSizeError{Max: s.max, Offset: s.offset - 1}
				}
				s.buf = append(s.buf, c)
			}
		}
		chunk, err := s.src.Next()
		if err != nil {
			s.done = true
			if err == io.EOF {
				return nil, &PrematureEndError{Depth: s.a.Depth(), Offset: s.offset}
			}
			return nil, err
		}
		s.chunk, s.pos = chunk, 0
	}
	return nil, io.EOF
}

// take hands off the current element buffer.
func (s *Splitter) take() []byte {
	span := s.buf
	if span == nil {
		span = []byte{}
	}
	s.buf = nil
	s.comma = false
	return span
}

// All returns an iterator over the remaining elements.
// Iteration stops at the end of the stream; recoverable errors are yielded
// along the way.
func (s *Splitter) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			span, err := s.Next()
			if err == io.EOF {
				return
			}
			if !yield(span, err) {
				return
			}
		}
	}
}
