package jsonsplit

import (
	"errors"
	"io"
)

var errNilWriter = errors.New("jsonsplit: nil writer")

// LineWriter writes elements to a newline delimited JSON stream. (http://ndjson.org/)
type LineWriter struct {
	buffer []byte
	w      io.Writer
}

// NewLineWriter creates a new LineWriter.
// It returns nil if w is nil; writing to a nil LineWriter fails.
func NewLineWriter(w io.Writer) *LineWriter {
	if w == nil {
		return nil
	}
	return &LineWriter{w: w}
}

// WriteLine writes span followed by a newline.
func (e *LineWriter) WriteLine(span []byte) (err error) {
	if e == nil {
		return errNilWriter
	}
	e.buffer = append(e.buffer[:0], span...)
	e.buffer = append(e.buffer, '\n')
	_, err = e.w.Write(e.buffer)
	return
}

// WriteLines drains s writing one element per line to w.
// It returns the number of lines written and stops at the first error.
func WriteLines(w io.Writer, s *Splitter) (n int, err error) {
	lw := NewLineWriter(w)
	if lw == nil {
		return 0, errNilWriter
	}
	for span, err := range s.All() {
		if err != nil {
			return n, err
		}
		if err = lw.WriteLine(span); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
