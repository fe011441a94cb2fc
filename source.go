package jsonsplit

import (
	"context"
	"io"
)

// Source is a pull based source of byte chunks.
//
// Next returns io.EOF once the source is exhausted. A chunk may be reused
// by the source after the following call to Next.
type Source interface {
	Next() ([]byte, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() ([]byte, error)

// Next implements Source.
func (f SourceFunc) Next() ([]byte, error) {
	return f()
}

type chunkSource struct {
	chunks [][]byte
}

// Chunks returns a Source producing the given chunks in order.
// The chunks slice is copied, the chunks themselves are not.
func Chunks(chunks ...[]byte) Source {
	return &chunkSource{chunks: append([][]byte(nil), chunks...)}
}

func (s *chunkSource) Next() ([]byte, error) {
	if len(s.chunks) == 0 {
		return nil, io.EOF
	}
	chunk := s.chunks[0]
	s.chunks[0] = nil
	s.chunks = s.chunks[1:]
	return chunk, nil
}

// DefaultBufferSize is the chunk size used by reader sources.
const DefaultBufferSize = 32 * 1024

// maxEmptyReads is the number of consecutive (0, nil) reads tolerated before
// a reader source fails with io.ErrNoProgress.
const maxEmptyReads = 100

type readerSource struct {
	r   io.Reader
	buf []byte
	err error
}

// NewReaderSource returns a Source reading chunks of up to size bytes from r.
// The same buffer is reused for every chunk.
func NewReaderSource(r io.Reader, size int) Source {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &readerSource{
		r:   r,
		buf: make([]byte, size),
	}
}

func (s *readerSource) Next() ([]byte, error) {
	for empty := 0; s.err == nil; empty++ {
		if empty == maxEmptyReads {
			s.err = io.ErrNoProgress
			break
		}
		n, err := s.r.Read(s.buf)
		s.err = err
		if n > 0 {
			return s.buf[:n], nil
		}
	}
	return nil, s.err
}

type chanSource struct {
	ctx context.Context
	ch  <-chan []byte
}

// NewChanSource returns a Source receiving chunks from ch.
// Next blocks until a chunk arrives, ch is closed or ctx is done.
func NewChanSource(ctx context.Context, ch <-chan []byte) Source {
	if ctx == nil {
		ctx = context.Background()
	}
	return &chanSource{ctx: ctx, ch: ch}
}

func (s *chanSource) Next() ([]byte, error) {
	select {
	case chunk, ok := <-s.ch:
		if !ok {
			return nil, io.EOF
		}
		return chunk, nil
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	}
}
