// Package jsonsplittest provides test helpers for jsonsplit.
package jsonsplittest

import (
	"fmt"
	"io"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/alxarch/jsonsplit"
)

// T is a test case for jsonsplit.Splitter.
type T struct {
	input     []byte
	expect    []string
	check     func(err error) error
	chunkings []chunking
}

type chunking struct {
	name  string
	split func(data []byte) [][]byte
}

func newT(input string, options []Option) (t T) {
	t.input = []byte(input)
	for _, option := range options {
		if option != nil {
			option.set(&t)
		}
	}
	if len(t.chunkings) == 0 {
		sizes := make([]int, 0, len(t.input)+1)
		for size := 1; size <= len(t.input); size++ {
			sizes = append(sizes, size)
		}
		if len(sizes) == 0 {
			sizes = append(sizes, 1)
		}
		ChunkSizes(sizes...).set(&t)
	}
	return
}

// Split checks the elements produced for input under every chunking.
// By default the input is split in fixed size chunks of every size from 1
// to the input length.
func Split(input string, options ...Option) func(t *testing.T) {
	test := newT(input, options)
	return func(t *testing.T) {
		for _, c := range test.chunkings {
			c := c
			t.Run(c.name, func(t *testing.T) {
				s := jsonsplit.New(jsonsplit.Chunks(c.split(test.input)...))
				spans, errs := Collect(s)
				if err := checkErrors(errs, test.check); err != nil {
					t.Errorf("[%q] %s", test.input, err)
				}
				if test.expect != nil && !reflect.DeepEqual(spans, test.expect) {
					t.Errorf("[%q] Unexpected result:\nexpect: %q\nactual: %q", test.input, test.expect, spans)
				}
			})
		}
	}
}

func checkErrors(errs []error, check func(error) error) error {
	if check == nil {
		if len(errs) != 0 {
			return fmt.Errorf("Unexpected errors: %v", errs)
		}
		return nil
	}
	if len(errs) != 1 {
		return fmt.Errorf("Expecting exactly one error, got %v", errs)
	}
	return check(errs[0])
}

// Collect drains s returning all successfully split elements and all errors.
func Collect(s *jsonsplit.Splitter) (spans []string, errs []error) {
	spans = []string{}
	for {
		span, err := s.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		spans = append(spans, string(span))
	}
}

// Chunk splits data in chunks of size bytes. The last chunk may be shorter.
func Chunk(data []byte, size int) [][]byte {
	if size <= 0 {
		size = 1
	}
	chunks := make([][]byte, 0, len(data)/size+1)
	for len(data) > size {
		chunks = append(chunks, data[:size:size])
		data = data[size:]
	}
	if len(data) > 0 {
		chunks = append(chunks, data)
	}
	return chunks
}

// RandomChunks splits data in chunks of random size, including empty ones.
func RandomChunks(data []byte, rnd *rand.Rand) [][]byte {
	var chunks [][]byte
	for len(data) > 0 {
		n := rnd.Intn(len(data) + 1)
		chunks = append(chunks, data[:n:n])
		data = data[n:]
	}
	return chunks
}

// Source returns a source producing each of chunks.
func Source(chunks ...string) jsonsplit.Source {
	data := make([][]byte, len(chunks))
	for i, chunk := range chunks {
		data[i] = []byte(chunk)
	}
	return jsonsplit.Chunks(data...)
}

// Lines splits the output of jsonsplit.WriteLines.
func Lines(output string) []string {
	if output == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(output, "\n"), "\n")
}
