package jsonsplittest

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

// Option is a test case option.
type Option interface {
	set(t *T)
}

type option func(t *T)

func (f option) set(t *T) {
	f(t)
}

// Expect sets the element spans to expect.
func Expect(spans ...string) Option {
	return option(func(t *T) {
		if spans == nil {
			spans = []string{}
		}
		t.expect = spans
	})
}

// Error sets an error to expect.
//
// It accepts an error value matched with errors.Is, a string to look for in
// an error message, a *regexp.Regexp, a func(error) error or true to expect
// any error. Exactly one error must be reported.
func Error(err interface{}) Option {
	var check func(error) error
	switch e := err.(type) {
	case nil:
		check = nil
	case error:
		check = func(err error) error {
			if errors.Is(err, e) {
				return nil
			}
			return fmt.Errorf("error %v is not %v", err, e)
		}
	case func(error) error:
		check = e
	case string:
		check = func(err error) error {
			if strings.Contains(err.Error(), e) {
				return nil
			}
			return fmt.Errorf("error %q does not contain %q", err, e)
		}
	case *regexp.Regexp:
		check = func(err error) error {
			if e.MatchString(err.Error()) {
				return nil
			}
			return fmt.Errorf("error %q does not match %s", err, e)
		}
	case bool:
		if e {
			check = func(error) error {
				return nil
			}
		}
	default:
		panic("Invalid Error option")
	}
	return option(func(t *T) {
		t.check = check
	})
}

// ChunkSizes splits the input in fixed size chunks for each of sizes.
func ChunkSizes(sizes ...int) Option {
	return option(func(t *T) {
		t.chunkings = t.chunkings[:0]
		for _, size := range sizes {
			size := size
			t.chunkings = append(t.chunkings, chunking{
				name: fmt.Sprintf("chunk-%d", size),
				split: func(data []byte) [][]byte {
					return Chunk(data, size)
				},
			})
		}
	})
}

// Random adds n random chunkings of the input seeded with seed.
func Random(seed int64, n int) Option {
	return option(func(t *T) {
		rnd := rand.New(rand.NewSource(seed))
		for i := 0; i < n; i++ {
			t.chunkings = append(t.chunkings, chunking{
				name: fmt.Sprintf("random-%d", i),
				split: func(data []byte) [][]byte {
					return RandomChunks(data, rnd)
				},
			})
		}
	})
}
