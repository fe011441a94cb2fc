package jsonsplit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alxarch/jsonsplit"
)

// process feeds input to a and returns all reported errors.
func process(a *jsonsplit.Analyzer, input string) (errs []error) {
	for i := 0; i < len(input); i++ {
		if err := a.Process(input[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return
}

func TestAnalyzer(t *testing.T) {
	for _, tc := range []struct {
		name  string
		json  string
		depth int
	}{
		{"array of single object", `[{"a": "hello"}]`, 0},
		{"empty array", `[]`, 0},
		{"empty object", `{}`, 0},
		{"open string", `[{"}]`, 3},
		{"open string start", `[{"`, 3},
		{"open escape", `[{"\`, 3},
		{"open unicode", `[{"\ueF4`, 3},
		{"escaped", `["\n\u1234"]`, 0},
		{"escaped quote", `["a\"b", "\\"]`, 0},
		{"all escapes", `["\"\\\/\b\f\n\r\t"]`, 0},
		{"nested", `[[1, [2, {"a": [3]}]], {"b": {"c": "]}"}}]`, 0},
		{"scalars are ignored", `true 12 null , :`, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := jsonsplit.Analyzer{}
			errs := process(&a, tc.json)
			assert.Empty(t, errs)
			assert.Equal(t, tc.depth, a.Depth())
		})
	}
}

func TestAnalyzerDepthStep(t *testing.T) {
	input := `[{"a":[1,"é\"",{}]},"x\\"]`
	a := jsonsplit.Analyzer{}
	for i := 0; i < len(input); i++ {
		before := a.Depth()
		require.NoError(t, a.Process(input[i]))
		delta := a.Depth() - before
		assert.True(t, -1 <= delta && delta <= 1, "depth changed by %d at %d", delta, i)
		assert.GreaterOrEqual(t, a.Depth(), 0)
	}
	assert.Equal(t, 0, a.Depth())
}

func TestAnalyzerWrongNesting(t *testing.T) {
	a := jsonsplit.Analyzer{}
	errs := process(&a, `[{]}`)
	require.Len(t, errs, 1)
	var stateErr *jsonsplit.StateError
	require.True(t, errors.As(errs[0], &stateErr))
	assert.Equal(t, jsonsplit.StateObject, stateErr.Got)
	assert.Equal(t, jsonsplit.StateArray, stateErr.Want)
	assert.Equal(t, "expected state Array, got Object", stateErr.Error())
}

func TestAnalyzerRecoverWrongNesting(t *testing.T) {
	a := jsonsplit.Analyzer{}
	errs := process(&a, `[{]`)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, a.Depth())
	assert.Empty(t, process(&a, `}]`))
	assert.Equal(t, 0, a.Depth())
}

func TestAnalyzerCloseNothing(t *testing.T) {
	a := jsonsplit.Analyzer{}
	err := a.Process('}')
	var stateErr *jsonsplit.StateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, jsonsplit.StateNone, stateErr.Got)
	assert.Equal(t, jsonsplit.StateObject, stateErr.Want)
	assert.Equal(t, "expected state Object, got nothing", err.Error())
	assert.Equal(t, 0, a.Depth())

	err = a.Process(']')
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, jsonsplit.StateArray, stateErr.Want)
}

func TestAnalyzerInvalidEscape(t *testing.T) {
	a := jsonsplit.Analyzer{}
	errs := process(&a, `"\x`)
	require.Len(t, errs, 1)
	var escErr *jsonsplit.EscapeError
	require.True(t, errors.As(errs[0], &escErr))
	assert.Equal(t, byte('x'), escErr.Got)
	assert.Equal(t, 1, a.Depth())
	assert.Equal(t, jsonsplit.StateString, a.Top())
}

func TestAnalyzerInvalidUnicode(t *testing.T) {
	a := jsonsplit.Analyzer{}
	errs := process(&a, `"\u123x`)
	require.Len(t, errs, 1)
	var hexErr *jsonsplit.HexError
	require.True(t, errors.As(errs[0], &hexErr))
	assert.Equal(t, byte('x'), hexErr.Got)
	assert.Equal(t, 1, a.Depth())
	assert.Equal(t, jsonsplit.StateString, a.Top())
}

func TestAnalyzerQuoteInUnicode(t *testing.T) {
	a := jsonsplit.Analyzer{}
	errs := process(&a, `"\u12"`)
	require.Len(t, errs, 1)
	var hexErr *jsonsplit.HexError
	require.True(t, errors.As(errs[0], &hexErr))
	assert.Equal(t, byte('"'), hexErr.Got)
	assert.Equal(t, 1, a.Depth())
	assert.Equal(t, jsonsplit.StateStringHex1, a.Top())

	// The quote does not close the string nor open a new one.
	require.NoError(t, a.Process('3'))
	require.NoError(t, a.Process('"'))
	assert.Equal(t, 0, a.Depth())
}

func TestAnalyzerQuoteAfterEscape(t *testing.T) {
	a := jsonsplit.Analyzer{}
	require.Empty(t, process(&a, `"\"`))
	assert.Equal(t, 1, a.Depth())
	assert.Equal(t, jsonsplit.StateString, a.Top())
}

func TestAnalyzerHexChain(t *testing.T) {
	a := jsonsplit.Analyzer{}
	require.Empty(t, process(&a, `"\u`))
	for _, want := range []jsonsplit.State{
		jsonsplit.StateStringHex4,
		jsonsplit.StateStringHex3,
		jsonsplit.StateStringHex2,
		jsonsplit.StateStringHex1,
	} {
		assert.Equal(t, want, a.Top())
		require.NoError(t, a.Process('A'))
	}
	assert.Equal(t, jsonsplit.StateString, a.Top())
	assert.True(t, a.InString())
	require.NoError(t, a.Process('"'))
	assert.False(t, a.InString())
	assert.Equal(t, jsonsplit.StateNone, a.Top())
}

func TestAnalyzerReset(t *testing.T) {
	a := jsonsplit.Analyzer{}
	process(&a, `[[{"`)
	require.Equal(t, 4, a.Depth())
	a.Reset()
	assert.Equal(t, 0, a.Depth())
	assert.Empty(t, process(&a, `[]`))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Object", jsonsplit.StateObject.String())
	assert.Equal(t, "StringHex1", jsonsplit.StateStringHex1.String())
	assert.Equal(t, "InvalidState", jsonsplit.State(42).String())
	assert.True(t, jsonsplit.StateStringEscape.IsString())
	assert.False(t, jsonsplit.StateArray.IsString())
}
