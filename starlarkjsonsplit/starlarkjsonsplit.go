// Package starlarkjsonsplit provides JSON array splitting for Starlark
package starlarkjsonsplit

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/alxarch/jsonsplit"
)

// Module is the jsonsplit Starlark module.
//
//	jsonsplit.split('[1, {"a": 2}]')  # ["1", "{\"a\": 2}"]
//	jsonsplit.decode('[1, {"a": 2}]') # [1, {"a": 2}]
var Module = starlarkstruct.Module{
	Name: "jsonsplit",
	Members: starlark.StringDict{
		"split":  starlark.NewBuiltin("split", Split),
		"decode": starlark.NewBuiltin("decode", Decode),
	},
}

func splitter(name string, args starlark.Tuple, kwargs []starlark.Tuple) (*jsonsplit.Splitter, error) {
	var input string
	if err := starlark.UnpackPositionalArgs(name, args, kwargs, 1, &input); err != nil {
		return nil, err
	}
	return jsonsplit.NewReader(strings.NewReader(input)), nil
}

// Split returns the elements of a JSON array as a list of strings.
func Split(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	s, err := splitter(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}
	var elems []starlark.Value
	for span, err := range s.All() {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		elems = append(elems, starlark.String(span))
	}
	return starlark.NewList(elems), nil
}

// Decode returns the elements of a JSON array as a list of Starlark values.
func Decode(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	s, err := splitter(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}
	values := jsonsplit.NewValues(s)
	var elems []starlark.Value
	for {
		v, err := values.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		x, err := Value(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		elems = append(elems, x)
	}
	return starlark.NewList(elems), nil
}

// Value converts a fastjson value to a Starlark value.
func Value(v *fastjson.Value) (starlark.Value, error) {
	switch v.Type() {
	case fastjson.TypeString:
		return starlark.String(v.GetStringBytes()), nil
	case fastjson.TypeNumber:
		return number(v.String()), nil
	case fastjson.TypeTrue:
		return starlark.True, nil
	case fastjson.TypeFalse:
		return starlark.False, nil
	case fastjson.TypeNull:
		return starlark.None, nil
	case fastjson.TypeArray:
		values := v.GetArray()
		elems := make([]starlark.Value, 0, len(values))
		for _, el := range values {
			x, err := Value(el)
			if err != nil {
				return nil, err
			}
			elems = append(elems, x)
		}
		return starlark.NewList(elems), nil
	case fastjson.TypeObject:
		obj := v.GetObject()
		d := starlark.NewDict(obj.Len())
		var err error
		obj.Visit(func(key []byte, el *fastjson.Value) {
			if err != nil {
				return
			}
			var x starlark.Value
			if x, err = Value(el); err == nil {
				err = d.SetKey(starlark.String(key), x)
			}
		})
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("cannot handle JSON type %s", v.Type())
	}
}

func number(s string) starlark.Value {
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return starlark.Float(f)
		}
		return starlark.Float(math.NaN())
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return starlark.MakeInt64(i)
	}
	if b, ok := big.NewInt(0).SetString(s, 10); ok {
		return starlark.MakeBigInt(b)
	}
	// Fallback for numbers strconv can still make sense of
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return starlark.Float(f)
	}
	return starlark.Float(math.NaN())
}
