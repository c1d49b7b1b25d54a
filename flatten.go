// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/tidwall/gjson"
)

// classNamer is implemented by templ CSS classes.
type classNamer interface {
	ClassName() string
}

// Flatten reduces nested class inputs to an ordered token list.
//
// Accepted inputs:
//   - string: split on whitespace
//   - integer and float numbers: stringified, zero and NaN are skipped
//   - bool and nil: skipped
//   - map with string keys: keys with truthy values, in sorted key order
//   - templ.KeyValue[string, bool]: key when value is true
//   - gjson.Result: walked in document order with JSON truthiness
//   - values with ClassName() string, such as templ CSS classes
//   - slices and arrays of any of the above, nested to any depth
//
// Anything else contributes nothing. Tokens are not deduplicated.
func Flatten(inputs ...any) []string {
	tokens := make([]string, 0, len(inputs)*2)
	for _, in := range inputs {
		tokens = appendInput(tokens, in)
	}

	return tokens
}

// appendInput appends tokens of one input value.
func appendInput(dst []string, v any) []string {
	switch x := v.(type) {
	case nil, bool:
		return dst
	case string:
		return appendFields(dst, x)
	case []string:
		for _, s := range x {
			dst = appendFields(dst, s)
		}
		return dst
	case []any:
		for _, item := range x {
			dst = appendInput(dst, item)
		}
		return dst
	case map[string]bool:
		for _, k := range sortedKeys(x) {
			if x[k] {
				dst = appendFields(dst, k)
			}
		}
		return dst
	case map[string]any:
		for _, k := range sortedKeys(x) {
			if truthy(x[k]) {
				dst = appendFields(dst, k)
			}
		}
		return dst
	case templ.KeyValue[string, bool]:
		if x.Value {
			dst = appendFields(dst, x.Key)
		}
		return dst
	case []templ.KeyValue[string, bool]:
		for _, kv := range x {
			if kv.Value {
				dst = appendFields(dst, kv.Key)
			}
		}
		return dst
	case gjson.Result:
		return appendJSON(dst, x)
	case int:
		return appendInt(dst, int64(x))
	case int64:
		return appendInt(dst, x)
	case float64:
		return appendFloat(dst, x, 64)
	case classNamer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return dst
		}
		return appendFields(dst, x.ClassName())
	}

	return appendReflect(dst, reflect.ValueOf(v))
}

// appendReflect handles named and less common types by kind.
func appendReflect(dst []string, rv reflect.Value) []string {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return dst
		}
		return appendInput(dst, rv.Elem().Interface())
	case reflect.String:
		return appendFields(dst, rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return appendInt(dst, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() == 0 {
			return dst
		}
		return append(dst, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		return appendFloat(dst, rv.Float(), 32)
	case reflect.Float64:
		return appendFloat(dst, rv.Float(), 64)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			dst = appendInput(dst, rv.Index(i).Interface())
		}
		return dst
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return dst
		}

		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})

		for _, k := range keys {
			if truthy(rv.MapIndex(k).Interface()) {
				dst = appendFields(dst, k.String())
			}
		}
		return dst
	default:
		return dst
	}
}

// appendJSON walks a JSON value. Object keys keep document order.
func appendJSON(dst []string, r gjson.Result) []string {
	switch {
	case r.Type == gjson.String:
		return appendFields(dst, r.Str)
	case r.Type == gjson.Number:
		return appendFloat(dst, r.Num, 64)
	case r.IsArray():
		r.ForEach(func(_, value gjson.Result) bool {
			dst = appendJSON(dst, value)
			return true
		})
	case r.IsObject():
		r.ForEach(func(key, value gjson.Result) bool {
			if jsonTruthy(value) {
				dst = appendFields(dst, key.String())
			}
			return true
		})
	}

	return dst
}

// appendFields appends whitespace separated tokens of s.
func appendFields(dst []string, s string) []string {
	if s == "" {
		return dst
	}

	return append(dst, strings.Fields(s)...)
}

// appendInt appends non-zero integer as token.
func appendInt(dst []string, n int64) []string {
	if n == 0 {
		return dst
	}

	return append(dst, strconv.FormatInt(n, 10))
}

// appendFloat appends number as token, skipping zero and NaN.
func appendFloat(dst []string, f float64, bitSize int) []string {
	switch {
	case f == 0 || math.IsNaN(f):
		return dst
	case math.IsInf(f, 1):
		return append(dst, "Infinity")
	case math.IsInf(f, -1):
		return append(dst, "-Infinity")
	default:
		return append(dst, strconv.FormatFloat(f, 'f', -1, bitSize))
	}
}

// truthy reports value truthiness of a conditional map entry.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case gjson.Result:
		return jsonTruthy(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// jsonTruthy reports JSON value truthiness.
func jsonTruthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		return true
	default:
		return false
	}
}

// sortedKeys returns map keys in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
