// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

import (
	"fmt"
	"reflect"
)

// ToValues adapts one argument tuple to given parameter types for a
// reflective test invocation.  Values pass as-is where assignable; a
// numeric value converts to a numeric parameter kind; nil becomes the
// parameter's zero value.  Arity or type mismatches are reported, not
// coerced.
func ToValues(tuple Tuple, params []reflect.Type) (
	[]reflect.Value, error,
) {
	if len(tuple) != len(params) {
		return nil, fmt.Errorf(
			"expected %d arguments; got tuple of %d",
			len(params), len(tuple))
	}
	values := make([]reflect.Value, len(tuple))
	for i, value := range tuple {
		converted, err := conform(value, params[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = converted
	}
	return values, nil
}

func conform(value any, param reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(param), nil
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(param) {
		return rv, nil
	}
	if isNumericKind(rv.Kind()) && isNumericKind(param.Kind()) &&
		rv.Type().ConvertibleTo(param) {
		return rv.Convert(param), nil
	}
	return reflect.Value{}, fmt.Errorf(
		"value of type %s is not assignable to %s", rv.Type(), param)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
