// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

import "reflect"

// shape enumerates the supported factory return shapes.  Classification
// is a closed dispatch: classify selects exactly one variant for a
// runtime value and each variant has its own conversion into a Seq.
type shape int

const (
	shapeUnsupported shape = iota

	// a slice of ready-made Arguments rows
	shapeArgumentsSlice

	// a push sequence or channel of Arguments rows
	shapeArgumentsSeq

	// a push sequence or channel of scalar values; every element
	// becomes a single-value tuple keeping its exact dynamic type
	shapeScalarSeq

	// a push sequence or channel of arbitrary elements; per-element
	// rule, cf. asTuple
	shapeSeq

	// a pull iterator, consumed exactly once; per-element rule
	shapeIterator

	// a [][]any whose rows are tuples as-is
	shapeTupleRows

	// a []any; per-element rule
	shapeAnySlice

	// any other slice or array; every element becomes a single-value
	// tuple in original order
	shapeTypedSlice
)

var (
	argumentsType      = reflect.TypeOf(Arguments{})
	argumentsSliceType = reflect.TypeOf([]Arguments(nil))
	anyType            = reflect.TypeOf((*any)(nil)).Elem()
	anySliceType       = reflect.TypeOf([]any(nil))
	iteratorType       = reflect.TypeOf((*Iterator)(nil)).Elem()
)

// Normalize converts a factory's raw return value into a lazy sequence
// of argument tuples.  The first matching classification wins:
//
//  1. []Arguments, iter.Seq[Arguments] or a channel of Arguments —
//     every row is unwrapped and passed through unchanged.
//  2. an iter.Seq or channel of scalar values — every scalar becomes a
//     single-value tuple of its exact type.
//  3. any other iter.Seq or channel — an element of type []any is the
//     tuple itself, an Arguments element is unwrapped, every other
//     element becomes a single-value tuple.
//  4. an [Iterator] — consumed once in order, elements as in 3.
//  5. a [][]any — every row is one tuple, taken as-is.
//  6. a []any — elements as in 3.
//  7. any other slice or array — every element becomes a single-value
//     tuple of its exact element type, in original order.
//
// Every other value fails with a [PreconditionError] naming the
// value's runtime type.
func Normalize(v any) (Seq, error) {
	rv := reflect.ValueOf(v)
	switch classify(rv) {
	case shapeArgumentsSlice:
		return argumentsRows(v.([]Arguments)), nil
	case shapeArgumentsSeq:
		return streamSeq(rv, asTuple), nil
	case shapeScalarSeq:
		return streamSeq(rv, single), nil
	case shapeSeq:
		return streamSeq(rv, asTuple), nil
	case shapeIterator:
		return iteratorSeq(v.(Iterator)), nil
	case shapeTupleRows:
		return rowsSeq(rv), nil
	case shapeAnySlice:
		return elementsSeq(rv, asTuple), nil
	case shapeTypedSlice:
		return elementsSeq(rv, single), nil
	}
	return nil, convertError(v)
}

// classify selects the shape variant of given runtime value.
func classify(rv reflect.Value) shape {
	if !rv.IsValid() {
		return shapeUnsupported
	}
	t := rv.Type()
	switch {
	case t == argumentsSliceType:
		return shapeArgumentsSlice
	case isPushSeq(t):
		// a nil sequence function cannot be driven
		if rv.IsNil() {
			return shapeUnsupported
		}
		return elementShape(t.In(0).In(0))
	case t.Kind() == reflect.Chan && t.ChanDir() != reflect.SendDir:
		// receiving from a nil channel would block forever
		if rv.IsNil() {
			return shapeUnsupported
		}
		return elementShape(t.Elem())
	case t.Implements(iteratorType):
		return shapeIterator
	case t.Kind() == reflect.Slice, t.Kind() == reflect.Array:
		switch t.Elem() {
		case anySliceType:
			return shapeTupleRows
		case anyType:
			return shapeAnySlice
		}
		return shapeTypedSlice
	}
	return shapeUnsupported
}

// elementShape refines a sequence classification by its element type.
func elementShape(elem reflect.Type) shape {
	if elem == argumentsType {
		return shapeArgumentsSeq
	}
	if isScalarKind(elem.Kind()) {
		return shapeScalarSeq
	}
	return shapeSeq
}

// isPushSeq reports whether t has the form of a push sequence, i.e.
// func(yield func(E) bool) matching iter.Seq[E] for any element type.
func isPushSeq(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 && yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

// isScalarKind reports whether a kind is a primitive scalar, i.e.
// boolean or numeric.
func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// argumentsRows unwraps ready-made Arguments rows.
func argumentsRows(rows []Arguments) Seq {
	return func(yield func(Tuple) bool) {
		for _, row := range rows {
			if !yield(row.Get()) {
				return
			}
		}
	}
}

// streamSeq adapts a push sequence or channel into a Seq converting
// every element with given rule.  Push sequences are driven through a
// reflection-made yield so arbitrary element types stream through
// without materialization; channels are received from until closed.
func streamSeq(rv reflect.Value, convert func(any) Tuple) Seq {
	if rv.Kind() == reflect.Chan {
		return func(yield func(Tuple) bool) {
			for {
				element, ok := rv.Recv()
				if !ok {
					return
				}
				if !yield(convert(element.Interface())) {
					return
				}
			}
		}
	}
	return func(yield func(Tuple) bool) {
		bridge := reflect.MakeFunc(
			rv.Type().In(0),
			func(in []reflect.Value) []reflect.Value {
				more := yield(convert(in[0].Interface()))
				return []reflect.Value{reflect.ValueOf(more)}
			})
		rv.Call([]reflect.Value{bridge})
	}
}

// iteratorSeq consumes a pull iterator exactly once and in order.
func iteratorSeq(it Iterator) Seq {
	return func(yield func(Tuple) bool) {
		for {
			element, ok := it.Next()
			if !ok {
				return
			}
			if !yield(asTuple(element)) {
				return
			}
		}
	}
}

// rowsSeq passes [][]any rows through as tuples without further
// unwrapping.
func rowsSeq(rv reflect.Value) Seq {
	return func(yield func(Tuple) bool) {
		for i := 0; i < rv.Len(); i++ {
			if !yield(rv.Index(i).Interface().([]any)) {
				return
			}
		}
	}
}

// elementsSeq converts the elements of a slice or array with given
// rule, preserving original order.
func elementsSeq(rv reflect.Value, convert func(any) Tuple) Seq {
	return func(yield func(Tuple) bool) {
		for i := 0; i < rv.Len(); i++ {
			if !yield(convert(rv.Index(i).Interface())) {
				return
			}
		}
	}
}

// convertError reports a factory return value of unsupported shape.
func convertError(v any) error {
	name := "<nil>"
	if t := reflect.TypeOf(v); t != nil {
		name = t.String()
	}
	return preconditionf(
		"Cannot convert instance of %s into a Stream", name)
}
