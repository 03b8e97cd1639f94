// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

import "iter"

// Tuple is one ordered row of argument values for one test invocation.
type Tuple = []any

// Seq is a lazy, forward-only sequence of argument tuples.  A Seq is
// produced once per test resolution and must be consumed at most once;
// abandoning it early realizes no further tuples.
type Seq = iter.Seq[Tuple]

// Arguments wraps one ready-made argument tuple.  Factories which want
// to be explicit about their rows return a []Arguments or a sequence of
// Arguments instead of raw values:
//
//	func (s *MySuite) AddsSource() []args.Arguments {
//	    return []args.Arguments{args.Of(1, 2, 3), args.Of(2, 2, 4)}
//	}
type Arguments struct{ values Tuple }

// Of wraps given values into one Arguments row.
func Of(values ...any) Arguments { return Arguments{values: values} }

// Get returns the wrapped argument tuple.
func (a Arguments) Get() Tuple { return a.values }

// Iterator is the pull-flavored producer shape: a value whose Next
// method yields elements until it reports false.  An Iterator is
// consumed exactly once and in order.
type Iterator interface {
	Next() (any, bool)
}

// single wraps one value into a single-element tuple.
func single(value any) Tuple { return Tuple{value} }

// asTuple applies the per-element rule of the normalizer: a []any
// element is the tuple itself, an Arguments element is unwrapped and
// every other element becomes a single-element tuple.
func asTuple(element any) Tuple {
	switch e := element.(type) {
	case Arguments:
		return e.Get()
	case []any:
		return e
	default:
		return single(element)
	}
}

// Chain concatenates given sequences preserving their order.  The
// result is single-pass like its inputs.
func Chain(seqs ...Seq) Seq {
	return func(yield func(Tuple) bool) {
		for _, s := range seqs {
			for t := range s {
				if !yield(t) {
					return
				}
			}
		}
	}
}
