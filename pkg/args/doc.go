// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package args resolves the argument rows of parameterized tests.  A
// test declares one or more factory references, i.e. strings naming
// zero-argument producer methods, and args turns them into one uniform
// lazy sequence of argument tuples:
//
//	ctx := args.NewContext(MySuite{}).WithInstance(&MySuite{})
//	seq, err := args.Provide(ctx, "smallPrimes")
//	if err != nil { ... }
//	for tuple := range seq {
//	    // one test invocation per tuple
//	}
//
// A factory reference is either the bare name of a method of the
// context's declaring type or qualified with the fully qualified name
// of a registered external factory type:
//
//	"smallPrimes"
//	"smallPrimes()"
//	"example.com/mod/pkg.ExternalFactories#smallPrimes"
//
// External factory types are made available by registering a holder
// value, typically from an init function:
//
//	func init() { args.Register(&ExternalFactories{}) }
//
// Factories may return their rows in any of the supported shapes:
// a slice of [Arguments], a push sequence (iter.Seq) or channel of
// scalars or arbitrary elements, an [Iterator], a [][]any of ready-made
// rows, a []any, or any other slice or array whose elements then become
// single-value rows.  [Normalize] documents the exact classification
// rules.
package args
