// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

// Provide resolves, invokes and normalizes every given factory
// reference and returns the lazy concatenation of their argument
// sequences in declaration order.  No references default to a single
// empty one, i.e. to the factory method derived from the context's
// test method name.
//
// All resolution and invocation happens before Provide returns: a
// failing reference surfaces here, never from the returned sequence.
// A factory's own error return propagates unwrapped; resolution
// failures are reported as [UsageError], validation failures as
// [PreconditionError].  The returned sequence is single-pass and owned
// by the caller; nothing is cached across calls.
func Provide(ctx *Context, refs ...string) (Seq, error) {
	if len(refs) == 0 {
		refs = []string{""}
	}
	seqs := make([]Seq, 0, len(refs))
	for _, ref := range refs {
		producer, err := Resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		value, err := producer.Invoke()
		if err != nil {
			return nil, err
		}
		seq, err := Normalize(value)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	return Chain(seqs...), nil
}

// Collect realizes a sequence into a slice of tuples.  It is a
// convenience for consumers which need random access, e.g. reporting;
// the invocation loop itself should range over the sequence instead.
func Collect(seq Seq) []Tuple {
	var tt []Tuple
	for t := range seq {
		tt = append(tt, t)
	}
	return tt
}
