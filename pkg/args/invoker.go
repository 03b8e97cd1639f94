// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

import "reflect"

// Producer is a resolved factory method bound to a concrete type.  A
// static producer, i.e. the method of a registered factory holder, is
// invocable as is.  A non-static producer is a method of the context's
// declaring type and needs the context's test instance; without one
// the declaring type's registered holder is consulted as a last
// resort.
type Producer struct {
	ref    string
	class  string
	name   string
	static bool
	bound  reflect.Value
	ctx    *Context
}

// Ref returns the reference string the producer was resolved from.
func (p *Producer) Ref() string { return p.ref }

// Name returns the bare factory method name.
func (p *Producer) Name() string { return p.name }

// Class returns the fully qualified name of the searched type.
func (p *Producer) Class() string { return p.class }

// Static reports whether the producer is invocable without a test
// instance.
func (p *Producer) Static() bool { return p.static }

// Invoke calls the factory method and returns its raw, unclassified
// result.  A factory's own error return propagates unwrapped.  Invoke
// fails with a [UsageError] if the producer is non-static and the
// context permits no non-static invocation.
func (p *Producer) Invoke() (any, error) {
	if p.static {
		return callFactory(p.bound)
	}
	if instance := p.ctx.instance; instance != nil {
		if m, ok := boundFactory(
			reflect.ValueOf(instance), p.name,
		); ok {
			return callFactory(m)
		}
	}
	if holder, ok := defaultRegistry.lookup(p.class); ok {
		if m, ok := boundFactory(holder, p.name); ok {
			return callFactory(m)
		}
	}
	return nil, usagef(
		"Cannot invoke non-static method %s.%s", p.class, p.name)
}

// callFactory invokes a bound zero-argument method value returning its
// result and, if the method declares one, its error.
func callFactory(m reflect.Value) (any, error) {
	out := m.Call(nil)
	if len(out) == 2 {
		if err, ok := out[1].Interface().(error); ok && err != nil {
			return nil, err
		}
	}
	return out[0].Interface(), nil
}
