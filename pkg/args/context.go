// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

import "reflect"

// Context bundles what is known about the test whose arguments are
// resolved: the declaring type searched for bare factory references,
// the test method's name for deriving a default reference and an
// optional live test instance permitting non-static factory
// invocations.  A Context is immutable; the With* methods return
// modified copies.  It is constructed once per test invocation and
// discarded after the argument sequence is fully produced.
type Context struct {
	typ        reflect.Type
	testMethod string
	instance   any
}

// NewContext returns a Context whose declaring type is taken from
// given value, which may be a reflect.Type or any value of the
// declaring type (a pointer is dereferenced).  Note the value is only
// used for its type; use [Context.WithInstance] to permit non-static
// factory invocations.
func NewContext(declaring any) *Context {
	t, ok := declaring.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(declaring)
	}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &Context{typ: t}
}

// WithTestMethod returns a copy of given context knowing the test
// method's name, enabling the default factory reference derivation of
// [Provide] for empty references.
func (c *Context) WithTestMethod(name string) *Context {
	copy := *c
	copy.testMethod = name
	return &copy
}

// WithInstance returns a copy of given context carrying a live test
// instance, i.e. permitting the invocation of non-static factories.
// The instance should be a pointer so factories with pointer receivers
// are found.
func (c *Context) WithInstance(instance any) *Context {
	copy := *c
	copy.instance = instance
	return &copy
}

// Type returns the context's declaring type.
func (c *Context) Type() reflect.Type { return c.typ }

// TestMethod returns the test method's name or the empty string if it
// is not known.
func (c *Context) TestMethod() string { return c.testMethod }

// Instance returns the live test instance or nil if non-static factory
// invocations are not permitted.
func (c *Context) Instance() any { return c.instance }
