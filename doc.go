// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package paramunit augments the go testing framework with test-suites
// and parameterized tests.  A suite is a struct embedding
// [paramunit.Suite] whose exported methods taking a *paramunit.T are
// its tests:
//
//	type MySuite struct{ paramunit.Suite }
//
//	func (s *MySuite) Has_tested_behavior(t *paramunit.T) {
//	    // test implementation
//	}
//
//	func TestMySuite(t *testing.T) { paramunit.Run(&MySuite{}, t) }
//
// A suite method with further parameters after the *paramunit.T is a
// parameterized test: it runs once per argument tuple produced by its
// factory method.  By default the factory is the suite method named
// after the test with a "Source" suffix:
//
//	func (s *MySuite) AddsSource() [][]any {
//	    return [][]any{{1, 2, 3}, {2, 2, 4}}
//	}
//
//	func (s *MySuite) Adds(t *paramunit.T, a, b, sum int) {
//	    t.Eq(sum, a+b)
//	}
//
// An optional Sources method maps test names to explicit factory
// references, including references to registered external factory
// types:
//
//	func (s *MySuite) Sources() map[string][]string {
//	    return map[string][]string{
//	        "Adds": {"AdditionTable",
//	            "example.com/mod/fx.Shared#Additions"},
//	    }
//	}
//
// Factories may return their rows in any shape understood by
// paramunit/pkg/args: a slice of args.Arguments, an iter.Seq or
// channel, a [][]any of ready-made rows, or a plain slice whose
// elements become single-value rows.
//
// A suite additionally provides the optional special methods Init,
// SetUp, TearDown and Finalize which are run before any test, before
// each test, after each test and after all tests respectively.
package paramunit
