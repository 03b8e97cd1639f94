// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package paramunit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/paramunit/paramunit"
)

// quiet embeds into assertion fixture suites suppressing their
// test-errors while recording how often one occurred.
type quiet struct {
	paramunit.Suite
	Errs int
}

func (s *quiet) Error() func(...interface{}) {
	return func(...interface{}) { s.Errs++ }
}

type passingAsserts struct {
	quiet
	Returned []bool
}

var errFX = errors.New("fx-error")

func (s *passingAsserts) Asserts(t *paramunit.T) {
	s.Returned = append(s.Returned,
		t.True(true),
		t.Eq(42, 42),
		t.Eq("foo", "foo"),
		t.Len([]int{1, 2}, 2),
		t.Len("abc", 3),
		t.Contains("foobar", "oba"),
		t.Matched("foobar", "^foo"),
		t.Err(errFX),
		t.ErrIs(fmt.Errorf("wrapped: %w", errFX), errFX),
		t.ErrHas(errFX, "fx-"),
		t.Panics(func() { panic("boom") }),
		t.Not().True(false),
		t.Not().Eq(1, 2),
		t.Not().Contains("foo", "bar"),
	)
}

func Test_passing_assertions_return_true(t *testing.T) {
	t.Parallel()
	suite := &passingAsserts{}
	paramunit.Run(suite, t)
	if suite.Errs != 0 {
		t.Errorf("expected no assertion errors; got %d", suite.Errs)
	}
	for i, passed := range suite.Returned {
		if !passed {
			t.Errorf("expected assertion %d to pass", i)
		}
	}
}

type failingAsserts struct {
	quiet
	Returned []bool
}

func (s *failingAsserts) Asserts(t *paramunit.T) {
	s.Returned = append(s.Returned,
		t.True(false),
		t.Eq(42, 43),
		t.Eq(42, "42"),
		t.Len([]int{1}, 2),
		t.Len(42, 1),
		t.Contains("foo", "bar"),
		t.Matched("foo", "^bar"),
		t.Err(42),
		t.ErrIs(errors.New("other"), errFX),
		t.ErrHas(errFX, "absent"),
		t.Panics(func() {}),
		t.Not().True(true),
		t.Not().Eq(1, 1),
		t.Not().Contains("foobar", "oba"),
	)
}

func Test_failing_assertions_return_false(t *testing.T) {
	t.Parallel()
	suite := &failingAsserts{}
	paramunit.Run(suite, t)
	if suite.Errs != len(suite.Returned) {
		t.Errorf("expected %d assertion errors; got %d",
			len(suite.Returned), suite.Errs)
	}
	for i, passed := range suite.Returned {
		if passed {
			t.Errorf("expected assertion %d to fail", i)
		}
	}
}

type stringerFX struct{ s string }

func (s stringerFX) String() string { return s.s }

type eqAsserts struct {
	quiet
	Returned []bool
}

func (s *eqAsserts) Asserts(t *paramunit.T) {
	p := &stringerFX{s: "foo"}
	s.Returned = append(s.Returned,
		t.Eq(stringerFX{s: "foo"}, stringerFX{s: "foo"}),
		t.Eq(stringerFX{s: "foo"}, "foo"),
		t.Eq("foo", stringerFX{s: "foo"}),
		t.Eq(p, p),
	)
}

func Test_eq_compares_string_representations(t *testing.T) {
	t.Parallel()
	suite := &eqAsserts{}
	paramunit.Run(suite, t)
	if suite.Errs != 0 {
		t.Errorf("expected no assertion errors; got %d", suite.Errs)
	}
	for i, passed := range suite.Returned {
		if !passed {
			t.Errorf("expected assertion %d to pass", i)
		}
	}
}
