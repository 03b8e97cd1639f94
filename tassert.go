// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package paramunit

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// assertErr is the format-string for assertion errors.
const assertErr = "assert %s:\n%v"

// trueErr default message for failed 'true'-assertion.
const trueErr = "expected given value to be true"

// True fails the test and returns false iff given value is not true;
// otherwise true is returned.
func (t *T) True(value bool) bool {
	t.t.Helper()
	if !value {
		t.Errorf(assertErr, "true", trueErr)
		return false
	}
	return true
}

const eqTypeErr = "types mismatch %v != %v"

// Eq errors with a corresponding diff if possible and returns false if
// given values are not considered equal; otherwise true is returned.
// a and b are considered equal if they are of the same type or one of
// them is a string while the other one is a Stringer implementation
// and
//   - a == b in case of two pointers
//   - a == b in case of two strings
//   - a.String() == b.String() in case of Stringer implementations
//   - a == b.String() or a.String() == b in case of string and
//     Stringer implementation
//   - fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b) in other cases.
func (t *T) Eq(a, b interface{}) bool {
	t.t.Helper()

	differentTypes := fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b)
	if differentTypes && !isStringers(a, b) {
		t.Errorf(assertErr, "equal: types", fmt.Sprintf(
			eqTypeErr, fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)))
		return false
	}

	if a != nil && reflect.ValueOf(a).Kind() == reflect.Ptr {
		if a != b {
			t.Errorf(assertErr, "equal: pointer",
				fmt.Sprintf("%p != %p", a, b))
			return false
		}
		return true
	}

	if d := diff(a, b, differentTypes); d != "" {
		t.Errorf(assertErr, "equal: string-representations", d)
		return false
	}
	return true
}

func isStringers(a, b interface{}) bool {
	_, okA := a.(fmt.Stringer)
	_, okB := b.(fmt.Stringer)
	if !okA && !okB {
		return false
	}
	if okA && okB {
		return true
	}
	if okA {
		_, ok := b.(string)
		return ok
	}
	_, ok := a.(string)
	return ok
}

func diff(a, b interface{}, differentTypes bool) string {
	if differentTypes {
		if _a, ok := a.(fmt.Stringer); ok {
			a = _a.String()
		}
		if _b, ok := b.(fmt.Stringer); ok {
			b = _b.String()
		}
	}
	switch a := a.(type) {
	case string:
		if a != b.(string) {
			return cmp.Diff(a, b.(string))
		}
	case fmt.Stringer:
		if a.String() != b.(fmt.Stringer).String() {
			return cmp.Diff(a.String(), b.(fmt.Stringer).String())
		}
	default:
		if fmt.Sprintf("%v", a) != fmt.Sprintf("%v", b) {
			return cmp.Diff(
				fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
		}
	}
	return ""
}

// lenErr default message for failed 'Len'-assertion.
const lenErr = "expected length %d; got %d"

// Len fails the test and returns false iff given value's length is
// not given length; otherwise true is returned.  Len accepts the
// types Go's builtin len accepts.
func (t *T) Len(value interface{}, length int) bool {
	t.t.Helper()
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice,
		reflect.String:
		if rv.Len() != length {
			t.Errorf(assertErr, "length",
				fmt.Sprintf(lenErr, length, rv.Len()))
			return false
		}
		return true
	}
	t.Errorf(assertErr, "length",
		fmt.Sprintf("type %T has no length", value))
	return false
}

// StringRepresentation documents what a string representation of any
// type is:
//   - the string if it is of type string,
//   - the return value of String if the Stringer interface is
//     implemented,
//   - fmt.Sprintf("%v", value) in all other cases.
type StringRepresentation interface{}

// containsErr default message for failed 'Contains'-assertion.
const containsErr = "%s doesn't contain %s"

// Contains fails the test and returns false iff given value's string
// representation doesn't contain given sub-string; otherwise true is
// returned.
func (t *T) Contains(value StringRepresentation, sub string) bool {
	t.t.Helper()
	str := toString(value)
	if !strings.Contains(str, sub) {
		if !strings.HasSuffix(str, "\n") {
			str += "\n"
		}
		if !strings.HasPrefix(sub, "\n") {
			sub = "\n" + sub
		}
		t.Errorf(assertErr, "contains",
			fmt.Sprintf(containsErr, str, sub))
		return false
	}
	return true
}

func toString(value interface{}) string {
	switch value := value.(type) {
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// matchedErr default message for failed 'Matched'-assertion.
const matchedErr = "Regexp\n'%s'\ndoesn't match\n'%s'"

// Matched fails the test and returns false iff given value's string
// representation isn't matched by given regex; otherwise true is
// returned.
func (t *T) Matched(value StringRepresentation, regex string) bool {
	t.t.Helper()
	str := toString(value)
	re := regexp.MustCompile(regex)
	if !re.MatchString(str) {
		t.Errorf(assertErr, "matched",
			fmt.Sprintf(matchedErr, re.String(), str))
		return false
	}
	return true
}

// errErr default message for failed 'Err'-assertion.
const errErr = "given value doesn't implement 'error'"

// Err fails the test and returns false iff given value doesn't
// implement the error-interface; otherwise true is returned.
func (t *T) Err(err interface{}) bool {
	t.t.Helper()
	if _, ok := err.(error); !ok {
		t.Errorf(assertErr, "error", errErr)
		return false
	}
	return true
}

// errIsErr default message for failed 'ErrIs'-assertion.
const errIsErr = "given error doesn't wrap target-error"

// ErrIs fails the test and returns false iff given err doesn't
// implement the error-interface or doesn't wrap given target;
// otherwise true is returned.
func (t *T) ErrIs(err interface{}, target error) bool {
	t.t.Helper()
	e, ok := err.(error)
	if !ok {
		t.Errorf(assertErr, "error is", errIsErr)
		return false
	}
	if errors.Is(e, target) {
		return true
	}
	t.Errorf(assertErr, "error is",
		fmt.Sprintf("%s: %+v\n%+v", errIsErr, e, target))
	return false
}

// errHasErr default message for failed 'ErrHas'-assertion.
const errHasErr = "error '%s' doesn't contain '%s'"

// ErrHas fails the test and returns false iff given err doesn't
// implement the error-interface or its message doesn't contain given
// sub-string; otherwise true is returned.
func (t *T) ErrHas(err interface{}, sub string) bool {
	t.t.Helper()
	e, ok := err.(error)
	if !ok {
		t.Errorf(assertErr, "error has", errErr)
		return false
	}
	if !strings.Contains(e.Error(), sub) {
		t.Errorf(assertErr, "error has",
			fmt.Sprintf(errHasErr, e.Error(), sub))
		return false
	}
	return true
}

// panicsErr default message for failed 'Panics'-assertion.
const panicsErr = "given function doesn't panic"

// Panics fails the test and returns false iff given function doesn't
// panic; otherwise true is returned.
func (t *T) Panics(f func()) (hasPanicked bool) {
	t.t.Helper()
	defer func() {
		t.t.Helper()
		if r := recover(); r == nil {
			t.Errorf(assertErr, "panics", panicsErr)
			hasPanicked = false
			return
		}
		hasPanicked = true
	}()
	f()
	return true
}

// Not implements negations of [T]-assertions, e.g. [Not.True].
// Negated assertions are accessed through [T.Not]:
//
//	t.Not().True(s.IsClosed())
type Not struct{ t *T }

// Not returns the receiver's negated assertions.
func (t *T) Not() Not { return Not{t: t} }

// quietly runs given assertion with suppressed error-reporting and
// reports whether it passed.
func (n Not) quietly(assert func() bool) bool {
	errorer := n.t.errorer
	n.t.errorer = func(...interface{}) {}
	passed := assert()
	n.t.errorer = errorer
	return passed
}

// notTrueErr default message for failed negated 'true'-assertion.
const notTrueErr = "expected given value to be false"

// True passes if called [T.True] assertion with given argument fails;
// otherwise it fails.
func (n Not) True(value bool) bool {
	n.t.t.Helper()
	if n.quietly(func() bool { return n.t.True(value) }) {
		n.t.Errorf(assertErr, "not-true", notTrueErr)
		return false
	}
	return true
}

// Eq negation passes if called [T.Eq] assertion with given arguments
// fails; otherwise it fails.
func (n Not) Eq(a, b interface{}) bool {
	n.t.t.Helper()
	if n.quietly(func() bool { return n.t.Eq(a, b) }) {
		n.t.Errorf(assertErr, "not-equal",
			fmt.Sprintf("%v == %v", a, b))
		return false
	}
	return true
}

// notContainsErr default message for failed negated
// 'Contains'-assertion.
const notContainsErr = "\n'%s'\ndoes contain\n'%s'"

// Contains negation passes if called [T.Contains] assertion with
// given arguments fails; otherwise it fails.
func (n Not) Contains(value StringRepresentation, sub string) bool {
	n.t.t.Helper()
	if n.quietly(func() bool { return n.t.Contains(value, sub) }) {
		n.t.Errorf(assertErr, "doesn't contain",
			fmt.Sprintf(notContainsErr, toString(value), sub))
		return false
	}
	return true
}
