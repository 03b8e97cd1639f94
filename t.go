// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package paramunit

import (
	"fmt"
	"testing"
)

// T instances are passed to suite tests providing means for logging,
// assertion, failing, cancellation and concurrency-control.  For a
// parameterized test T additionally reports the running invocation's
// ordinal and argument tuple.
type T struct {
	t          *testing.T
	tearDown   func(*T)
	logger     func(...interface{})
	errorer    func(...interface{})
	canceler   func()
	invocation int
	tuple      []any
	fs         *FS
}

// GoT returns the wrapped testing.T instance created by the suite
// runner's testing.T for this test.
func (t *T) GoT() *testing.T { return t.t }

// Invocation returns the zero-based ordinal of a parameterized test's
// running invocation and -1 for plain suite tests.
func (t *T) Invocation() int { return t.invocation }

// Tuple returns the running invocation's argument tuple and nil for
// plain suite tests.  Tests usually take their arguments as typed
// method parameters instead.
func (t *T) Tuple() []any { return t.tuple }

// Log writes given arguments to set logger which defaults to the
// logger of the wrapped testing.T instance.  A suite implementing
// [SuiteLogging] replaces the default.
func (t *T) Log(args ...interface{}) { t.logger(args...) }

// Logf writes given format string leveraging Sprintf to set logger,
// cf. [T.Log].
func (t *T) Logf(format string, args ...interface{}) {
	t.Log(fmt.Sprintf(format, args...))
}

// Parallel signals that this test may run in parallel with other
// parallel flagged tests.
func (t *T) Parallel() { t.t.Parallel() }

// Error logs given arguments and flags the test as failed but
// continues its execution.  A suite implementing [SuiteErrorer]
// replaces the default error handling.
func (t *T) Error(args ...interface{}) {
	t.t.Helper()
	t.errorer(args...)
}

// Errorf logs given format string leveraging Sprintf and flags the
// test as failed but continues its execution, cf. [T.Error].
func (t *T) Errorf(format string, args ...interface{}) {
	t.t.Helper()
	t.Error(fmt.Sprintf(format, args...))
}

// FailNow cancels the test's execution after a potential tear-down was
// called.  A suite implementing [SuiteCanceler] replaces the default
// cancellation.
func (t *T) FailNow() {
	t.t.Helper()
	if t.tearDown != nil {
		t.tearDown(t)
	}
	t.canceler()
}

// FatalIfNot cancels the test (see [T.FailNow]) iff given assertion is
// false.
func (t *T) FatalIfNot(assertion bool) {
	if assertion {
		return
	}
	t.t.Helper()
	t.FailNow()
}

// FatalOn cancels the test (see [T.FailNow]) after logging given
// error iff it is not nil.
func (t *T) FatalOn(err error) {
	t.t.Helper()
	if err == nil {
		return
	}
	t.Fatal(err.Error())
}

// Fatal logs given arguments and cancels the test, cf. [T.FailNow].
func (t *T) Fatal(args ...interface{}) {
	t.t.Helper()
	t.Log(args...)
	t.FailNow()
}

// Fatalf logs given format string leveraging Sprintf and cancels the
// test, cf. [T.FailNow].
func (t *T) Fatalf(format string, args ...interface{}) {
	t.t.Helper()
	t.Log(fmt.Sprintf(format, args...))
	t.FailNow()
}

// InitPrefix prefixes logging-messages of the Init-method enabling a
// reporter to discriminate Init-logs from Finalize-logs.
const InitPrefix = "__init__"

// FinalPrefix prefixes logging-messages of the Finalize-method
// enabling a reporter to discriminate Finalize-logs from Init-logs.
const FinalPrefix = "__final__"

// S instances are passed to a suite's Init and Finalize methods
// providing logging and the cancellation of the whole suite run.
// Implementations of [SuiteLogging] or [SuiteCanceler] in a suite
// replace the default logging respectively cancellation behavior which
// is the one of the suite runner's testing.T instance.
type S struct {
	t        *testing.T
	prefix   string
	logger   func(...interface{})
	canceler func()
}

// GoT returns the wrapped testing.T instance of the suite runner's
// test.
func (s *S) GoT() *testing.T { return s.t }

// Log writes given arguments to the suite runner's logger or its
// replacement provided by a [SuiteLogging] implementation.
func (s *S) Log(args ...interface{}) {
	s.t.Helper()
	s.logger(append([]interface{}{s.prefix}, args...)...)
}

// Logf format-logs leveraging Sprintf given arguments, cf. [S.Log].
func (s *S) Logf(format string, args ...interface{}) {
	s.t.Helper()
	s.Log(fmt.Sprintf(format, args...))
}

// Fatal cancels the suite's tests-run after given arguments were
// logged.
func (s *S) Fatal(args ...interface{}) {
	s.t.Helper()
	s.Log(args...)
	s.canceler()
}

// Fatalf cancels the suite's tests-run after given format string was
// logged leveraging Sprintf.
func (s *S) Fatalf(format string, args ...interface{}) {
	s.t.Helper()
	s.Logf(format, args...)
	s.canceler()
}

// FatalOn cancels the suite's tests-run iff given error is not nil.
func (s *S) FatalOn(err error) {
	s.t.Helper()
	if err != nil {
		s.Fatal(err.Error())
	}
}
