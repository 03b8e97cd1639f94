// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package paramunit

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/paramunit/paramunit/pkg/args"
)

// Suite implements the private methods of the [SuiteEmbedder]
// interface.  I.e. if you want to run the tests of your own test-suite
// using [Run] you must embed this type:
//
//	type MySuite struct { paramunit.Suite }
//
//	// optional Init-method
//	// optional SetUp-method
//	// optional TearDown-method
//	// optional Sources-method
//
//	// ... the suite-tests as methods of *MySuite ...
//
//	// optional Finalize-method
//
//	func TestMySuite(t *testing.T) { paramunit.Run(&MySuite{}, t) }
type Suite struct {
	t               *testing.T
	self            interface{}
	value           reflect.Value
	rtype           reflect.Type
	setUp, tearDown *reflect.Method
	sources         map[string][]string
}

// newFinalizer returns a function which may be registered at t.Cleanup
// calling suite's (given) Finalize-method with provided values.
func newFinalizer(
	method *reflect.Method, suite, wrapped reflect.Value,
) func() {
	return func() {
		method.Func.Call([]reflect.Value{suite, wrapped})
	}
}

// wrap packages given testing.T-instance into a S-instance honoring a
// suite's SuiteLogging- and SuiteCanceler-implementations.
func (s *Suite) wrap(t *testing.T, prefix string) *S {
	suiteS := &S{
		t:        t,
		prefix:   prefix,
		logger:   t.Log,
		canceler: t.FailNow,
	}
	if suiteLogging, ok := s.self.(SuiteLogging); ok {
		suiteS.logger = suiteLogging.Logger()
	}
	if suiteCanceler, ok := s.self.(SuiteCanceler); ok {
		suiteS.canceler = suiteCanceler.Cancel()
	}
	return suiteS
}

// init initializes this suite's reused reflection values and handles
// its special methods if any.
func (s *Suite) init(self interface{}, t *testing.T) *Suite {
	s.self, s.t = self, t
	s.value = reflect.ValueOf(self)
	s.rtype = reflect.TypeOf(self)
	for i := 0; i < s.rtype.NumMethod(); i++ {
		m := s.rtype.Method(i)
		switch m.Name {
		case "SetUp":
			s.setUp = &m
		case "TearDown":
			s.tearDown = &m
		case "Sources":
			if srcs, ok := self.(SuiteSources); ok {
				s.sources = srcs.Sources()
			}
		case "Init":
			m.Func.Call([]reflect.Value{
				s.value, reflect.ValueOf(s.wrap(t, InitPrefix))})
		case "Finalize":
			t.Cleanup(newFinalizer(&m, s.value,
				reflect.ValueOf(s.wrap(t, FinalPrefix))))
		}
	}
	return s
}

// refsOf returns the factory references to resolve for given
// parameterized test, defaulting to the test's name suffixed with
// "Source".
func (s *Suite) refsOf(test string) []string {
	if refs, ok := s.sources[test]; ok && len(refs) > 0 {
		return refs
	}
	return []string{test + "Source"}
}

const special = "SetUpTearDownInitFinalizeSources"

// SuiteEmbedder is automatically implemented by embedding a
// Suite-instance.  I.e.:
//
//	type MySuite struct{ paramunit.Suite }
//
// implements the SuiteEmbedder-interface's private methods.
type SuiteEmbedder interface {
	init(interface{}, *testing.T) *Suite
}

// tType is the parameter type discriminating suite-tests from other
// methods.
var tType = reflect.TypeOf((*T)(nil))

// Run sets up embedded Suite-instance and runs all methods of given
// test-suite embedder which are public, take a *paramunit.T as their
// first argument and are not special:
//
//   - Init(*paramunit.S): run before any other method of a suite
//
//   - SetUp(*paramunit.T): run before every suite-test
//
//   - TearDown(*paramunit.T): run after every suite-test
//
//   - Sources() map[string][]string: maps test-names to factory
//     references
//
//   - Finalize(*paramunit.S): run after any other method of a suite
//
// A test-method with further parameters after its *paramunit.T is
// parameterized: it is run once for each argument-tuple produced by
// its factories (see [Suite] and the package documentation) in
// sub-tests named after the test suffixed with the zero-based
// invocation ordinal, e.g. "Adds#0".
func Run(suite SuiteEmbedder, t *testing.T) {
	s := suite.init(suite, t)
	subTestFactory := newSubTestFactory(s)
	for i := 0; i < s.rtype.NumMethod(); i++ {
		method := s.rtype.Method(i)
		if method.Type.NumIn() < 2 || method.Type.In(1) != tType {
			continue
		}
		if strings.Contains(special, method.Name) {
			continue
		}
		if method.Type.NumIn() == 2 {
			t.Run(method.Name, subTestFactory(method, -1, nil))
			continue
		}
		runParameterized(s, t, method, subTestFactory)
	}
}

// runParameterized resolves given test-method's factories and runs one
// sub-test per produced argument-tuple.  Resolution- and
// factory-errors are reported through a failing sub-test named after
// the test.
func runParameterized(
	s *Suite, t *testing.T, method reflect.Method,
	subTestFactory subTests,
) {
	ctx := args.NewContext(s.rtype).
		WithTestMethod(method.Name).
		WithInstance(s.self)
	seq, err := args.Provide(ctx, s.refsOf(method.Name)...)
	if err != nil {
		t.Run(method.Name, func(t *testing.T) { t.Fatal(err) })
		return
	}
	idx := 0
	for tuple := range seq {
		name := fmt.Sprintf("%s#%d", method.Name, idx)
		t.Run(name, subTestFactory(method, idx, tuple))
		idx++
	}
}

// SuiteSources implementation of a suite-embedder maps test-names to
// the factory references providing their argument-tuples.  A test
// absent from the returned map falls back to the default reference,
// i.e. the test's name suffixed with "Source".
type SuiteSources interface {
	Sources() map[string][]string
}

// SuiteLogging implementation of a suite-embedder overwrites provided
// logging mechanism of paramunit.T-instances passed to suite-tests
// with provided function of the Logger-method. E.g.:
//
//	type MySuite {
//	    paramunit.Suite
//	    Logs string
//	}
//
//	func (s *MySuite) Logger() func(...interface{}) {
//	    return func(args ...interface{}) {
//	        s.Logs += fmt.Sprint(args...)
//	    }
//	}
//
//	func (s *MySuite) A_test(t *paramunit.T) {
//	    t.Log("A_test has run")
//	}
//
//	func TestMySuite(t *testing.T) {
//	    testSuite := &MySuite{}
//	    paramunit.Run(testSuite, t)
//	    t.Log(testSuite.Logs) // prints "A_test has run" if verbose
//	}
type SuiteLogging interface {
	Logger() func(args ...interface{})
}

// SuiteErrorer overwrites default test-error handling which defaults
// to a testing.T.Error-call of a wrapped testing.T-instance.  I.e.
// calling on a paramunit.T instance t methods like Error or Errorf end
// up in an Error-call of the testing.T-instance which is wrapped by t.
// If a suite implements the SuiteErrorer-interface provided function
// is called in case of a test-error.
type SuiteErrorer interface {
	Error() func(...interface{})
}

// SuiteCanceler overwrites default test-cancellation handling which
// defaults to a testing.T.FailNow-call of a wrapped
// testing.T-instance.  I.e. calling on a paramunit.T instance t
// methods like Fatal, Fatalf, FailNow, FatalIfNot, or FatalOn end up
// in a FailNow-call of the testing.T-instance which is wrapped by t.
// If a suite implements the SuiteCanceler-interface provided function
// is called in case of a test-cancellation.
type SuiteCanceler interface {
	Cancel() func()
}

// subTests wraps a test-method and an invocation's ordinal and tuple
// into a function that can be passed to testing.T.Run.
type subTests func(
	test reflect.Method, invocation int, tuple []any,
) func(*testing.T)

// newSubTestFactory returns for given suite a sub-test-factory, i.e. a
// function wrapping test-methods into functions that can be passed to
// the Run-method of a testing.T-instance.  For a parameterized test
// the produced sub-test converts the invocation's tuple to the
// test-method's parameter types before the call.
func newSubTestFactory(suite *Suite) subTests {
	suiteLogging, hasLogger := suite.self.(SuiteLogging)
	suiteErrorer, hasErrorer := suite.self.(SuiteErrorer)
	suiteCanceler, hasCanceler := suite.self.(SuiteCanceler)
	var tearDown func(t *T)
	if suite.tearDown != nil {
		tearDown = func(t *T) {
			(*suite.tearDown).Func.Call(
				[]reflect.Value{suite.value, reflect.ValueOf(t)})
		}
	}
	return func(
		test reflect.Method, invocation int, tuple []any,
	) func(*testing.T) {
		return func(t *testing.T) {
			suiteT := &T{
				t:          t,
				tearDown:   tearDown,
				logger:     t.Log,
				errorer:    t.Error,
				canceler:   t.FailNow,
				invocation: invocation,
				tuple:      tuple,
			}
			if hasLogger {
				suiteT.logger = suiteLogging.Logger()
			}
			if hasErrorer {
				suiteT.errorer = suiteErrorer.Error()
			}
			if hasCanceler {
				suiteT.canceler = suiteCanceler.Cancel()
			}
			in, err := testInput(test, suite.value, suiteT, tuple)
			if err != nil {
				t.Fatal(err)
			}
			if suite.setUp != nil {
				(*suite.setUp).Func.Call(
					[]reflect.Value{suite.value, in[1]})
			}
			test.Func.Call(in)
			if tearDown != nil {
				tearDown(suiteT)
			}
		}
	}
}

// testInput builds the call-values for given test-method converting a
// parameterized invocation's tuple to the method's parameter types.
func testInput(
	test reflect.Method, suite reflect.Value, t *T, tuple []any,
) ([]reflect.Value, error) {
	in := []reflect.Value{suite, reflect.ValueOf(t)}
	if test.Type.NumIn() == 2 {
		return in, nil
	}
	params := make([]reflect.Type, 0, test.Type.NumIn()-2)
	for i := 2; i < test.Type.NumIn(); i++ {
		params = append(params, test.Type.In(i))
	}
	converted, err := args.ToValues(tuple, params)
	if err != nil {
		return nil, err
	}
	return append(in, converted...), nil
}
