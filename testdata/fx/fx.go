// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides paramunit test-fixture suites.
//
// Each test-fixture suite embeds the FixtureLog ensuring that all
// loggings during a suite's test runs are appended to the
// Logs-property which then can be evaluated after the suite's test
// runs.
package fx

import (
	"fmt"
	"sync"

	"github.com/paramunit/paramunit"
	"github.com/paramunit/paramunit/pkg/args"
)

// FixtureLog provides the general logging facility for test suite
// fixtures by implementing paramunit.SuiteLogging.  A FixtureLog
// mustn't be copied once it has been used.
type FixtureLog struct {
	Logs  string
	mutex sync.Mutex
}

// log logs concurrency safe given arguments to the Logs property.
func (fl *FixtureLog) log(args ...interface{}) {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	fl.Logs += fmt.Sprint(args...)
}

// Logger implements the SuiteLogging interface, i.e. the suite-tests
// runner will use the returned function to implement
// paramunit.T.Log/Logf.
func (fl *FixtureLog) Logger() func(args ...interface{}) {
	return fl.log
}

// TestAllSuiteTestsAreRun is a suite fixture to verify that the
// suite-test runner executes public suite-methods taking a
// paramunit.T as tests.
type TestAllSuiteTestsAreRun struct {
	paramunit.Suite
	FixtureLog
	// Exp is logged iff the A_test-method is called
	Exp string
}

// A_test as a public method should be run by the suite-tests runner,
// i.e. log the content of Exp.
func (s *TestAllSuiteTestsAreRun) A_test(t *paramunit.T) { t.Log(s.Exp) }

// private can't be run.
func (s *TestAllSuiteTestsAreRun) private(t *paramunit.T) {
	t.Log("failed")
}

// Helper takes no paramunit.T hence it must not be run as a test.
func (s *TestAllSuiteTestsAreRun) Helper() { s.log("failed") }

// TestParamDefaults is a suite fixture whose parameterized Adds-test
// draws its argument-tuples from the AddsSource-factory, i.e. the
// default factory derived from the test's name.  Adds logs each
// invocation's arguments in for a tuple-slice deterministic order.
type TestParamDefaults struct {
	paramunit.Suite
	FixtureLog
}

func (s *TestParamDefaults) AddsSource() [][]any {
	return [][]any{{1, 2, 3}, {2, 3, 5}, {40, 2, 42}}
}

func (s *TestParamDefaults) Adds(t *paramunit.T, a, b, sum int) {
	if a+b != sum {
		t.Errorf("expected %d+%d to be %d", a, b, sum)
	}
	t.Logf("%d+%d=%d;", a, b, sum)
}

// TestParamOrdinals logs for each invocation of its parameterized
// test the invocation's ordinal and tuple as reported by the passed
// paramunit.T-instance.
type TestParamOrdinals struct {
	paramunit.Suite
	FixtureLog
}

func (s *TestParamOrdinals) NamesSource() []string {
	return []string{"ada", "grace", "margaret"}
}

func (s *TestParamOrdinals) Names(t *paramunit.T, name string) {
	t.Logf("%d:%s(%v);", t.Invocation(), name, t.Tuple())
}

// TestParamSources is a suite fixture mapping its parameterized
// Doubles-test through the Sources-method to the Pairs-factory whose
// name doesn't follow the default naming.
type TestParamSources struct {
	paramunit.Suite
	FixtureLog
}

func (s *TestParamSources) Sources() map[string][]string {
	return map[string][]string{"Doubles": {"Pairs"}}
}

func (s *TestParamSources) Pairs() []args.Arguments {
	return []args.Arguments{args.Of(1, 2), args.Of(5, 10)}
}

func (s *TestParamSources) Doubles(t *paramunit.T, n, doubled int) {
	if 2*n != doubled {
		t.Errorf("expected %d to be the double of %d", doubled, n)
	}
	t.Logf("%d*2=%d;", n, doubled)
}

// Shared provides factories for fixture suites exercising external
// factory references.  It is registered in this package's
// init-function.
type Shared struct{}

func (Shared) Greetings() []string { return []string{"hi", "hej"} }

func init() { args.Register(Shared{}) }

// SharedRef returns the factory reference of the Shared-holder's
// Greetings-factory.
func SharedRef() string {
	return args.TypeName(Shared{}) + "#Greetings"
}

// TestParamExternal is a suite fixture whose parameterized test draws
// its argument-tuples from the registered Shared-holder.
type TestParamExternal struct {
	paramunit.Suite
	FixtureLog
}

func (s *TestParamExternal) Sources() map[string][]string {
	return map[string][]string{"Greets": {SharedRef()}}
}

func (s *TestParamExternal) Greets(t *paramunit.T, greeting string) {
	t.Log(greeting + ";")
}

// TestParamCombined is a suite fixture whose parameterized test
// concatenates the tuples of a suite-factory and an external factory
// in reference-order.
type TestParamCombined struct {
	paramunit.Suite
	FixtureLog
}

func (s *TestParamCombined) Sources() map[string][]string {
	return map[string][]string{"Words": {"Locals", SharedRef()}}
}

func (s *TestParamCombined) Locals() []string {
	return []string{"foo", "bar"}
}

func (s *TestParamCombined) Words(t *paramunit.T, w string) {
	t.Log(w + ";")
}

// TestParamInstance is a suite fixture whose factory derives its
// tuples from suite-state set before the run, i.e. the factory must
// be invoked bound to the suite-instance.
type TestParamInstance struct {
	paramunit.Suite
	FixtureLog
	Prefix string
}

func (s *TestParamInstance) EchoesSource() []string {
	return []string{s.Prefix + "1", s.Prefix + "2"}
}

func (s *TestParamInstance) Echoes(t *paramunit.T, v string) {
	t.Log(v + ";")
}

// TestParamHooks is a suite fixture logging its SetUp- and
// TearDown-calls around each invocation of its parameterized test.
type TestParamHooks struct {
	paramunit.Suite
	FixtureLog
}

func (s *TestParamHooks) SetUp(t *paramunit.T)    { t.Log("(") }
func (s *TestParamHooks) TearDown(t *paramunit.T) { t.Log(")") }

func (s *TestParamHooks) RunsSource() []int { return []int{1, 2, 3} }

func (s *TestParamHooks) Runs(t *paramunit.T, n int) { t.Log(n) }

// TestParallelFixtures runs its parameterized test's invocations in
// parallel; SetUp stores a per-invocation fixture which the test
// verifies against its argument.  Each matching invocation logs one
// dot.
type TestParallelFixtures struct {
	paramunit.Suite
	FixtureLog
	fx paramunit.Fixtures
}

func (s *TestParallelFixtures) SetUp(t *paramunit.T) {
	t.Parallel()
	s.fx.Set(t, fmt.Sprintf("fx-%d", t.Invocation()))
}

func (s *TestParallelFixtures) TearDown(t *paramunit.T) {
	s.fx.Del(t)
}

func (s *TestParallelFixtures) OrdinalsSource() []int {
	return []int{0, 1, 2}
}

func (s *TestParallelFixtures) Ordinals(t *paramunit.T, n int) {
	if s.fx.Get(t) != fmt.Sprintf("fx-%d", n) {
		t.Errorf("expected invocation %d's own fixture; got %v",
			n, s.fx.Get(t))
		return
	}
	t.Log(".")
}

// TestInit logs the init-prefix before ten further characters iff its
// Init-method is run before its tests.
type TestInit struct {
	paramunit.Suite
	FixtureLog
}

func (s *TestInit) Init(t *paramunit.S) { t.Log("") }

func (s *TestInit) Test_1(t *paramunit.T) { t.Log("12345") }
func (s *TestInit) Test_2(t *paramunit.T) { t.Log("12345") }

// TestFinalize logs the finalize-prefix after ten further characters
// iff its Finalize-method is run after its tests.
type TestFinalize struct {
	paramunit.Suite
	FixtureLog
}

func (s *TestFinalize) Test_1(t *paramunit.T) { t.Log("12345") }
func (s *TestFinalize) Test_2(t *paramunit.T) { t.Log("12345") }

func (s *TestFinalize) Finalize(t *paramunit.S) { t.Log("") }

// TestCancelerImplementation overwrites the default cancellation and
// records cancellations in Got.
type TestCancelerImplementation struct {
	paramunit.Suite
	FixtureLog
	Got []string
}

func (s *TestCancelerImplementation) Cancel() func() {
	return func() { s.Got = append(s.Got, "canceled") }
}

func (s *TestCancelerImplementation) Canceled_test(t *paramunit.T) {
	t.FailNow()
}

// TestErrorerImplementation overwrites the default error-handling and
// records errors in Got.
type TestErrorerImplementation struct {
	paramunit.Suite
	FixtureLog
	Got []string
}

func (s *TestErrorerImplementation) Error() func(...interface{}) {
	return func(args ...interface{}) {
		s.Got = append(s.Got, fmt.Sprint(args...))
	}
}

func (s *TestErrorerImplementation) Erring_test(t *paramunit.T) {
	t.Error("oops")
}
