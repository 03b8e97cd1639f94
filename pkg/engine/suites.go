// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/paramunit/paramunit/pkg/args"
)

const suiteEngineID = "paramunit-suites"

// SuiteEngine is a reflection-based [Engine] over plain suite values.
// Every exported suite method returning exactly an error is a test; a
// method with further parameters is a parameterized test run once per
// argument tuple.  The tuples come from the args resolution facade:
// the references of an optional
//
//	func (s *MySuite) Sources() map[string][]string
//
// method keyed by test-method name or, missing an entry, the factory
// method named after the test method with a "Source" suffix.  The
// suite value itself is the test instance, so non-static factories are
// permitted.
type SuiteEngine struct {
	log         *zap.Logger
	invocations map[string]invocation
}

// invocation binds a discovered test descriptor to its callable.
type invocation struct {
	suite  reflect.Value
	method reflect.Method
	params int
}

// NewSuiteEngine returns a suite engine logging to given logger; nil
// defaults to a nop logger.
func NewSuiteEngine(log *zap.Logger) *SuiteEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &SuiteEngine{
		log:         log,
		invocations: map[string]invocation{},
	}
}

// ID implements [Engine].
func (e *SuiteEngine) ID() string { return suiteEngineID }

// Discover implements [Engine]: it builds a descriptor tree with one
// container per suite and one test node per discovered test method.
func (e *SuiteEngine) Discover(
	ctx context.Context, spec DiscoverySpec,
) (*Descriptor, error) {
	root := NewDescriptor(suiteEngineID, suiteEngineID, Container)
	for _, suite := range spec.Suites {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value := reflect.ValueOf(suite)
		if value.Kind() != reflect.Pointer || value.IsNil() {
			return nil, fmt.Errorf(
				"discover: suite must be a non-nil pointer; got %T",
				suite)
		}
		name := args.TypeName(suite)
		descriptor := NewDescriptor(
			root.ID()+"/"+name, name, Container)
		tests := 0
		for i := 0; i < value.Type().NumMethod(); i++ {
			method := value.Type().Method(i)
			if !isTestMethod(method) {
				continue
			}
			test := NewDescriptor(
				descriptor.ID()+"/"+method.Name, method.Name, Test)
			descriptor.AddChild(test)
			e.invocations[test.ID()] = invocation{
				suite:  value,
				method: method,
				params: method.Type.NumIn() - 1,
			}
			tests++
		}
		root.AddChild(descriptor)
		e.log.Debug("discovered suite",
			zap.String("suite", name), zap.Int("tests", tests))
	}
	return root, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// isTestMethod reports whether a method is discovered as test: any
// exported method returning exactly an error which is not the Sources
// declaration.
func isTestMethod(m reflect.Method) bool {
	if m.Name == "Sources" {
		return false
	}
	return m.Type.NumOut() == 1 && m.Type.Out(0) == errType
}

// Execute implements [Engine]: it walks the tree consulting every
// node's skip decision and reports one result per test invocation.
// With the request's Parallel flag set sibling suites execute
// concurrently; result reporting is serialized either way.
func (e *SuiteEngine) Execute(
	ctx context.Context, req *ExecutionRequest,
) error {
	if req == nil || req.Root == nil {
		return fmt.Errorf("execute: request without descriptor tree")
	}
	log := e.log
	if req.Context != nil && req.Context.Logger != nil {
		log = req.Context.Logger
	}
	report := req.OnResult
	if report == nil {
		report = func(Result) {}
	}
	var mutex sync.Mutex
	emit := func(r Result) {
		mutex.Lock()
		defer mutex.Unlock()
		log.Debug("test finished",
			zap.String("descriptor", r.Descriptor.ID()),
			zap.Int("invocation", r.Invocation),
			zap.Stringer("status", r.Status),
			zap.Error(r.Err))
		report(r)
	}

	if req.Parallel {
		group, groupCtx := errgroup.WithContext(ctx)
		for _, suite := range req.Root.Children() {
			group.Go(func() error {
				return e.executeSuite(
					groupCtx, req.Context, suite, emit)
			})
		}
		return group.Wait()
	}
	for _, suite := range req.Root.Children() {
		if err := e.executeSuite(
			ctx, req.Context, suite, emit,
		); err != nil {
			return err
		}
	}
	return nil
}

func (e *SuiteEngine) executeSuite(
	ctx context.Context, xc *ExecutionContext,
	suite *Descriptor, emit func(Result),
) error {
	if skip := suite.ShouldBeSkipped(xc); skip.IsSkipped() {
		emit(Result{Descriptor: suite, Invocation: -1,
			Status: Skipped, Reason: skip.Reason()})
		return nil
	}
	for _, test := range suite.Children() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if skip := test.ShouldBeSkipped(xc); skip.IsSkipped() {
			emit(Result{Descriptor: test, Invocation: -1,
				Status: Skipped, Reason: skip.Reason()})
			continue
		}
		e.executeTest(test, emit)
	}
	return nil
}

func (e *SuiteEngine) executeTest(
	test *Descriptor, emit func(Result),
) {
	inv, ok := e.invocations[test.ID()]
	if !ok {
		emit(failure(test, -1,
			fmt.Errorf("unknown descriptor [%s]", test.ID()), 0))
		return
	}
	if inv.params == 0 {
		start := time.Now()
		err := inv.call(nil)
		emit(outcome(test, -1, err, time.Since(start)))
		return
	}

	ctx := args.NewContext(inv.suite.Type()).
		WithTestMethod(test.Name()).
		WithInstance(inv.suite.Interface())
	seq, err := args.Provide(ctx, sourcesOf(inv.suite, test.Name())...)
	if err != nil {
		emit(failure(test, -1, err, 0))
		return
	}
	i := 0
	for tuple := range seq {
		start := time.Now()
		err := inv.call(tuple)
		emit(outcome(test, i, err, time.Since(start)))
		i++
	}
}

// sourcesOf returns the factory references configured for given test
// via the suite's Sources method, defaulting to the test method's name
// with a "Source" suffix.
func sourcesOf(suite reflect.Value, test string) []string {
	method := suite.MethodByName("Sources")
	if method.IsValid() &&
		method.Type().NumIn() == 0 && method.Type().NumOut() == 1 &&
		method.Type().Out(0) == reflect.TypeOf(
			map[string][]string(nil)) {
		sources := method.Call(nil)[0].Interface().(map[string][]string)
		if refs, ok := sources[test]; ok && len(refs) > 0 {
			return refs
		}
	}
	return []string{test + "Source"}
}

// call invokes the test method with given tuple converted to its
// parameter types; a nil tuple invokes a parameterless test.  Panics
// are recovered into errors.
func (v invocation) call(tuple args.Tuple) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("test panicked: %v", r)
		}
	}()
	in := []reflect.Value{v.suite}
	if tuple != nil {
		params := make([]reflect.Type, v.params)
		for i := range params {
			params[i] = v.method.Type.In(i + 1)
		}
		values, cErr := args.ToValues(tuple, params)
		if cErr != nil {
			return cErr
		}
		in = append(in, values...)
	}
	out := v.method.Func.Call(in)
	testErr, _ := out[0].Interface().(error)
	return testErr
}

func outcome(
	d *Descriptor, invocation int, err error, elapsed time.Duration,
) Result {
	if err != nil {
		return failure(d, invocation, err, elapsed)
	}
	return Result{Descriptor: d, Invocation: invocation,
		Status: Passed, Duration: elapsed}
}

func failure(
	d *Descriptor, invocation int, err error, elapsed time.Duration,
) Result {
	return Result{Descriptor: d, Invocation: invocation,
		Status: Failed, Err: err, Duration: elapsed}
}
