// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report parses the output of a "go test -json" run into a
// queryable result tree.  Sub-test results are reported by their
// parent test; invocations of a parameterized test, i.e. sub-tests
// named like "Adds#2", are additionally grouped by their test's name.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/paramunit/paramunit"
)

// Results reports the results for each go Test* function of a testing
// package's test run.  Results of sub-tests are reported by their
// parent test.
type Results struct {
	rr results

	// Duration of a test run.
	Duration time.Duration

	// err from the error console
	err string
}

// Parse parses given "go test -json" stdout into a Results instance.
func Parse(stdout []byte) (*Results, error) {
	rr, duration, err := unmarshal(stdout)
	if err != nil {
		return nil, err
	}
	return &Results{rr: rr, Duration: duration}, nil
}

// SetErr associates given stderr content of a tests run with the
// results.
func (r *Results) SetErr(stderr string) { r.err = stderr }

// Err reports a shell exit error of a tests run.
func (r *Results) Err() string { return r.err }

// HasErr returns true if a tests run resulted in a shell exit error.
func (r *Results) HasErr() bool { return r.err != "" }

// Of returns the test result of the go Test* function with given
// name.
func (r *Results) Of(test string) *TestResult { return r.rr[test] }

// For calls back for each go Test* function's result in
// lexicographical order.
func (r *Results) For(cb func(*TestResult)) {
	nn := make([]string, 0, len(r.rr))
	for n := range r.rr {
		nn = append(nn, n)
	}
	sort.Strings(nn)
	for _, n := range nn {
		cb(r.rr[n])
	}
}

// Passed returns true iff no test of the run failed.
func (r *Results) Passed() bool {
	for _, _r := range r.rr {
		if !_r.Passed && !_r.Skipped {
			return false
		}
	}
	return true
}

// Len reports the number of executed tests including sub-tests.
func (r *Results) Len() int {
	n := 0
	for _, _r := range r.rr {
		n += _r.Len()
	}
	return n
}

// LenFailed reports the number of failed tests including sub-tests.
func (r *Results) LenFailed() int {
	n := 0
	for _, _r := range r.rr {
		n += _r.LenFailed()
	}
	return n
}

// Result expresses the commonalities of TestResult- and
// SubResult-instances.
type Result struct {
	Passed  bool
	Skipped bool
	Output  []string
	Start   time.Time
	End     time.Time
	Name    string
	subs    subResults
}

// Len is the number of executed tests comprising given test result,
// i.e. either 1 if given result has no sub-test results or the number
// of executed sub-tests.  Tests having sub-tests are not counted.
func (r *Result) Len() int {
	if len(r.subs) == 0 {
		return 1
	}
	n := 0
	for _, s := range r.subs {
		n += s.Len()
	}
	return n
}

// LenFailed returns the number of failed tests comprising given test
// result including its sub-test results.
func (r *Result) LenFailed() int {
	if len(r.subs) == 0 {
		if r.Passed || r.Skipped {
			return 0
		}
		return 1
	}
	n := 0
	for _, s := range r.subs {
		n += s.LenFailed()
	}
	return n
}

// For calls back for each sub-test result of a test result in
// lexicographical order.
func (r *Result) For(cb func(*SubResult)) {
	sort.Slice(r.subs, func(i, j int) bool {
		return r.subs[i].Name < r.subs[j].Name
	})
	for _, s := range r.subs {
		cb(s)
	}
}

// Of returns the result of the sub-test with given name.
func (r *Result) Of(test string) *SubResult {
	return r.subs.get(test)
}

// Tests returns the distinct test names of a result's sub-tests where
// the invocations of a parameterized test count as one test.
func (r *Result) Tests() []string {
	set := map[string]bool{}
	for _, s := range r.subs {
		set[s.Test()] = true
	}
	tt := make([]string, 0, len(set))
	for t := range set {
		tt = append(tt, t)
	}
	sort.Strings(tt)
	return tt
}

// Invocations returns the results of given parameterized test's
// invocations ordered by their ordinal.
func (r *Result) Invocations(test string) []*SubResult {
	ii := []*SubResult{}
	for _, s := range r.subs {
		if s.Test() != test || s.Invocation() < 0 {
			continue
		}
		ii = append(ii, s)
	}
	sort.Slice(ii, func(i, j int) bool {
		return ii[i].Invocation() < ii[j].Invocation()
	})
	return ii
}

// TestResult indicates if a go Test* function has passed and what
// output it has generated.
type TestResult struct {
	*Result

	// InitOut reports the output of a test suite's Init-method.
	InitOut []string

	// FinalizeOut reports the output of a test suite's
	// Finalize-method.
	FinalizeOut []string
}

type subResults []*SubResult

func (sr *subResults) get(test string) *SubResult {
	for _, sr := range *sr {
		if sr.Name != test {
			continue
		}
		return sr
	}
	return nil
}

func (sr *subResults) add(test string) *SubResult {
	_sr := &SubResult{Result: &Result{Name: test}}
	*sr = append(*sr, _sr)
	return _sr
}

// A SubResult of a run sub-test is reported by a Result instance r:
//
//	r.For(func(sr *SubResult) {
//	    // do some thing with sub-test result
//	})
type SubResult struct {
	*Result
}

// Test returns the sub-test's name with a parameterized invocation's
// ordinal-suffix removed, e.g. "Adds" for the sub-test "Adds#2".
func (r *SubResult) Test() string {
	if i := strings.LastIndex(r.Name, "#"); i >= 0 {
		if _, err := strconv.Atoi(r.Name[i+1:]); err == nil {
			return r.Name[:i]
		}
	}
	return r.Name
}

// Invocation returns a parameterized invocation's ordinal and -1 for
// a sub-test without ordinal-suffix.
func (r *SubResult) Invocation() int {
	i := strings.LastIndex(r.Name, "#")
	if i < 0 {
		return -1
	}
	n, err := strconv.Atoi(r.Name[i+1:])
	if err != nil {
		return -1
	}
	return n
}

const (
	acRun    = "run"    // the test has started running
	acPass   = "pass"   // the test passed
	acFail   = "fail"   // the test or benchmark failed
	acOutput = "output" // the test printed output
	acSkip   = "skip"   // test was skipped or package had no tests
)

type event struct {
	Time    time.Time // encodes as an RFC3339-format string
	Action  string
	Package string
	Test    string
	Elapsed float64 // seconds
	Output  string
}

// jsonProperties must all be present in a provided stdout in order to
// unmarshal to events.
var jsonProperties = [][]byte{
	[]byte("Time"), []byte("Action"), []byte("Package")}

func unmarshal(stdout []byte) (results, time.Duration, error) {
	for _, p := range jsonProperties {
		if !bytes.Contains(stdout, p) {
			return nil, 0, fmt.Errorf("report: parse test-run: "+
				"stdout not parsable:\n%s", string(stdout))
		}
	}
	rr, duration := results{}, time.Duration(0)
	lines := bytes.Split(bytes.TrimSpace(stdout), []byte("\n"))
	for _, raw := range lines {
		event := &event{}
		if err := json.Unmarshal(raw, event); err != nil {
			return nil, 0, err
		}
		if event.Test == "" && event.Elapsed > 0 {
			duration += time.Duration(
				event.Elapsed * float64(time.Second))
		}
		rr.addEvent(event)
	}
	return rr, duration, nil
}

var reFraming = regexp.MustCompile(`^\s*(===|---)`)

type results map[string]*TestResult

func (r *results) addEvent(e *event) {
	if e.Test == "" {
		return
	}
	rslt := r.get(e.Test)
	switch e.Action {
	case acRun:
		if rslt.Start.IsZero() || e.Time.Before(rslt.Start) {
			rslt.Start = e.Time
		}
	case acPass:
		rslt.Passed = true
		rslt.End = e.Time
	case acFail:
		rslt.End = e.Time
	case acSkip:
		rslt.Skipped = true
		rslt.End = e.Time
	case acOutput:
		if reFraming.MatchString(e.Output) {
			break
		}
		if strings.Contains(e.Output, paramunit.InitPrefix) {
			tr, ok := (*r)[e.Test]
			if !ok {
				break
			}
			out := strings.Replace(
				e.Output, paramunit.InitPrefix, "", 1)
			tr.InitOut = append(tr.InitOut, out)
			break
		}
		if strings.Contains(e.Output, paramunit.FinalPrefix) {
			tr, ok := (*r)[e.Test]
			if !ok {
				break
			}
			out := strings.Replace(
				e.Output, paramunit.FinalPrefix, "", 1)
			tr.FinalizeOut = append(tr.FinalizeOut, out)
			break
		}
		rslt.Output = append(rslt.Output, e.Output)
	}
}

func (r *results) get(testName string) *Result {
	path := strings.Split(testName, "/")
	root, ok := (*r)[path[0]]
	if !ok {
		root = &TestResult{Result: &Result{Name: path[0]}}
		(*r)[path[0]] = root
	}
	rslt := root.Result
	for _, tn := range path[1:] {
		r := rslt.subs.get(tn)
		if r == nil {
			r = rslt.subs.add(tn)
		}
		rslt = r.Result
	}
	return rslt
}
