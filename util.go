// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package paramunit

import "sync"

// Fixtures provides a simple concurrency safe fixture storage for
// paramunit tests.  A Fixtures instance must not be copied after its
// first use.  A Fixtures storage is typically used to set up test
// specific fixtures for concurrently run suite-tests:
//
//	type MySuite {
//	    paramunit.Suite
//	    fx ff
//	}
//
//	type ff { paramunit.Fixtures }
//
//	func (fx *ff) Of(t *paramunit.T) string {
//	    return fx.Get(t).(string)
//	}
//
//	func (s *MySuite) SetUp(t *paramunit.T) {
//	    t.Parallel()
//	    s.fx.Set(t, fmt.Sprintf("%p's fixture", t))
//	}
//
//	func (s *MySuite) MySuiteTest(t *paramunit.T) {
//	    t.Logf("%p: got: %s", t, s.fx.Of(t))
//	}
//
//	func TestMySuite(t *testing.T) {
//	    t.Parallel()
//	    Run(&MySuite{}, t)
//	}
//
// For a parameterized test each invocation receives its own
// T-instance, hence each invocation also gets its own fixture.
type Fixtures struct {
	mutex sync.Mutex
	ff    map[*T]interface{}
}

// Set adds concurrency safe a mapping from given test to given
// fixture.
func (ff *Fixtures) Set(t *T, fixture interface{}) {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	if ff.ff == nil {
		ff.ff = map[*T]interface{}{}
	}
	ff.ff[t] = fixture
}

// Get maps given test to its fixture and returns it.
func (ff *Fixtures) Get(t *T) interface{} {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	return ff.ff[t]
}

// Del removes the mapping of given test to its fixture and returns
// the fixture.
func (ff *Fixtures) Del(t *T) interface{} {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	fixture := ff.ff[t]
	delete(ff.ff, t)
	return fixture
}
