// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package engine defines the pluggable test-engine contract of
// paramunit: an [Engine] discovers tests into a [Descriptor] tree and
// executes them honoring the tree's skip decisions.  The package also
// provides [SuiteEngine], a reflection-based engine over plain suite
// values whose parameterized test methods are fed by the
// paramunit/pkg/args resolution facade.
package engine
