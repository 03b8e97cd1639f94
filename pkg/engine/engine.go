// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DiscoverySpec selects what an [Engine] should discover.
type DiscoverySpec struct {
	// Suites are the suite values, typically pointers, whose
	// exported test methods are discovered.
	Suites []any
}

// Status is the outcome of one test invocation.
type Status int

const (
	Passed Status = iota
	Failed
	Skipped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Result reports the outcome of one test invocation or of a skipped
// subtree.
type Result struct {
	// Descriptor is the reported node.
	Descriptor *Descriptor
	// Invocation is the zero-based ordinal of a parameterized
	// invocation and -1 for non-parameterized tests and containers.
	Invocation int
	Status     Status
	// Reason is set for skipped results.
	Reason string
	// Err is set for failed results.
	Err      error
	Duration time.Duration
}

// ExecutionContext carries the cross-cutting state of one execution
// pass.
type ExecutionContext struct {
	Logger *zap.Logger
}

// logger returns the context's logger defaulting to a nop one.
func (c *ExecutionContext) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ExecutionRequest asks an [Engine] to execute a discovered descriptor
// tree.
type ExecutionRequest struct {
	// Root is the tree to execute, as returned by Discover.
	Root *Descriptor
	// Context carries the execution pass' cross-cutting state.
	Context *ExecutionContext
	// OnResult is called with every produced result; it may be nil.
	// With Parallel set calls are serialized by the engine.
	OnResult func(Result)
	// Parallel lets sibling suites execute concurrently.
	Parallel bool
}

// Engine is the pluggable test-engine contract: discover tests into a
// descriptor tree, then execute the tree.  Engines honor the tree's
// skip decisions and report one result per test invocation through the
// request's callback.
type Engine interface {
	ID() string
	Discover(ctx context.Context, spec DiscoverySpec) (
		*Descriptor, error)
	Execute(ctx context.Context, req *ExecutionRequest) error
}
