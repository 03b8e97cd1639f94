// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package engine

// SkipResult is a node's decision whether its subtree should be
// skipped.  Construct it with [Skip] or [DontSkip].
type SkipResult struct {
	skipped bool
	reason  string
}

// Skip returns the decision to skip with given reason.
func Skip(reason string) SkipResult {
	return SkipResult{skipped: true, reason: reason}
}

// DontSkip returns the decision not to skip.
func DontSkip() SkipResult { return SkipResult{} }

// IsSkipped reports whether the decision is to skip.
func (s SkipResult) IsSkipped() bool { return s.skipped }

// Reason returns the skip reason; it is empty for a don't-skip
// decision.
func (s SkipResult) Reason() string { return s.reason }

// Node is the skip protocol of descriptor-tree nodes.  An executing
// engine consults every node before running its subtree and honors the
// decision without altering it.
type Node interface {
	ShouldBeSkipped(ctx *ExecutionContext) SkipResult
}
