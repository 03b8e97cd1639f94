// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package engine

// Kind discriminates descriptor-tree nodes.
type Kind int

const (
	// Container nodes group other nodes, e.g. an engine or a suite.
	Container Kind = iota
	// Test nodes represent one executable test method.
	Test
)

// Descriptor is one node of the tree an [Engine] discovers: the engine
// at the root, below it one container per suite and one test node per
// test method.  A Descriptor implements the [Node] skip protocol; a
// node marked skipped reports a skip decision for its whole subtree.
type Descriptor struct {
	id         string
	name       string
	kind       Kind
	parent     *Descriptor
	children   []*Descriptor
	skipped    bool
	skipReason string
}

// NewDescriptor returns a parentless descriptor with given unique id,
// display name and kind.
func NewDescriptor(id, name string, kind Kind) *Descriptor {
	return &Descriptor{id: id, name: name, kind: kind}
}

// ID returns the descriptor's unique id.
func (d *Descriptor) ID() string { return d.id }

// Name returns the descriptor's display name.
func (d *Descriptor) Name() string { return d.name }

// Kind returns whether the descriptor is a container or a test.
func (d *Descriptor) Kind() Kind { return d.kind }

// Parent returns the descriptor's parent or nil at the root.
func (d *Descriptor) Parent() *Descriptor { return d.parent }

// Children returns the descriptor's children in insertion order.  The
// returned slice must not be mutated.
func (d *Descriptor) Children() []*Descriptor { return d.children }

// AddChild appends given descriptor to d's children setting its
// parent.
func (d *Descriptor) AddChild(child *Descriptor) {
	child.parent = d
	d.children = append(d.children, child)
}

// Walk traverses the subtree rooted in d depth-first in insertion
// order.  Traversal stops once visit returns false.
func (d *Descriptor) Walk(visit func(*Descriptor) bool) bool {
	if !visit(d) {
		return false
	}
	for _, child := range d.children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// MarkSkipped turns d's skip decision into a skip with given reason.
func (d *Descriptor) MarkSkipped(reason string) {
	d.skipped = true
	d.skipReason = reason
}

// ShouldBeSkipped implements the [Node] skip protocol.
func (d *Descriptor) ShouldBeSkipped(_ *ExecutionContext) SkipResult {
	if d.skipped {
		return Skip(d.skipReason)
	}
	return DontSkip()
}
