// Copyright 2026 The GSS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gss

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// LeafTree is a minimal, ref-counted Tree implementation suitable for
// tests and for the cmd/gssbench harness, playing the same role
// ts_tree_make_leaf plays in the original test suite
// (original_source/spec/runtime/stack_spec.cc). Production users of
// this library are expected to supply their own Tree backed by real
// syntax nodes; LeafTree exists so the stack can be exercised without
// one.
type LeafTree struct {
	// ID uniquely identifies this leaf, minted with uuid.New() the
	// same way sql/rowexec/insert.go mints identifiers for generated
	// rows.
	ID uuid.UUID

	size    Length
	padding Length
	extra   bool
	refs    int32
}

// NewLeafTree creates a LeafTree with one reference already held by
// the caller.
func NewLeafTree(size Length, extra bool) *LeafTree {
	return &LeafTree{
		ID:   uuid.New(),
		size: size, extra: extra,
		refs: 1,
	}
}

// NewLeafTreeWithPadding is like NewLeafTree but also sets leading
// trivia that contributes to position without being part of Size.
func NewLeafTreeWithPadding(padding, size Length, extra bool) *LeafTree {
	t := NewLeafTree(size, extra)
	t.padding = padding
	return t
}

func (t *LeafTree) Size() Length    { return t.size }
func (t *LeafTree) Padding() Length { return t.padding }
func (t *LeafTree) Extra() bool     { return t.extra }

// SetSize mutates this leaf's size in place. Only safe to call before
// the tree is shared via Push; used by tests that need to change a
// fixture's length mid-scenario the way stack_spec.cc pokes
// trees[3]->size directly.
func (t *LeafTree) SetSize(size Length) { t.size = size }

// SetExtra mutates this leaf's extra flag in place, for the same
// reason as SetSize.
func (t *LeafTree) SetExtra(extra bool) { t.extra = extra }

func (t *LeafTree) Retain() Tree {
	atomic.AddInt32(&t.refs, 1)
	return t
}

func (t *LeafTree) Release() {
	if atomic.AddInt32(&t.refs, -1) < 0 {
		panic("gss: LeafTree released more times than retained")
	}
}

// RefCount returns the current reference count, for use by tests that
// assert nothing leaked across a construct/destruct cycle (spec.md §5
// "Memory discipline").
func (t *LeafTree) RefCount() int32 {
	return atomic.LoadInt32(&t.refs)
}
