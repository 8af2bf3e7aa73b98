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

// Tree is the external collaborator the stack only ever references by
// pointer identity (spec.md §1): an immutable, reference-counted
// syntax node. The stack never inspects anything about a Tree besides
// Size, Padding, and Extra, and it owns exactly one reference per link
// that stores it.
type Tree interface {
	// Size is the span this tree itself covers.
	Size() Length
	// Padding is leading trivia (whitespace, skipped tokens) that
	// precedes Size but is still attributed to this tree's position
	// contribution.
	Padding() Length
	// Extra reports whether this tree is excluded from pop_count's n
	// (spec.md §4.5); extra trees (whitespace, comments) are always
	// included in returned slices but never counted.
	Extra() bool
	// Retain increments the tree's reference count. Called once by
	// Push for every link that stores this tree.
	Retain() Tree
	// Release decrements the tree's reference count, freeing the tree
	// when it reaches zero. Called once when the owning link is
	// destroyed.
	Release()
}

// length returns t.Padding() + t.Size(), the contribution a tree makes
// to a node's position (spec.md Invariant 2).
func length(t Tree) Length {
	return t.Padding().Add(t.Size())
}
