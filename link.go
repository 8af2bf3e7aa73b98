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

// link is a directed edge from a node to one of its predecessors
// (spec.md §3). The root node has no links; every other link carries
// a tree reference that the link owns for its lifetime.
type link struct {
	predecessor *node
	tree        Tree
	pending     bool
}

// sameAs reports whether two links are duplicates under Invariant 3:
// same predecessor, same tree identity, same pending flag.
func (l *link) sameAs(predecessor *node, tree Tree, pending bool) bool {
	return l.predecessor == predecessor && l.tree == tree && l.pending == pending
}

// release drops this link's reference to its tree and its strong
// reference to its predecessor. Called exactly once, when the node
// that owns this link is freed.
func (l *link) release() {
	if l.tree != nil {
		l.tree.Release()
	}
	if l.predecessor != nil {
		l.predecessor.decRef()
	}
}
