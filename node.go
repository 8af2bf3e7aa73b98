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

// node is a DAG vertex: a parse-state position, reachable from the
// root along one or more paths, each represented by one outgoing
// link to a predecessor (spec.md §3). Nodes are owned by reference
// count: every head and every link pointing at a node holds one
// reference.
type node struct {
	state     StateID
	position  Length
	errorCost float64

	// links are this node's outgoing edges to its predecessors, in
	// the order they were declared — either push order (an unmerged
	// node has exactly one link) or merge order (see merge.go), which
	// resolves the Open Question in spec.md §9 about slice ordering.
	links []*link

	maxLinks int
	refCount int32
}

func newNode(state StateID, position Length, errorCost float64, maxLinks int) *node {
	return &node{
		state:     state,
		position:  position,
		errorCost: errorCost,
		maxLinks:  maxLinks,
		refCount:  0,
	}
}

func (n *node) incRef() {
	n.refCount++
}

// decRef drops one reference. When the count reaches zero the node is
// unreachable (Invariant 4) and its outgoing links are released,
// which cascades decRef calls into this node's predecessors.
func (n *node) decRef() {
	n.refCount--
	if n.refCount < 0 {
		panic("gss: node refCount went negative")
	}
	if n.refCount == 0 {
		n.free()
	}
}

func (n *node) free() {
	links := n.links
	n.links = nil
	for _, l := range links {
		l.release()
	}
}

// isRoot reports whether n has no outgoing links, i.e. is the root of
// the graph.
func (n *node) isRoot() bool {
	return len(n.links) == 0
}

// hasLink reports whether n already has a link matching the given
// (predecessor, tree, pending) triple (Invariant 3).
func (n *node) hasLink(predecessor *node, tree Tree, pending bool) bool {
	for _, l := range n.links {
		if l.sameAs(predecessor, tree, pending) {
			return true
		}
	}
	return false
}

// addLinkUnchecked appends l to n's link list without deduplication or
// bound enforcement; callers that need those must check first (push
// always creates a fresh node with a single link, so neither check is
// meaningful there; merge.go enforces both explicitly).
func (n *node) addLinkUnchecked(l *link) {
	n.links = append(n.links, l)
	l.predecessor.incRef()
	l.tree.Retain()
}
