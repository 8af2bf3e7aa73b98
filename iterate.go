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

// pathSeg is a persistent (immutable, structurally-shared) cons cell
// used to accumulate a path's trees while walking backward from a
// head. Two branches that diverge from a common ancestor share every
// cell built before the divergence point, which is the mechanism
// spec.md §4.4 calls "share the result's tree-array buffer among
// paths that converge on the same ancestor" — in this Go rendition
// the sharing happens during traversal (the cons cells), and each
// candidate result still materializes its own owned []Tree (see
// flattenChain), so two slices with a common tail never alias the
// same backing array and Release() never needs buffer-identity
// deduplication the way the original C free_slice_array does.
type pathSeg struct {
	tree Tree
	next *pathSeg
}

// flattenChain walks a pathSeg chain into a forward-order []Tree. When
// retain is true, each tree gets one additional reference, owned by
// the returned slice until its caller releases it (see PopResult).
func flattenChain(chain *pathSeg, retain bool) []Tree {
	var out []Tree
	for p := chain; p != nil; p = p.next {
		if retain {
			p.tree.Retain()
		}
		out = append(out, p.tree)
	}
	return out
}

// walkState is the information available at each node visited during
// a backward walk.
type walkState struct {
	n         *node
	chain     *pathSeg
	treeCount int
	pending   bool
}

type walkAction int

const (
	walkContinue walkAction = iota
	walkEmit
	walkStop
)

// walk performs the depth-first backward traversal the pop engine
// builds on (spec.md §4.5–§4.7): each candidate path is followed all
// the way to its terminus before the next sibling is tried. step is
// invoked once per visited node, in link-declaration order among
// siblings (spec.md §9's Open Question resolution), and decides
// whether to keep descending, to treat the current node as a
// completed result, or to abort entirely.
//
// When dedupeNodes is true, a node already visited earlier in this
// walk is never visited again and its successors are not re-explored.
// pop_count and pop_all always pass false: they must enumerate every
// distinct path, even ones that share a tail, because each is a
// separate candidate result. Iterate does not use walk at all — see
// iterateFrontier — because its node-once-per-depth ordering isn't a
// depth-first property.
func walk(start *node, dedupeNodes bool, step func(walkState) walkAction) {
	var seen map[*node]bool
	if dedupeNodes {
		seen = make(map[*node]bool)
	}
	var visit func(ws walkState) bool
	visit = func(ws walkState) bool {
		if seen != nil {
			if seen[ws.n] {
				return false
			}
			seen[ws.n] = true
		}
		switch step(ws) {
		case walkStop:
			return true
		case walkEmit:
			return false
		default:
			for _, l := range ws.n.links {
				childCount := ws.treeCount
				if !l.tree.Extra() {
					childCount++
				}
				child := walkState{
					n:         l.predecessor,
					chain:     &pathSeg{tree: l.tree, next: ws.chain},
					treeCount: childCount,
					pending:   ws.pending && l.pending,
				}
				if visit(child) {
					return true
				}
			}
			return false
		}
	}
	visit(walkState{n: start, chain: nil, treeCount: 0, pending: true})
}

// iterateFrontier walks backward from start one depth at a time: every
// node at distance k from start is visited before any node at distance
// k+1, matching ts_stack_iterate's frontier order (stack_spec.cc:147-153,
// spec.md §8's "Merge identical heads" scenario expects [(D,0),(B,1),
// (C,1),(A,2),(0,3)]). A node reached from more than one member of the
// current frontier is visited once, at the first link that reaches it
// in per-node link-declaration order, and is not expanded again.
//
// step's return controls only that node's own expansion (walkEmit
// stops descent from it but still lets the rest of its frontier level
// run); walkStop aborts the whole traversal immediately.
func iterateFrontier(start *node, step func(walkState) walkAction) {
	seen := map[*node]bool{start: true}
	frontier := []walkState{{n: start, chain: nil, treeCount: 0, pending: true}}

	for len(frontier) > 0 {
		var next []walkState
		for _, ws := range frontier {
			switch step(ws) {
			case walkStop:
				return
			case walkEmit:
				continue
			default:
				for _, l := range ws.n.links {
					if seen[l.predecessor] {
						continue
					}
					seen[l.predecessor] = true
					childCount := ws.treeCount
					if !l.tree.Extra() {
						childCount++
					}
					next = append(next, walkState{
						n:         l.predecessor,
						chain:     &pathSeg{tree: l.tree, next: ws.chain},
						treeCount: childCount,
						pending:   ws.pending && l.pending,
					})
				}
			}
		}
		frontier = next
	}
}

// IterAction is returned by an Iterate visitor to control traversal.
type IterAction int

const (
	// IterNone continues exploring this node's successors without
	// recording the current path as a result.
	IterNone IterAction = iota
	// IterPop records the current prefix as a result and does not
	// descend further from this node.
	IterPop
	// IterStop aborts the entire iteration immediately.
	IterStop
)

// IterEntry is the information passed to an Iterate visitor for each
// node visited (spec.md §4.4).
type IterEntry struct {
	State     StateID
	Trees     []Tree
	TreeCount int
	// Done reports that this node has no successors (it's the root).
	Done bool
	// Pending reports that every link traversed to reach this node
	// from the head was pushed in pending mode.
	Pending bool
}

// Iterate walks version's head backward through links one depth at a
// time, invoking visit once per distinct node reached (spec.md §4.4).
// A node reachable by more than one path — the common case once Merge
// has run — is visited exactly once, at whichever path reaches it
// first among the current frontier's links in declaration order; its
// predecessors are not re-explored on later paths. The visitor must
// not call any Stack-mutating method (spec.md §5): iterate is a pure
// traversal with no reentrancy into the stack API.
func (s *Stack) Iterate(version int, visit func(IterEntry) IterAction) error {
	if err := s.checkVersion(version); err != nil {
		return err
	}
	head := s.heads[version].n
	iterateFrontier(head, func(ws walkState) walkAction {
		entry := IterEntry{
			State:     ws.n.state,
			Trees:     flattenChain(ws.chain, false),
			TreeCount: ws.treeCount,
			Done:      ws.n.isRoot(),
			Pending:   ws.pending,
		}
		switch visit(entry) {
		case IterPop:
			return walkEmit
		case IterStop:
			return walkStop
		default:
			return walkContinue
		}
	})
	return nil
}
