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

import "github.com/sirupsen/logrus"

// Merge scans all heads and unifies any two whose nodes share the
// same state, position, and HeadStatus (spec.md §4.3). Unification
// keeps the lower-indexed head as the survivor and folds the loser's
// non-duplicate links into it, repeating to a fixed point since a
// merge can make two previously-distinct heads newly equal.
func (s *Stack) Merge(ctx *Context) {
	span, _ := ctx.Span("gss.Merge")
	defer span.Finish()

	for {
		if !s.mergeOnePass() {
			return
		}
	}
}

// mergeOnePass performs a single left-to-right scan, merging the
// first equal pair it finds and reporting whether it merged anything.
func (s *Stack) mergeOnePass() bool {
	for i := 0; i < len(s.heads); i++ {
		for j := i + 1; j < len(s.heads); j++ {
			if !headsEqual(s.heads[i], s.heads[j]) {
				continue
			}
			s.unify(i, j)
			return true
		}
	}
	return false
}

func headsEqual(a, b *head) bool {
	return a.status == b.status && a.n.state == b.n.state && a.n.position == b.n.position
}

// unify folds head j (the loser) into head i (the survivor), then
// removes head j from the table.
func (s *Stack) unify(survivorIdx, loserIdx int) {
	survivor := s.heads[survivorIdx].n
	loser := s.heads[loserIdx].n

	for _, l := range loser.links {
		if survivor.hasLink(l.predecessor, l.tree, l.pending) {
			continue
		}
		s.addLinkWithEviction(survivor, &link{predecessor: l.predecessor, tree: l.tree, pending: l.pending})
	}

	s.log.WithFields(logrus.Fields{
		"survivor": survivorIdx, "loser": loserIdx, "state": survivor.state,
	}).Debug("gss: merged versions")

	s.heads[loserIdx].n.decRef()
	s.heads[loserIdx].n = nil
	s.heads = append(s.heads[:loserIdx], s.heads[loserIdx+1:]...)
}

// addLinkWithEviction appends l to n's link list, enforcing the
// link-list bound (spec.md §3, §9). When n is already at capacity,
// the candidate with the higher error_cost predecessor is dropped;
// ties keep whatever link is already present (spec.md §4.3 "Edge
// cases").
func (s *Stack) addLinkWithEviction(n *node, l *link) {
	if len(n.links) < n.maxLinks {
		n.addLinkUnchecked(l)
		return
	}

	worstIdx := -1
	worstCost := l.predecessor.errorCost
	for i, existing := range n.links {
		if existing.predecessor.errorCost > worstCost {
			worstCost = existing.predecessor.errorCost
			worstIdx = i
		}
	}
	if worstIdx == -1 {
		s.log.WithFields(logrus.Fields{
			"state": n.state, "bound": n.maxLinks,
		}).Debug("gss: link-list overflow, dropped incoming candidate")
		return
	}

	evicted := n.links[worstIdx]
	n.links[worstIdx] = l
	l.predecessor.incRef()
	l.tree.Retain()
	evicted.release()

	s.log.WithFields(logrus.Fields{
		"state": n.state, "bound": n.maxLinks,
	}).Debug("gss: link-list overflow, evicted lower-priority candidate")
}
