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

// PopStatus summarizes how a pop operation terminated (spec.md §4.5).
type PopStatus int

const (
	// PopSucceeded means every candidate path reached its terminus
	// for the requested reason (count satisfied, or root reached for
	// PopAll) without crossing an ERROR_STATE node.
	PopSucceeded PopStatus = iota
	// PopStoppedAtError means at least one candidate path was cut
	// short by an ERROR_STATE node before satisfying the requested
	// count.
	PopStoppedAtError
	// PopFailed stands for allocation failure. Go does not report
	// allocation failure per call, so no operation here ever returns
	// it. A pop that finds no path long enough returns PopSucceeded
	// with no slices.
	PopFailed
)

// StackSlice is one path's contribution to a pop result: the version
// its terminus now occupies, and the trees collected along the way in
// forward (push) order.
type StackSlice struct {
	Version int
	Trees   []Tree
}

// PopResult is the output of PopCount, PopPending, or PopAll.
type PopResult struct {
	Status PopStatus
	Slices []StackSlice
}

// Release drops the reference each slice's trees holds. It is the Go
// rendition of free_slice_array (spec.md §4.5, §9): every tree in
// every slice was retained exactly once when the slice was built, so
// releasing each exactly once here balances the books even when two
// slices were produced from branches that shared a common tail while
// walking (see pathSeg in iterate.go) — each branch materialized its
// own independently-retained []Tree, so there is no buffer identity to
// deduplicate the way the original C implementation must.
func (r PopResult) Release() {
	for _, sl := range r.Slices {
		for _, t := range sl.Trees {
			t.Release()
		}
	}
}

// popCandidate is one path that reached a terminus during a walk,
// before it has been assigned a version index.
type popCandidate struct {
	terminus *node
	trees    []Tree
}

// assignVersions turns raw candidates into StackSlices, replacing
// version's head with the first candidate's terminus and appending a
// new head for every subsequent, distinct terminus. Candidates that
// share a terminus (spec.md §4.5, "converging paths") share a version
// index too.
//
// Every distinct terminus is retained before version's old head is
// released. Releasing that old chain can cascade a decRef through
// several nodes freed along the way, and one of those nodes may be
// the very terminus a later candidate names as its own — the
// diverging-paths scenario (stack_spec.cc:318-322) reaches both
// branches' far ancestors this way once popping crosses the old merge
// point. Retaining every terminus up front means that cascade can
// never see one of them drop to zero before this function hands it to
// its new head.
func (s *Stack) assignVersions(version int, candidates []popCandidate) []StackSlice {
	if len(candidates) == 0 {
		return nil
	}

	distinct := make(map[*node]bool, len(candidates))
	for _, c := range candidates {
		if !distinct[c.terminus] {
			distinct[c.terminus] = true
			c.terminus.incRef()
		}
	}

	oldHead := s.heads[version].n
	termToVersion := make(map[*node]int, len(candidates))
	slices := make([]StackSlice, 0, len(candidates))
	for i, c := range candidates {
		v, seen := termToVersion[c.terminus]
		if !seen {
			if i == 0 {
				v = version
				s.heads[version].n = c.terminus
			} else {
				v = len(s.heads)
				s.heads = append(s.heads, &head{n: c.terminus})
			}
			termToVersion[c.terminus] = v
		}
		slices = append(slices, StackSlice{Version: v, Trees: c.trees})
	}
	oldHead.decRef()

	return slices
}

// PopCount walks every path backward from version's head, stopping
// each path as soon as it has crossed n non-extra trees or reached an
// ERROR_STATE node, whichever comes first (spec.md §4.5). n may be
// zero, in which case every "path" is the head itself and the result
// is a single slice with an empty tree array, unchanged.
func (s *Stack) PopCount(ctx *Context, version int, n int) (PopResult, error) {
	span, _ := ctx.Span("gss.PopCount")
	defer span.Finish()

	if err := s.checkVersion(version); err != nil {
		return PopResult{}, err
	}

	var stoppedAtError bool
	var candidates []popCandidate
	walk(s.heads[version].n, false, func(ws walkState) walkAction {
		switch {
		case ws.n.state == ErrorState:
			stoppedAtError = true
			candidates = append(candidates, popCandidate{terminus: ws.n, trees: flattenChain(ws.chain, true)})
			return walkEmit
		case ws.treeCount >= n:
			candidates = append(candidates, popCandidate{terminus: ws.n, trees: flattenChain(ws.chain, true)})
			return walkEmit
		default:
			return walkContinue
		}
	})

	status := PopSucceeded
	if stoppedAtError {
		status = PopStoppedAtError
	}
	result := PopResult{Status: status, Slices: s.assignVersions(version, candidates)}

	s.log.WithFields(logrus.Fields{
		"version": version, "n": n, "slices": len(result.Slices), "status": status,
	}).Debug("gss: pop_count")
	return result, nil
}

// PopPending removes exactly the top-most link of version's head when
// that link was pushed in pending mode, returning a single slice with
// its one tree. If the top-most link is not pending (or the head has
// no links, i.e. is the root), PopPending is a no-op and returns an
// empty, successful result (spec.md §4.6).
func (s *Stack) PopPending(ctx *Context, version int) (PopResult, error) {
	span, _ := ctx.Span("gss.PopPending")
	defer span.Finish()

	if err := s.checkVersion(version); err != nil {
		return PopResult{}, err
	}

	h := s.heads[version]
	if len(h.n.links) == 0 || !h.n.links[0].pending {
		return PopResult{Status: PopSucceeded}, nil
	}

	l := h.n.links[0]
	l.tree.Retain()
	terminus := l.predecessor
	h.setNode(terminus)

	s.log.WithFields(logrus.Fields{"version": version}).Debug("gss: pop_pending")
	return PopResult{
		Status: PopSucceeded,
		Slices: []StackSlice{{Version: version, Trees: []Tree{l.tree}}},
	}, nil
}

// PopAll walks every path from version's head all the way back to the
// root, emitting one slice per path (paths that end at the same node
// share a version index but each get their own slice), and stopping any path
// early that crosses an ERROR_STATE node (spec.md §4.7).
func (s *Stack) PopAll(ctx *Context, version int) (PopResult, error) {
	span, _ := ctx.Span("gss.PopAll")
	defer span.Finish()

	if err := s.checkVersion(version); err != nil {
		return PopResult{}, err
	}

	var stoppedAtError bool
	var candidates []popCandidate
	walk(s.heads[version].n, false, func(ws walkState) walkAction {
		switch {
		case ws.n.state == ErrorState:
			stoppedAtError = true
			candidates = append(candidates, popCandidate{terminus: ws.n, trees: flattenChain(ws.chain, true)})
			return walkEmit
		case ws.n.isRoot():
			candidates = append(candidates, popCandidate{terminus: ws.n, trees: flattenChain(ws.chain, true)})
			return walkEmit
		default:
			return walkContinue
		}
	})

	status := PopSucceeded
	if stoppedAtError {
		status = PopStoppedAtError
	}
	result := PopResult{Status: status, Slices: s.assignVersions(version, candidates)}

	s.log.WithFields(logrus.Fields{
		"version": version, "slices": len(result.Slices), "status": status,
	}).Debug("gss: pop_all")
	return result, nil
}
