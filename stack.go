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

// Package gss implements the graph-structured stack that backs a
// generalized-LR parser: a DAG of parse-state nodes where each
// version of the stack is a distinct leaf, supporting push, split,
// merge, and multi-path pop.
package gss

import (
	"github.com/sirupsen/logrus"
)

// Stack is a graph-structured stack: a flat, indexed set of versions,
// each a distinct leaf of a shared DAG (spec.md §2).
type Stack struct {
	cfg   Config
	heads []*head
	log   *logrus.Entry
}

// New creates a Stack with the given configuration and one version
// (index 0) whose head is a fresh root node at InitialState and
// position zero, mirroring ts_stack_new (spec.md §4.1).
func New(cfg Config) (*Stack, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.resolved()
	s := &Stack{
		cfg: cfg,
		log: logrus.WithField("component", "gss.Stack"),
	}
	root := newNode(InitialState, Length{}, 0, cfg.MaxLinksPerNode)
	s.heads = []*head{{n: root}}
	root.incRef()
	return s, nil
}

// NewStack creates a Stack with DefaultConfig. It never fails since
// the default configuration is always valid.
func NewStack() *Stack {
	s, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// Close releases the stack's reference to every remaining head. After
// Close, the Stack must not be used again. This is the idiomatic Go
// spelling of ts_stack_delete (spec.md §6).
func (s *Stack) Close() {
	for _, h := range s.heads {
		if h.n != nil {
			h.n.decRef()
			h.n = nil
		}
	}
	s.heads = nil
}

// VersionCount returns the number of live heads.
func (s *Stack) VersionCount() int {
	return len(s.heads)
}

func (s *Stack) checkVersion(v int) error {
	if v < 0 || v >= len(s.heads) {
		return ErrVersionOutOfRange.New(v, len(s.heads))
	}
	return nil
}

// TopState returns the parse state of version v's current head.
func (s *Stack) TopState(v int) (StateID, error) {
	if err := s.checkVersion(v); err != nil {
		return 0, err
	}
	return s.heads[v].n.state, nil
}

// TopPosition returns the cumulative Length of version v's current
// head.
func (s *Stack) TopPosition(v int) (Length, error) {
	if err := s.checkVersion(v); err != nil {
		return Length{}, err
	}
	return s.heads[v].n.position, nil
}

// TopErrorCost returns the error-cost accumulator of version v's
// current head (spec.md §9, "Error-cost tracking").
func (s *Stack) TopErrorCost(v int) (float64, error) {
	if err := s.checkVersion(v); err != nil {
		return 0, err
	}
	return s.heads[v].n.errorCost, nil
}

// Status returns the HeadStatus of version v.
func (s *Stack) Status(v int) (HeadStatus, error) {
	if err := s.checkVersion(v); err != nil {
		return 0, err
	}
	return s.heads[v].status, nil
}

// CopyVersion appends a new head pointing at the same node as version
// v, returning its index. This is how a driver forks execution when a
// parse state admits more than one action (spec.md §1, "split
// versions when different actions are taken"): the two resulting
// versions push independently from there, and later reconverge via
// Merge if they arrive at equal (state, position, status).
func (s *Stack) CopyVersion(v int) (int, error) {
	if err := s.checkVersion(v); err != nil {
		return 0, err
	}
	src := s.heads[v]
	src.n.incRef()
	s.heads = append(s.heads, &head{n: src.n, status: src.status})

	s.log.WithFields(logrus.Fields{"source": v, "new": len(s.heads) - 1}).Trace("gss: split version")
	return len(s.heads) - 1, nil
}

// RemoveVersion drops head v, decrementing its node's reference count
// and shifting every higher index down by one (spec.md §4.1).
func (s *Stack) RemoveVersion(v int) error {
	if err := s.checkVersion(v); err != nil {
		return err
	}
	s.heads[v].n.decRef()
	s.heads = append(s.heads[:v], s.heads[v+1:]...)
	return nil
}

// HaltVersion marks head v as terminal by setting its status to
// Halted (spec.md §4.8). Push does not check the status, so a halted
// version still accepts pushes.
func (s *Stack) HaltVersion(v int) error {
	if err := s.checkVersion(v); err != nil {
		return err
	}
	s.heads[v].status = Halted
	return nil
}

// RecordError transitions head v into ErrorState (spec.md §4.8). The
// underlying node is retyped: a new node is created carrying
// the same position, error cost, and predecessor links as the current
// head, but with state set to ErrorState, so that subsequent path
// walks (pop_count, iterate) see the error the instant they reach it.
func (s *Stack) RecordError(ctx *Context, v int) error {
	span, _ := ctx.Span("gss.RecordError")
	defer span.Finish()

	if err := s.checkVersion(v); err != nil {
		return err
	}
	h := s.heads[v]
	errored := retype(h.n, ErrorState, h.n.errorCost)
	h.setNode(errored)
	h.status = Errored
	s.log.WithFields(logrus.Fields{"version": v}).Debug("gss: version entered ERROR_STATE")
	return nil
}

// Push acquires a reference to tree and creates a new node with state
// next, position equal to the current head's position plus tree's
// padding+size, and a single link back to the current head. The head
// of version is replaced by the new node (spec.md §4.2).
func (s *Stack) Push(ctx *Context, version int, tree Tree, pending bool, next StateID) error {
	span, _ := ctx.Span("gss.Push")
	defer span.Finish()

	if err := s.checkVersion(version); err != nil {
		return err
	}
	if tree == nil {
		return ErrNilTree.New()
	}

	h := s.heads[version]
	oldTop := h.n
	newPosition := oldTop.position.Add(length(tree))
	n := newNode(next, newPosition, oldTop.errorCost, s.cfg.MaxLinksPerNode)
	n.addLinkUnchecked(&link{predecessor: oldTop, tree: tree, pending: pending})
	h.setNode(n)

	s.log.WithFields(logrus.Fields{
		"version": version, "state": next, "pending": pending,
	}).Trace("gss: pushed")
	return nil
}

// retype creates a new node with the same position and link set as n
// but a different state and error cost. Every link is re-created
// (rather than shared) so that release() bookkeeping stays exactly
// one release per link per owning node.
func retype(n *node, state StateID, errorCost float64) *node {
	out := newNode(state, n.position, errorCost, n.maxLinks)
	for _, l := range n.links {
		out.addLinkUnchecked(&link{predecessor: l.predecessor, tree: l.tree, pending: l.pending})
	}
	return out
}
