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

// HeadStatus is the terminal/error status of a version's head
// (spec.md §3). Two heads only ever merge when both their node
// (state, position) and their HeadStatus agree (spec.md §4.3, §4.8).
type HeadStatus uint8

const (
	// Live is the status of every freshly created or pushed-to head.
	Live HeadStatus = iota
	// Halted marks a head the driver has declared terminal via
	// HaltVersion. Push does not check it: a halted head still
	// accepts pushes.
	Halted
	// Errored marks a head that RecordError transitioned into
	// ErrorState.
	Errored
)

// head is one entry in the head table: a version's current leaf node
// plus its status (spec.md §3, §4.1).
type head struct {
	n      *node
	status HeadStatus
}

// setNode retargets this head at n. The new reference is taken before
// the old one is dropped: n is frequently an ancestor reached by
// walking through h.n's own link chain (pop_pending, pop_count), so
// releasing h.n first can cascade a decRef into n and free it
// prematurely, only to hand back a node whose links were just cleared.
// Incrementing first means that cascade can never see n's count reach
// zero.
func (h *head) setNode(n *node) {
	old := h.n
	n.incRef()
	h.n = n
	if old != nil {
		old.decRef()
	}
}
