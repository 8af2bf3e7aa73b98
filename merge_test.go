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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeIdenticalHeads grounds spec.md §8's "Merge identical heads"
// scenario: root->A->B on v0 and root->A->C on v1 (branched from the
// same A), then D pushed on both. Merge must collapse the two D heads
// into one node carrying both predecessor links.
func TestMergeIdenticalHeads(t *testing.T) {
	s := NewStack()
	defer s.Close()
	ctx := Background()

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 1)) // A
	v1, err := s.CopyVersion(0)
	require.NoError(t, err)

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 2))  // v0: A->B
	require.NoError(t, s.Push(ctx, v1, newLeaf(), false, 3)) // v1: A->C

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 4))  // v0: B->D
	require.NoError(t, s.Push(ctx, v1, newLeaf(), false, 4)) // v1: C->D, same position

	s.Merge(ctx)
	assert.Equal(t, 1, s.VersionCount())

	state, err := s.TopState(0)
	require.NoError(t, err)
	assert.Equal(t, StateID(4), state)

	var entries []IterEntry
	require.NoError(t, s.Iterate(0, func(e IterEntry) IterAction {
		entries = append(entries, e)
		return IterNone
	}))
	// D has two links (to B and to C); Iterate visits by depth, so
	// both of D's direct predecessors (B, C) come before A, which is
	// reached from both but only visited once, via B's link.
	require.Len(t, entries, 5)
	assert.Equal(t, StateID(4), entries[0].State)
	assert.Equal(t, StateID(2), entries[1].State) // B
	assert.Equal(t, StateID(3), entries[2].State) // C
	assert.Equal(t, StateID(1), entries[3].State) // A
	assert.Equal(t, InitialState, entries[4].State)
}

// TestMergeDifferentPositionsDoesNotMerge grounds spec.md §8's "Merge
// with different positions" scenario: two heads with equal state but
// different accumulated position must stay distinct.
func TestMergeDifferentPositionsDoesNotMerge(t *testing.T) {
	s := NewStack()
	defer s.Close()
	ctx := Background()

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 1)) // A
	v1, err := s.CopyVersion(0)
	require.NoError(t, err)

	wide := NewLeafTree(leafLength.Mul(3), false)
	require.NoError(t, s.Push(ctx, 0, wide, false, 2))       // v0: A->B, 3x length
	require.NoError(t, s.Push(ctx, v1, newLeaf(), false, 2)) // v1: A->C, normal length

	s.Merge(ctx)
	assert.Equal(t, 2, s.VersionCount())
}

func TestMergeIsIdempotent(t *testing.T) {
	s := NewStack()
	defer s.Close()
	ctx := Background()

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 1))
	v1, err := s.CopyVersion(0)
	require.NoError(t, err)
	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 2))
	require.NoError(t, s.Push(ctx, v1, newLeaf(), false, 2))

	s.Merge(ctx)
	require.Equal(t, 1, s.VersionCount())
	s.Merge(ctx)
	assert.Equal(t, 1, s.VersionCount())
}

// TestMergeLinkOverflowEviction exercises the link-list bound with a
// tiny MaxLinksPerNode, checking that the merged node keeps only one
// predecessor link. Every node here has error_cost 0, so the tie keeps
// the link already present and drops the incoming candidate.
func TestMergeLinkOverflowEviction(t *testing.T) {
	s, err := New(Config{MaxLinksPerNode: 1})
	require.NoError(t, err)
	defer s.Close()
	ctx := Background()

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 1)) // A, errorCost 0
	v1, err := s.CopyVersion(0)
	require.NoError(t, err)

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 2))
	require.NoError(t, s.Push(ctx, v1, newLeaf(), false, 2))
	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 3))
	require.NoError(t, s.Push(ctx, v1, newLeaf(), false, 3))

	s.Merge(ctx)
	require.Equal(t, 1, s.VersionCount())

	var entries []IterEntry
	require.NoError(t, s.Iterate(0, func(e IterEntry) IterAction {
		entries = append(entries, e)
		return IterNone
	}))
	// The merged node keeps exactly one predecessor link, per the
	// MaxLinksPerNode=1 bound: only one chain (D, its predecessor, A,
	// root) is reachable, the other branch having been evicted.
	require.Len(t, entries, 4)
}
