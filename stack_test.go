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

var leafLength = Length{Bytes: 2, Chars: 3, Columns: 3}

func newLeaf() *LeafTree {
	return NewLeafTree(leafLength, false)
}

func TestNewStackHasOneRootVersion(t *testing.T) {
	s := NewStack()
	defer s.Close()

	assert.Equal(t, 1, s.VersionCount())
	state, err := s.TopState(0)
	require.NoError(t, err)
	assert.Equal(t, InitialState, state)

	pos, err := s.TopPosition(0)
	require.NoError(t, err)
	assert.True(t, pos.IsZero())
}

func TestInvalidConfigRejected(t *testing.T) {
	_, err := New(Config{MaxLinksPerNode: -1})
	assert.True(t, ErrInvalidConfig.Is(err))
}

func TestPushThreeTrees(t *testing.T) {
	s := NewStack()
	defer s.Close()
	ctx := Background()

	a, b, c := newLeaf(), newLeaf(), newLeaf()
	require.NoError(t, s.Push(ctx, 0, a, false, 1))
	require.NoError(t, s.Push(ctx, 0, b, false, 2))
	require.NoError(t, s.Push(ctx, 0, c, false, 3))

	assert.Equal(t, 1, s.VersionCount())
	state, err := s.TopState(0)
	require.NoError(t, err)
	assert.Equal(t, StateID(3), state)

	pos, err := s.TopPosition(0)
	require.NoError(t, err)
	assert.Equal(t, Length{Bytes: 6, Chars: 9, Columns: 9}, pos)
}

func TestPushRejectsNilTree(t *testing.T) {
	s := NewStack()
	defer s.Close()

	err := s.Push(Background(), 0, nil, false, 1)
	assert.True(t, ErrNilTree.Is(err))
}

func TestVersionOutOfRange(t *testing.T) {
	s := NewStack()
	defer s.Close()

	_, err := s.TopState(1)
	assert.True(t, ErrVersionOutOfRange.Is(err))

	_, err = s.CopyVersion(5)
	assert.True(t, ErrVersionOutOfRange.Is(err))
}

func TestRemoveVersion(t *testing.T) {
	s := NewStack()
	defer s.Close()
	ctx := Background()

	v1, err := s.CopyVersion(0)
	require.NoError(t, err)
	require.Equal(t, 1, v1)
	assert.Equal(t, 2, s.VersionCount())

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 1))
	require.NoError(t, s.RemoveVersion(v1))
	assert.Equal(t, 1, s.VersionCount())

	state, err := s.TopState(0)
	require.NoError(t, err)
	assert.Equal(t, StateID(1), state)
}

func TestHaltVersion(t *testing.T) {
	s := NewStack()
	defer s.Close()

	require.NoError(t, s.HaltVersion(0))
	status, err := s.Status(0)
	require.NoError(t, err)
	assert.Equal(t, Halted, status)
}

func TestRecordError(t *testing.T) {
	s := NewStack()
	defer s.Close()
	ctx := Background()

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 1))
	require.NoError(t, s.RecordError(ctx, 0))

	state, err := s.TopState(0)
	require.NoError(t, err)
	assert.Equal(t, ErrorState, state)

	status, err := s.Status(0)
	require.NoError(t, err)
	assert.Equal(t, Errored, status)

	pos, err := s.TopPosition(0)
	require.NoError(t, err)
	assert.Equal(t, leafLength, pos)
}

func TestCopyVersionSharesNode(t *testing.T) {
	s := NewStack()
	defer s.Close()
	ctx := Background()

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 1))
	v1, err := s.CopyVersion(0)
	require.NoError(t, err)

	state0, _ := s.TopState(0)
	state1, _ := s.TopState(v1)
	assert.Equal(t, state0, state1)

	require.NoError(t, s.Push(ctx, 0, newLeaf(), false, 2))
	require.NoError(t, s.Push(ctx, v1, newLeaf(), false, 3))

	state0, _ = s.TopState(0)
	state1, _ = s.TopState(v1)
	assert.Equal(t, StateID(2), state0)
	assert.Equal(t, StateID(3), state1)
}
