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
)

func TestErrVersionOutOfRangeMessage(t *testing.T) {
	err := ErrVersionOutOfRange.New(3, 1)
	assert.EqualError(t, err, "version 3 is out of range (have 1 live versions)")
	assert.True(t, ErrVersionOutOfRange.Is(err))
	assert.False(t, ErrNilTree.Is(err))
}

func TestErrInvalidConfigMessage(t *testing.T) {
	err := ErrInvalidConfig.New("MaxLinksPerNode must be >= 0")
	assert.EqualError(t, err, "invalid gss config: MaxLinksPerNode must be >= 0")
}
