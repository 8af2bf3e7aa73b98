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

import "fmt"

// Length is the four-dimensional position delta tracked by the stack:
// bytes, chars (code points), rows, and columns. Every node's position
// is a Length accumulated from the root along any of its incoming
// paths; Invariant 2 (spec.md §3) requires this sum to be the same
// regardless of which path is walked.
type Length struct {
	Bytes   int64
	Chars   int64
	Rows    int64
	Columns int64
}

// Add returns the component-wise sum of l and other.
func (l Length) Add(other Length) Length {
	return Length{
		Bytes:   l.Bytes + other.Bytes,
		Chars:   l.Chars + other.Chars,
		Rows:    l.Rows + other.Rows,
		Columns: l.Columns + other.Columns,
	}
}

// Mul scales every component of l by a non-negative factor.
func (l Length) Mul(factor int64) Length {
	return Length{
		Bytes:   l.Bytes * factor,
		Chars:   l.Chars * factor,
		Rows:    l.Rows * factor,
		Columns: l.Columns * factor,
	}
}

// IsZero reports whether l is the zero Length.
func (l Length) IsZero() bool {
	return l == Length{}
}

func (l Length) String() string {
	return fmt.Sprintf("(bytes=%d, chars=%d, rows=%d, columns=%d)", l.Bytes, l.Chars, l.Rows, l.Columns)
}
