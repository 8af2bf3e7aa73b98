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

// StateID is a parse-state identifier (spec.md §3). Zero is the
// initial state of a fresh stack.
type StateID uint32

// InitialState is the state of the root node created by New.
const InitialState StateID = 0

// ErrorState is the designated state signaling that error recovery is
// underway. pop_count stops a path the instant it reaches a node in
// ErrorState (spec.md §4.5).
const ErrorState StateID = ^StateID(0)
