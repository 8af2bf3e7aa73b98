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

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrVersionOutOfRange is returned whenever a caller references a
	// version index that isn't currently a live head. The spec treats
	// this as a programmer error; this implementation always surfaces
	// it as an error rather than panicking or aborting.
	ErrVersionOutOfRange = errors.NewKind("version %d is out of range (have %d live versions)")

	// ErrPendingOverflow describes a version whose top link isn't
	// pending. No operation in this package returns it: PopPending
	// treats that case as a successful no-op.
	ErrPendingOverflow = errors.NewKind("version %d has no pending link to pop")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.NewKind("invalid gss config: %s")

	// ErrNilTree is returned by Push when given a nil tree; every
	// non-root link must carry a tree (spec.md §3).
	ErrNilTree = errors.NewKind("push requires a non-nil tree")
)
