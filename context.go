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
	"context"

	opentracing "github.com/opentracing/opentracing-go"
)

// Context carries a standard context.Context plus the tracer used to
// instrument stack operations, the same role sql.Context plays for
// the query engine (sql/session.go). The driver threads one Context
// through a parse even though no Stack operation ever blocks or
// checks for cancellation (spec.md §5): it exists purely so operations
// can be traced end to end.
type Context struct {
	context.Context
	tracer opentracing.Tracer
}

// NewContext wraps a context.Context with a no-op tracer.
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, tracer: opentracing.NoopTracer{}}
}

// NewContextWithTracer wraps a context.Context with the given tracer.
func NewContextWithTracer(ctx context.Context, tracer opentracing.Tracer) *Context {
	return &Context{Context: ctx, tracer: tracer}
}

// Background returns a Context wrapping context.Background with a
// no-op tracer, for callers (and most of this package's own tests)
// that don't care about tracing.
func Background() *Context {
	return NewContext(context.Background())
}

// Span starts a span named opName, the same way Context.Span works in
// sql/session.go: it returns the span and a derived Context that
// children should use so nested spans parent correctly.
func (c *Context) Span(opName string) (opentracing.Span, *Context) {
	parent := opentracing.SpanFromContext(c.Context)
	var span opentracing.Span
	if parent != nil {
		span = c.tracer.StartSpan(opName, opentracing.ChildOf(parent.Context()))
	} else {
		span = c.tracer.StartSpan(opName)
	}
	ctx := opentracing.ContextWithSpan(c.Context, span)
	return span, &Context{Context: ctx, tracer: c.tracer}
}
