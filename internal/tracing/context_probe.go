// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package tracing

import (
	"context"
	"runtime"
	"sync"
	"testing"

	"github.com/opentofu/nodeattrs/internal/collections"
)

// ContextProbe lets a test check that a context it created reached a
// particular function, which is what span nesting depends on.
//
// The test creates the probe with [NewContextProbe] and passes the returned
// context down. Functions that must see that context call
// [ContextProbeReport] with it, and the test then checks the callers with
// [ContextProbe.ExpectReportsFrom].
type ContextProbe struct {
	mu      sync.Mutex
	callers collections.Set[string]
}

type contextProbeKey struct{}

// NewContextProbe returns a child of base that carries a new probe. Only one
// probe may be active in a context chain.
func NewContextProbe(t testing.TB, base context.Context) (context.Context, *ContextProbe) {
	if base.Value(contextProbeKey{}) != nil {
		t.Fatal("base context already has a ContextProbe")
	}
	probe := &ContextProbe{callers: collections.NewSet[string]()}
	return context.WithValue(base, contextProbeKey{}, probe), probe
}

// ExpectReportsFrom records a test error for each fully-qualified function
// name that has not called [ContextProbeReport] with the probe's context.
// It returns false if any were missing.
func (p *ContextProbe) ExpectReportsFrom(t testing.TB, names ...string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	ok := true
	for _, name := range names {
		if !p.callers.Has(name) {
			t.Errorf("tracing.ContextProbeReport was not called by %s; reports came from %s", name, p.callers)
			ok = false
		}
	}
	return ok
}

// ContextProbeReport tells the probe in ctx, if there is one, that its
// caller ran. skipFrames skips that many further callers, so zero records
// the direct caller.
//
// Without a probe this is a single context lookup.
func ContextProbeReport(ctx context.Context, skipFrames int) {
	probe, ok := ctx.Value(contextProbeKey{}).(*ContextProbe)
	if !ok {
		return
	}
	pc, _, _, ok := runtime.Caller(skipFrames + 1)
	if !ok {
		return
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		probe.mu.Lock()
		probe.callers.Add(fn.Name())
		probe.mu.Unlock()
	}
}
