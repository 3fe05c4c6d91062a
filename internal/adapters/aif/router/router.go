// Package router dispatches arterial signal references to a source by URI scheme.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/dscfwd/internal/ports"
)

var errNilFallback = errors.New("fallback arterial signal source is nil")

// Factory builds a source on first use.
type Factory func(ctx context.Context) (ports.AIFSource, error)

type Router struct {
	fallback ports.AIFSource

	mu        sync.Mutex
	sources   map[string]ports.AIFSource
	factories map[string]Factory
}

var _ ports.AIFSource = (*Router)(nil)

// New returns a router sending references without a registered scheme to
// fallback.
func New(fallback ports.AIFSource) (*Router, error) {
	if fallback == nil {
		return nil, errNilFallback
	}

	return &Router{
		fallback:  fallback,
		sources:   map[string]ports.AIFSource{},
		factories: map[string]Factory{},
	}, nil
}

func (r *Router) Handle(scheme string, src ports.AIFSource) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[strings.ToLower(scheme)] = src
	return r
}

func (r *Router) HandleLazy(scheme string, factory Factory) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strings.ToLower(scheme)] = factory
	return r
}

func (r *Router) Load(ctx context.Context, ref string) ([]float64, error) {
	src, err := r.sourceFor(ctx, ref)
	if err != nil {
		return nil, err
	}

	return src.Load(ctx, ref)
}

func (r *Router) sourceFor(ctx context.Context, ref string) (ports.AIFSource, error) {
	scheme, _, found := strings.Cut(strings.TrimSpace(ref), "://")
	if !found {
		return r.fallback, nil
	}
	scheme = strings.ToLower(scheme)

	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[scheme]; ok {
		return src, nil
	}
	factory, ok := r.factories[scheme]
	if !ok {
		if scheme == "file" {
			return r.fallback, nil
		}
		return nil, fmt.Errorf("no arterial signal source for scheme %q", scheme)
	}

	src, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("init %s arterial signal source: %w", scheme, err)
	}
	r.sources[scheme] = src
	delete(r.factories, scheme)

	return src, nil
}
