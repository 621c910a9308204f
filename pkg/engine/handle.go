package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Factory builds the shared engine instance. Grammar and theme loading is
// expensive, so a handle invokes its factory at most once per successful
// initialization.
type Factory func() (Engine, error)

// Handle is a lazily-initialized shared engine. Concurrent first users
// attach to a single in-flight initialization instead of racing to build
// duplicate instances; the pending operation itself is shared, not just
// its eventual result. A failed initialization is not cached, so a later
// caller retries.
type Handle struct {
	factory Factory
	group   singleflight.Group
	ready   atomic.Pointer[readyEngine]
}

// readyEngine wraps the initialized engine so the atomic pointer has a
// concrete type to point at.
type readyEngine struct {
	engine Engine
}

// NewHandle returns a Handle that builds its engine with factory on
// first use.
func NewHandle(factory Factory) *Handle {
	return &Handle{factory: factory}
}

// Engine returns the shared instance, initializing it on first use.
// When ctx is cancelled while an initialization is in flight, the caller
// unblocks with ctx's error; the initialization itself keeps running and
// its result serves later callers.
func (h *Handle) Engine(ctx context.Context) (Engine, error) {
	if ready := h.ready.Load(); ready != nil {
		return ready.engine, nil
	}

	resultCh := h.group.DoChan("engine", func() (any, error) {
		// A caller that loaded a nil cache just before a completed
		// initialization stored it lands here after the group already
		// forgot the key; the re-check keeps the factory single-shot.
		if ready := h.ready.Load(); ready != nil {
			return ready.engine, nil
		}

		engine, err := h.factory()
		if err != nil {
			return nil, err
		}
		h.ready.Store(&readyEngine{engine: engine})
		return engine, nil
	})

	select {
	case result := <-resultCh:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(Engine), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// DefaultHandle is the process-wide engine handle used when a renderer is
// not given an explicit one.
//
//nolint:gochecknoglobals // process-wide shared engine is intentional
var DefaultHandle = NewHandle(func() (Engine, error) {
	return NewChroma(), nil
})
