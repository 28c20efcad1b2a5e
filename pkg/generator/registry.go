// Copyright (c) 2025, Xiaofeng Zu.  All rights reserved.
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

package generator

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
	"github.com/matthewzu/simple-build-framework/pkg/types"
)

// Renderer turns a plan into the text of one build-script dialect.
type Renderer interface {
	Render(w io.Writer, p *Plan) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w io.Writer, p *Plan) error

// Render implements Renderer.
func (f RendererFunc) Render(w io.Writer, p *Plan) error {
	return f(w, p)
}

// Global registry for renderers.
// Renderers register themselves via init() functions.
var (
	globalRenderers = make(map[types.Backend]Renderer)
	globalMu        sync.RWMutex
)

// Register registers a renderer globally.
// Returns an error if a renderer for the same backend is already registered.
func Register(backend types.Backend, r Renderer) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if _, exists := globalRenderers[backend]; exists {
		return fmt.Errorf("renderer for backend %s already registered", backend)
	}

	globalRenderers[backend] = r
	return nil
}

// MustRegister is a convenience function that panics on registration error.
// Use this in init() functions where registration must succeed.
func MustRegister(backend types.Backend, r Renderer) {
	if err := Register(backend, r); err != nil {
		panic(err)
	}
}

// NewFromGlobal creates a new Registry populated with all globally registered renderers.
func NewFromGlobal() *Registry {
	globalMu.RLock()
	defer globalMu.RUnlock()

	reg := NewRegistry()
	for backend, r := range globalRenderers {
		reg.Register(backend, r)
	}
	return reg
}

// Registry manages renderers with thread-safe operations.
type Registry struct {
	renderers map[types.Backend]Renderer
	mu        sync.RWMutex
}

// NewRegistry creates a new empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[types.Backend]Renderer),
	}
}

// Register registers a renderer in this registry, replacing any previous one.
func (r *Registry) Register(backend types.Backend, rd Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[backend] = rd
}

// Get retrieves the renderer for backend.
func (r *Registry) Get(backend types.Backend) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rd, ok := r.renderers[backend]
	return rd, ok
}

// List returns all registered backends in sorted order.
func (r *Registry) List() []types.Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backends := make([]types.Backend, 0, len(r.renderers))
	for k := range r.renderers {
		backends = append(backends, k)
	}
	sort.Slice(backends, func(i, j int) bool { return backends[i] < backends[j] })
	return backends
}

// Generate renders p with the renderer registered for backend.
func (r *Registry) Generate(w io.Writer, backend types.Backend, p *Plan) error {
	rd, ok := r.Get(backend)
	if !ok {
		return errors.New(errors.ErrCodeUnsupportedBackend,
			fmt.Sprintf("no generator registered for %q (available: %v)", backend, r.List()))
	}

	start := time.Now()
	if err := rd.Render(w, p); err != nil {
		generateErrors.WithLabelValues(backend.String()).Inc()
		return err
	}
	generateDuration.WithLabelValues(backend.String()).Observe(time.Since(start).Seconds())

	for _, a := range p.Actions {
		actionsRendered.WithLabelValues(backend.String(), string(a.Kind())).Inc()
	}
	return nil
}

// Generate renders p with the globally registered renderer for backend.
func Generate(w io.Writer, backend types.Backend, p *Plan) error {
	return NewFromGlobal().Generate(w, backend, p)
}
