package server

import (
	"sort"
	"sync"

	"github.com/danmuck/scenectl/internal/scene"
)

// Registry stores hosted scenes by name.
type Registry struct {
	mu     sync.RWMutex
	scenes map[string]*HostedScene
}

// NewRegistry initializes an empty scene registry.
func NewRegistry() *Registry {
	return &Registry{
		scenes: make(map[string]*HostedScene),
	}
}

// Host wraps a scene for concurrent access and registers it under its
// own name. Re-hosting a name replaces the previous entry.
func (r *Registry) Host(s *scene.Scene) *HostedScene {
	hosted := &HostedScene{scene: s}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenes[s.Name()] = hosted
	return hosted
}

// Get returns a hosted scene by name.
func (r *Registry) Get(name string) (*HostedScene, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.scenes[name]
	return h, ok
}

// Names returns the sorted names of all hosted scenes.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
