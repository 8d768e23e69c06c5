package scene

import "errors"

var ErrUnknownNode = errors.New("scene: unknown node path")

// Scene groups the roots of one named hierarchy. A scene may hold
// several independent roots; detached nodes that are still referenced
// by the caller are not tracked here.
type Scene struct {
	name  string
	roots []*Node
}

// NewScene constructs an empty scene.
func NewScene(name string) *Scene {
	return &Scene{name: name}
}

// Name returns the scene label.
func (s *Scene) Name() string {
	return s.name
}

// AddRoot registers an unparented node as a root of the scene.
func (s *Scene) AddRoot(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	s.roots = append(s.roots, n)
	return nil
}

// Roots returns the scene's roots, skipping any that have since been
// appended under another node or released.
func (s *Scene) Roots() []*Node {
	out := make([]*Node, 0, len(s.roots))
	for _, r := range s.roots {
		if r.IsRoot() && !r.Released() {
			out = append(out, r)
		}
	}
	return out
}

// Resolve finds a node by slash path across all live roots.
func (s *Scene) Resolve(path string) (*Node, error) {
	for _, r := range s.Roots() {
		if n := Find(r, path); n != nil {
			return n, nil
		}
	}
	return nil, ErrUnknownNode
}

// Size counts nodes across all live roots.
func (s *Scene) Size() int {
	total := 0
	for _, r := range s.Roots() {
		total += Size(r)
	}
	return total
}
