package server

import (
	"sync"

	"github.com/danmuck/scenectl/internal/observability"
	"github.com/danmuck/scenectl/internal/scene"
)

// NodeView is the JSON shape of one node and its subtree.
type NodeView struct {
	Name     string            `json:"name"`
	Path     string            `json:"path"`
	Depth    int               `json:"depth"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []NodeView        `json:"children,omitempty"`
}

// HostedScene guards one scene behind a mutex. Append and remove
// update both sides of the parent/child relationship, so the whole
// operation is one critical section; readers take the same lock to
// never observe a half-linked tree.
type HostedScene struct {
	mu    sync.Mutex
	scene *scene.Scene
}

// Name returns the scene label.
func (h *HostedScene) Name() string {
	return h.scene.Name()
}

// Snapshot returns the rendered tree, JSON views of every live root,
// and the node count, consistent with each other.
func (h *HostedScene) Snapshot() (rendered []string, roots []NodeView, size int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.scene.Roots() {
		rendered = append(rendered, scene.Render(r))
		roots = append(roots, viewOf(r, 0))
	}
	return rendered, roots, h.scene.Size()
}

// Node returns the view of one node by path.
func (h *HostedScene) Node(path string) (NodeView, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, err := h.scene.Resolve(path)
	if err != nil {
		return NodeView{}, err
	}
	return viewOf(n, n.Depth()), nil
}

// Append re-parents the node at nodePath under the node at
// parentPath and returns the moved node's new path.
func (h *HostedScene) Append(parentPath, nodePath string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := h.append(parentPath, nodePath, "", nil)
	h.record("append", err)
	return path, err
}

// Create appends a brand new named node under parentPath.
func (h *HostedScene) Create(parentPath, name string, attrs map[string]string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := h.append(parentPath, "", name, attrs)
	h.record("create", err)
	return path, err
}

func (h *HostedScene) append(parentPath, nodePath, name string, attrs map[string]string) (string, error) {
	parent, err := h.scene.Resolve(parentPath)
	if err != nil {
		return "", err
	}
	var child *scene.Node
	if nodePath != "" {
		child, err = h.scene.Resolve(nodePath)
		if err != nil {
			return "", err
		}
	} else {
		child = scene.NewNode(name)
		for k, v := range attrs {
			child.SetAttr(k, v)
		}
	}
	if err := parent.Append(child); err != nil {
		return "", err
	}
	return child.Path(), nil
}

// Detach removes the node at path from its parent. The detached
// subtree leaves the hosted scene entirely.
func (h *HostedScene) Detach(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, err := h.scene.Resolve(path)
	if err == nil {
		n.Detach()
	}
	h.record("detach", err)
	return err
}

// Release severs the subtree at path.
func (h *HostedScene) Release(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, err := h.scene.Resolve(path)
	if err == nil {
		n.Release()
	}
	h.record("release", err)
	return err
}

// Size reports the current node count.
func (h *HostedScene) Size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scene.Size()
}

// record must be called with the lock held so the size gauge matches
// the tree the operation produced.
func (h *HostedScene) record(op string, err error) {
	observability.RecordTreeOp(h.scene.Name(), op, err)
	observability.SetTreeSize(h.scene.Name(), h.scene.Size())
}

func viewOf(n *scene.Node, depth int) NodeView {
	view := NodeView{
		Name:  n.Name(),
		Path:  n.Path(),
		Depth: depth,
		Attrs: n.Attrs(),
	}
	for _, c := range n.Children() {
		view.Children = append(view.Children, viewOf(c, depth+1))
	}
	return view
}
