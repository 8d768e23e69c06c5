package scene

import (
	"errors"
	"strings"
)

var (
	ErrNilNode = errors.New("scene: nil node")
	ErrCycle   = errors.New("scene: append would make a node its own ancestor")
)

// Node is one vertex of an owning tree. A node owns its children in
// insertion order and keeps a non-owning back-reference to its parent.
// Identity is pointer identity; two nodes with equal names and
// attributes are still distinct nodes.
type Node struct {
	name     string
	attrs    map[string]string
	parent   *Node
	children []*Node
	released bool
}

// NewNode constructs an unparented node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's label. Labels are for display and path
// resolution only; they carry no identity.
func (n *Node) Name() string {
	return n.name
}

// Attr returns the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr upserts an attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attrs returns a snapshot copy of the node's attributes.
func (n *Node) Attrs() map[string]string {
	if len(n.attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// Parent resolves the current parent, or nil for a root, a detached
// node, or a node whose owner was released.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a snapshot copy of the child list. Mutating the
// returned slice has no effect on the tree.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len reports the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// IsRoot reports whether the node currently has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Released reports whether the node was severed by Release.
func (n *Node) Released() bool {
	return n.released
}

// Append makes child the last child of n. If child already has a
// parent, it is first removed from that parent, so a node is never
// listed under two parents at once. Appending a node under itself or
// under one of its own descendants fails with ErrCycle and leaves the
// tree untouched.
func (n *Node) Append(child *Node) error {
	if n == nil || child == nil {
		return ErrNilNode
	}
	if child == n || n.HasAncestor(child) {
		return ErrCycle
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Remove detaches child from n. It is a no-op unless n is the child's
// current parent. The child's parent reference is cleared and every
// identity match is dropped from the child list; matching is by
// pointer, never by contents.
func (n *Node) Remove(child *Node) {
	if n == nil || child == nil || child.parent != n {
		return
	}
	child.parent = nil
	kept := n.children[:0]
	for _, c := range n.children {
		if c != child {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
}

// Detach removes n from its current parent, if any.
func (n *Node) Detach() {
	if n == nil || n.parent == nil {
		return
	}
	n.parent.Remove(n)
}

// Release severs the whole subtree rooted at n: n is detached from its
// parent, every descendant has its parent reference cleared, and all
// child lists are emptied. A caller still holding a handle to a former
// descendant sees an unparented, released node rather than a link into
// a dead tree.
func (n *Node) Release() {
	if n == nil {
		return
	}
	n.Detach()
	n.release()
}

func (n *Node) release() {
	n.released = true
	for _, c := range n.children {
		c.parent = nil
		c.release()
	}
	n.children = nil
}

// Root walks parent references up to the top of the tree.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Depth reports the number of ancestors above n. A root has depth 0.
func (n *Node) Depth() int {
	depth := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// HasAncestor reports whether a appears on n's ancestor chain. A node
// is not its own ancestor.
func (n *Node) HasAncestor(a *Node) bool {
	if a == nil {
		return false
	}
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur == a {
			return true
		}
	}
	return false
}

// Path returns the slash-joined names from the root down to n.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.name
	}
	names := []string{n.name}
	for cur := n.parent; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}
