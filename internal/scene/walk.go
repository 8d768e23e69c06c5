package scene

import (
	"errors"
	"strings"
)

// Control sentinels for WalkFunc. Returning SkipChildren prunes the
// current node's subtree; returning StopWalk ends the walk early with
// a nil error from Walk. Any other non-nil error aborts the walk and
// is returned as-is.
var (
	SkipChildren = errors.New("scene: skip children")
	StopWalk     = errors.New("scene: stop walk")
)

// WalkFunc is invoked once per visited node with its depth relative to
// the walk root (root depth is 0).
type WalkFunc func(n *Node, depth int) error

// Walk visits the subtree rooted at root depth-first in pre-order;
// siblings are visited in insertion order.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return ErrNilNode
	}
	err := walk(root, 0, fn)
	if errors.Is(err, StopWalk) {
		return nil
	}
	return err
}

func walk(n *Node, depth int, fn WalkFunc) error {
	if err := fn(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, c := range n.children {
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Size counts the nodes in the subtree rooted at root, including root.
func Size(root *Node) int {
	if root == nil {
		return 0
	}
	count := 0
	_ = Walk(root, func(*Node, int) error {
		count++
		return nil
	})
	return count
}

// Find resolves a slash-joined name path against root. The first
// segment must match root's name; each following segment selects the
// first child with that name. It returns nil when the path does not
// resolve.
func Find(root *Node, path string) *Node {
	if root == nil {
		return nil
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] != root.name {
		return nil
	}
	cur := root
	for _, seg := range segments[1:] {
		var next *Node
		for _, c := range cur.children {
			if c.name == seg {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
