package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// Render draws the subtree rooted at n as an ASCII tree, one branch
// per child in insertion order. Attributes are shown sorted by key so
// output is stable.
func Render(n *Node) string {
	if n == nil {
		return ""
	}
	tree := treeprint.NewWithRoot(renderLabel(n))
	renderChildren(tree, n)
	return tree.String()
}

func renderChildren(branch treeprint.Tree, n *Node) {
	for _, c := range n.children {
		if len(c.children) == 0 {
			branch.AddNode(renderLabel(c))
			continue
		}
		renderChildren(branch.AddBranch(renderLabel(c)), c)
	}
}

func renderLabel(n *Node) string {
	if len(n.attrs) == 0 {
		return n.name
	}
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, n.attrs[k]))
	}
	return fmt.Sprintf("%s [%s]", n.name, strings.Join(pairs, " "))
}
