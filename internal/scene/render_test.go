package scene

import (
	"strings"
	"testing"

	"github.com/danmuck/scenectl/internal/testutil/testlog"
)

func TestRenderListsEveryNodeOnce(t *testing.T) {
	testlog.Start(t)

	root, _, _, _, _ := buildFixture(t)
	out := Render(root)

	for _, name := range []string{"root", "b", "c", "d", "e"} {
		if strings.Count(out, name) != 1 {
			t.Fatalf("node %s rendered %d times:\n%s", name, strings.Count(out, name), out)
		}
	}
	// Siblings keep insertion order in the rendering.
	if strings.Index(out, "d") > strings.Index(out, "e") {
		t.Fatalf("sibling order lost:\n%s", out)
	}
}

func TestRenderShowsSortedAttrs(t *testing.T) {
	testlog.Start(t)

	n := NewNode("n")
	n.SetAttr("zeta", "1")
	n.SetAttr("alpha", "2")
	out := Render(n)
	if !strings.Contains(out, "n [alpha=2 zeta=1]") {
		t.Fatalf("attrs not rendered sorted:\n%s", out)
	}
}

func TestRenderNil(t *testing.T) {
	testlog.Start(t)

	if got := Render(nil); got != "" {
		t.Fatalf("unexpected output for nil: %q", got)
	}
}
