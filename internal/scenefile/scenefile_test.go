package scenefile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/scenectl/internal/scene"
	"github.com/danmuck/scenectl/internal/testutil/testlog"
)

const exampleDoc = `
scene = "demo"

[[node]]
name = "a"

[[node]]
name = "b"
parent = "a"

[node.attrs]
kind = "group"

[[node]]
name = "c"
parent = "a"

[[op]]
action = "append"
parent = "a/b"
node = "a/c"
`

func TestDecodeBuildApply(t *testing.T) {
	testlog.Start(t)

	doc, err := Decode([]byte(exampleDoc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Scene != "demo" {
		t.Fatalf("unexpected scene name: %q", doc.Scene)
	}

	s, err := Build(doc)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := s.Resolve("a/b")
	if err != nil {
		t.Fatalf("resolve a/b: %v", err)
	}
	if v, _ := b.Attr("kind"); v != "group" {
		t.Fatalf("attrs not applied: %q", v)
	}

	if err := Apply(s, doc.Ops); err != nil {
		t.Fatalf("apply: %v", err)
	}
	// c was re-parented under b by the scripted append.
	c, err := s.Resolve("a/b/c")
	if err != nil {
		t.Fatalf("resolve a/b/c after apply: %v", err)
	}
	if c.Parent() != b {
		t.Fatalf("op did not re-parent: %v", c.Parent())
	}
	a, err := s.Resolve("a")
	if err != nil {
		t.Fatalf("resolve a: %v", err)
	}
	if a.Len() != 1 {
		t.Fatalf("old parent still lists moved child: %d", a.Len())
	}
}

func TestDecodeDefaultsSceneName(t *testing.T) {
	testlog.Start(t)

	doc, err := Decode([]byte("[[node]]\nname = \"only\"\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Scene != "scene" {
		t.Fatalf("missing scene name not defaulted: %q", doc.Scene)
	}
}

func TestValidateRejectsBadDocuments(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "missing node name",
			doc:  "[[node]]\nparent = \"\"\n",
			want: ErrMissingNodeName,
		},
		{
			name: "duplicate path",
			doc:  "[[node]]\nname = \"a\"\n\n[[node]]\nname = \"a\"\n",
			want: ErrDuplicatePath,
		},
		{
			name: "unknown action",
			doc:  "[[node]]\nname = \"a\"\n\n[[op]]\naction = \"explode\"\nnode = \"a\"\n",
			want: ErrUnknownAction,
		},
	}
	for _, tc := range cases {
		_, err := Decode([]byte(tc.doc))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateRejectsForwardParentReference(t *testing.T) {
	testlog.Start(t)

	doc := "[[node]]\nname = \"child\"\nparent = \"root\"\n\n[[node]]\nname = \"root\"\n"
	if _, err := Decode([]byte(doc)); err == nil {
		t.Fatalf("forward parent reference accepted")
	}
}

func TestValidateRejectsSlashInName(t *testing.T) {
	testlog.Start(t)

	if _, err := Decode([]byte("[[node]]\nname = \"a/b\"\n")); err == nil {
		t.Fatalf("slash in node name accepted")
	}
}

func TestApplyDetachAndRelease(t *testing.T) {
	testlog.Start(t)

	doc, err := Decode([]byte(`
scene = "demo"

[[node]]
name = "root"

[[node]]
name = "left"
parent = "root"

[[node]]
name = "right"
parent = "root"

[[op]]
action = "detach"
node = "root/left"

[[op]]
action = "release"
node = "root/right"
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s, err := Build(doc)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	left, err := s.Resolve("root/left")
	if err != nil {
		t.Fatalf("resolve left: %v", err)
	}

	if err := Apply(s, doc.Ops); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if left.Parent() != nil {
		t.Fatalf("detach op did not clear parent")
	}
	root, err := s.Resolve("root")
	if err != nil {
		t.Fatalf("resolve root: %v", err)
	}
	if root.Len() != 0 {
		t.Fatalf("ops left children behind: %d", root.Len())
	}
}

func TestApplyUnknownPathFails(t *testing.T) {
	testlog.Start(t)

	s := scene.NewScene("demo")
	if err := s.AddRoot(scene.NewNode("root")); err != nil {
		t.Fatalf("add root: %v", err)
	}
	err := Apply(s, []OpSpec{{Action: ActionDetach, Node: "root/ghost"}})
	if !errors.Is(err, scene.ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
}

func TestApplyCycleSurfacesError(t *testing.T) {
	testlog.Start(t)

	doc, err := Decode([]byte(`
[[node]]
name = "a"

[[node]]
name = "b"
parent = "a"

[[op]]
action = "append"
parent = "a/b"
node = "a"
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s, err := Build(doc)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := Apply(s, doc.Ops); !errors.Is(err, scene.ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestEncodeLoadRoundTrip(t *testing.T) {
	testlog.Start(t)

	doc := Document{
		Scene: "roundtrip",
		Nodes: []NodeSpec{
			{Name: "root"},
			{Name: "child", Parent: "root", Attrs: map[string]string{"kind": "mesh"}},
		},
		Ops: []OpSpec{{Action: ActionDetach, Node: "root/child"}},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("encode: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Scene != "roundtrip" || len(loaded.Nodes) != 2 || len(loaded.Ops) != 1 {
		t.Fatalf("round trip lost content: %+v", loaded)
	}
	if loaded.Nodes[1].Attrs["kind"] != "mesh" {
		t.Fatalf("attrs lost: %+v", loaded.Nodes[1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	testlog.Start(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "scenefile: load") {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}
