// Package scenefile owns the TOML scene description format.
//
// Ownership boundary:
// - scene document shape and validation
// - building a scene.Scene from a document
// - running a document's scripted mutation sequence
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	tomlenc "github.com/pelletier/go-toml/v2"

	"github.com/danmuck/scenectl/internal/scene"
)

const (
	ActionAppend  = "append"
	ActionRemove  = "remove"
	ActionDetach  = "detach"
	ActionRelease = "release"
)

var (
	ErrMissingNodeName = errors.New("scenefile: node missing name")
	ErrDuplicatePath   = errors.New("scenefile: duplicate node path")
	ErrUnknownAction   = errors.New("scenefile: unknown op action")
)

// Document is one parsed scene file.
type Document struct {
	Scene string     `toml:"scene"`
	Nodes []NodeSpec `toml:"node"`
	Ops   []OpSpec   `toml:"op"`
}

// NodeSpec declares one node. Parent is the slash path of an earlier
// node; an empty parent declares a root.
type NodeSpec struct {
	Name   string            `toml:"name"`
	Parent string            `toml:"parent"`
	Attrs  map[string]string `toml:"attrs"`
}

// OpSpec is one scripted mutation. Node and Parent are slash paths
// resolved at execution time, so a path always names the node's
// position when the op runs, not when the file was written.
type OpSpec struct {
	Action string `toml:"action"`
	Parent string `toml:"parent"`
	Node   string `toml:"node"`
}

// Load reads and validates a scene file. A missing scene name
// defaults to "scene".
func Load(path string) (Document, error) {
	var doc Document
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return Document{}, fmt.Errorf("scenefile: load %s: %w", path, err)
	}
	if !meta.IsDefined("scene") || strings.TrimSpace(doc.Scene) == "" {
		doc.Scene = "scene"
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Decode parses a scene document from raw TOML.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("scenefile: parse: %w", err)
	}
	if strings.TrimSpace(doc.Scene) == "" {
		doc.Scene = "scene"
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate checks declaration order and op actions without building
// anything.
func (d Document) Validate() error {
	declared := make(map[string]bool, len(d.Nodes))
	for i, spec := range d.Nodes {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return fmt.Errorf("node[%d]: %w", i, ErrMissingNodeName)
		}
		if strings.Contains(name, "/") {
			return fmt.Errorf("scenefile: node[%d] name %q contains '/'", i, name)
		}
		parent := strings.Trim(strings.TrimSpace(spec.Parent), "/")
		path := name
		if parent != "" {
			if !declared[parent] {
				return fmt.Errorf("scenefile: node[%d] parent %q not declared before use", i, parent)
			}
			path = parent + "/" + name
		}
		if declared[path] {
			return fmt.Errorf("node[%d] %q: %w", i, path, ErrDuplicatePath)
		}
		declared[path] = true
	}
	for i, op := range d.Ops {
		switch strings.TrimSpace(op.Action) {
		case ActionAppend, ActionRemove:
			if strings.TrimSpace(op.Parent) == "" || strings.TrimSpace(op.Node) == "" {
				return fmt.Errorf("scenefile: op[%d] %s requires parent and node", i, op.Action)
			}
		case ActionDetach, ActionRelease:
			if strings.TrimSpace(op.Node) == "" {
				return fmt.Errorf("scenefile: op[%d] %s requires node", i, op.Action)
			}
		default:
			return fmt.Errorf("op[%d] %q: %w", i, op.Action, ErrUnknownAction)
		}
	}
	return nil
}

// Build constructs the declared hierarchy. Ops are not run; see Apply.
func Build(doc Document) (*scene.Scene, error) {
	s := scene.NewScene(doc.Scene)
	for i, spec := range doc.Nodes {
		n := scene.NewNode(strings.TrimSpace(spec.Name))
		for k, v := range spec.Attrs {
			n.SetAttr(k, v)
		}
		parent := strings.Trim(strings.TrimSpace(spec.Parent), "/")
		if parent == "" {
			if err := s.AddRoot(n); err != nil {
				return nil, fmt.Errorf("scenefile: node[%d] %s: %w", i, spec.Name, err)
			}
			continue
		}
		p, err := s.Resolve(parent)
		if err != nil {
			return nil, fmt.Errorf("scenefile: node[%d] %s parent %q: %w", i, spec.Name, parent, err)
		}
		if err := p.Append(n); err != nil {
			return nil, fmt.Errorf("scenefile: node[%d] %s: %w", i, spec.Name, err)
		}
	}
	return s, nil
}

// Apply runs the scripted mutation sequence against a built scene.
func Apply(s *scene.Scene, ops []OpSpec) error {
	for i, op := range ops {
		if err := applyOne(s, op); err != nil {
			return fmt.Errorf("scenefile: op[%d] %s: %w", i, op.Action, err)
		}
	}
	return nil
}

func applyOne(s *scene.Scene, op OpSpec) error {
	action := strings.TrimSpace(op.Action)
	node, err := s.Resolve(strings.Trim(strings.TrimSpace(op.Node), "/"))
	if err != nil {
		return fmt.Errorf("node %q: %w", op.Node, err)
	}
	switch action {
	case ActionAppend, ActionRemove:
		parent, err := s.Resolve(strings.Trim(strings.TrimSpace(op.Parent), "/"))
		if err != nil {
			return fmt.Errorf("parent %q: %w", op.Parent, err)
		}
		if action == ActionAppend {
			return parent.Append(node)
		}
		parent.Remove(node)
		return nil
	case ActionDetach:
		node.Detach()
		return nil
	case ActionRelease:
		node.Release()
		return nil
	default:
		return ErrUnknownAction
	}
}

// Encode writes a document as TOML.
func Encode(w io.Writer, doc Document) error {
	if err := tomlenc.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("scenefile: encode: %w", err)
	}
	return nil
}

// Save writes a document to disk.
func Save(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scenefile: save %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, doc)
}
