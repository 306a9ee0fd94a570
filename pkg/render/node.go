// pkg/render/node.go
package render

import "ar-tower-defense/internal/interfaces"

// Node is one element of the retained display tree. Attributes are plain
// key/value pairs set by the simulation; drawing interprets the kinds and
// attribute names it knows and ignores the rest, so simulation code never
// depends on what the sink can actually render.
type Node struct {
	kind     string
	attrs    map[string]any
	children []*Node
	removed  bool
}

func newNode(kind string) *Node {
	return &Node{kind: kind, attrs: make(map[string]any)}
}

func (n *Node) Kind() string {
	return n.kind
}

func (n *Node) SetAttribute(name string, value any) {
	n.attrs[name] = value
}

// Attribute returns the raw attribute value.
func (n *Node) Attribute(name string) (any, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) CreateChild(kind string) interfaces.VisualNode {
	c := newNode(kind)
	n.children = append(n.children, c)
	return c
}

// QueryChild finds the first live child whose "id" attribute or kind equals
// selector. Returns nil when nothing matches; callers treat that as the
// subtree not existing yet.
func (n *Node) QueryChild(selector string) interfaces.VisualNode {
	for _, c := range n.children {
		if c.removed {
			continue
		}
		if id, ok := c.attrs["id"].(string); ok && id == selector {
			return c
		}
		if c.kind == selector {
			return c
		}
	}
	return nil
}

// Remove marks the node for deletion. Safe to call more than once; the
// subtree is pruned on the next draw.
func (n *Node) Remove() {
	n.removed = true
}

func (n *Node) Removed() bool {
	return n.removed
}

// prune drops removed children recursively.
func (n *Node) prune() {
	live := n.children[:0]
	for _, c := range n.children {
		if c.removed {
			continue
		}
		c.prune()
		live = append(live, c)
	}
	// Clear the tail so dropped nodes do not linger in the backing array.
	for i := len(live); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = live
}

// Attribute readers with the simulation's loose typing: numbers may arrive
// as float64 or int, and a missing attribute falls back to the default.

func (n *Node) floatAttr(name string, def float64) float64 {
	switch v := n.attrs[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func (n *Node) boolAttr(name string, def bool) bool {
	if v, ok := n.attrs[name].(bool); ok {
		return v
	}
	return def
}

func (n *Node) stringAttr(name string, def string) string {
	if v, ok := n.attrs[name].(string); ok {
		return v
	}
	return def
}
