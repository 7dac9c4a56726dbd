// Package node provides a read-only view over tree-sitter nodes. The view
// borrows the underlying parse tree and source buffer; it owns neither and
// must not outlive them.
package node

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node is a lightweight projection of one parse-tree node.
// The zero value is invalid; check Valid before use.
type Node struct {
	inner *sitter.Node
}

// Wrap adapts a tree-sitter node. A nil node yields an invalid view.
func Wrap(n *sitter.Node) Node {
	return Node{inner: n}
}

// Valid reports whether the view points at a real node.
func (n Node) Valid() bool {
	return n.inner != nil
}

// Kind returns the grammar's node kind tag, or "" for invalid views.
func (n Node) Kind() string {
	if n.inner == nil {
		return ""
	}
	return n.inner.Type()
}

// StartLine returns the 1-based first line of the node's span.
func (n Node) StartLine() uint32 {
	if n.inner == nil {
		return 0
	}
	return n.inner.StartPoint().Row + 1
}

// EndLine returns the 1-based last line of the node's span.
func (n Node) EndLine() uint32 {
	if n.inner == nil {
		return 0
	}
	return n.inner.EndPoint().Row + 1
}

// StartByte returns the byte offset where the node begins.
func (n Node) StartByte() uint32 {
	if n.inner == nil {
		return 0
	}
	return n.inner.StartByte()
}

// EndByte returns the byte offset just past the node's end.
func (n Node) EndByte() uint32 {
	if n.inner == nil {
		return 0
	}
	return n.inner.EndByte()
}

// ChildCount returns the number of children, named and anonymous.
func (n Node) ChildCount() int {
	if n.inner == nil {
		return 0
	}
	return int(n.inner.ChildCount())
}

// Child returns the i-th child in source order.
func (n Node) Child(i int) Node {
	if n.inner == nil {
		return Node{}
	}
	return Node{inner: n.inner.Child(i)}
}

// NamedChildCount returns the number of named children.
func (n Node) NamedChildCount() int {
	if n.inner == nil {
		return 0
	}
	return int(n.inner.NamedChildCount())
}

// NamedChild returns the i-th named child in source order.
func (n Node) NamedChild(i int) Node {
	if n.inner == nil {
		return Node{}
	}
	return Node{inner: n.inner.NamedChild(i)}
}

// ChildByField returns the child bound to a grammar field, if any.
func (n Node) ChildByField(field string) Node {
	if n.inner == nil {
		return Node{}
	}
	return Node{inner: n.inner.ChildByFieldName(field)}
}

// Parent returns the enclosing node, invalid at the tree root.
func (n Node) Parent() Node {
	if n.inner == nil {
		return Node{}
	}
	return Node{inner: n.inner.Parent()}
}

// IsNamed reports whether the node is a named grammar rule rather than an
// anonymous token (punctuation, keywords).
func (n Node) IsNamed() bool {
	return n.inner != nil && n.inner.IsNamed()
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return n.inner != nil && n.inner.ChildCount() == 0
}

// IsError reports whether the parser emitted this node for malformed input.
// Error nodes classify as unknown and contribute nothing to any metric.
func (n Node) IsError() bool {
	return n.inner != nil && n.inner.IsError()
}

// IsMissing reports whether the parser inserted this node to recover from a
// syntax error.
func (n Node) IsMissing() bool {
	return n.inner != nil && n.inner.IsMissing()
}

// Same reports whether two views point at the same underlying node.
func (n Node) Same(other Node) bool {
	return n.inner != nil && n.inner == other.inner
}

// Text returns the node's source text as a string. Offsets are bounds-checked
// against the buffer so truncated or malformed trees cannot fault.
func (n Node) Text(source []byte) string {
	if n.inner == nil {
		return ""
	}
	start := n.inner.StartByte()
	end := n.inner.EndByte()
	if start > end || end > uint32(len(source)) {
		return ""
	}
	return string(source[start:end])
}
