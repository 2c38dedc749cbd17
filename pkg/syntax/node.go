package syntax

import (
	"fmt"
	"strings"
)

// SyntaxNode is a node in the untyped, lossless syntax tree. It is a small
// value wrapping one of three representations: a leaf stored inline, or a
// shared pointer to an inner or error node. Nodes are immutable once built,
// so copying a SyntaxNode shares the subtree without a deep copy.
//
// The zero value is an empty EOF leaf with a detached span.
//
//nolint:revive // SyntaxNode reads better than Node at call sites outside the package.
type SyntaxNode struct {
	repr repr
}

// repr is implemented by leafNode, *innerNode and *errorNode only.
type repr interface {
	isRepr()
}

type leafNode struct {
	kind SyntaxKind
	text string
	span Span
}

type innerNode struct {
	kind     SyntaxKind
	span     Span
	children []SyntaxNode

	// Derived at construction.
	content   string
	length    int
	erroneous bool
}

type errorNode struct {
	text string
	err  SyntaxError
}

func (leafNode) isRepr()   {}
func (*innerNode) isRepr() {}
func (*errorNode) isRepr() {}

// Leaf creates a leaf node owning text. It has no children and represents
// exactly the bytes in span.
func Leaf(kind SyntaxKind, text string, span Span) SyntaxNode {
	return SyntaxNode{repr: leafNode{kind: kind, text: text, span: span}}
}

// Inner creates an inner node. Its span is the union of the children's
// spans, or the detached span when there are none. The children slice is
// copied, so the caller may reuse it.
func Inner(kind SyntaxKind, children []SyntaxNode) SyntaxNode {
	owned := make([]SyntaxNode, len(children))
	copy(owned, children)

	node := &innerNode{kind: kind, children: owned, span: DetachedSpan()}
	for i, child := range owned {
		if i == 0 {
			node.span = child.Span()
		} else {
			node.span = node.span.Join(child.Span())
		}
		node.length += child.Len()
		node.erroneous = node.erroneous || child.IsErroneous()
	}
	node.content = contentText(kind, owned)

	return SyntaxNode{repr: node}
}

// ErrorNode creates an error node. text must be the exact source bytes the
// error covers so the tree stays lossless.
func ErrorNode(err SyntaxError, text string) SyntaxNode {
	return SyntaxNode{repr: &errorNode{text: text, err: err}}
}

// contentText returns the text an inner node exposes through Text: the
// content between the delimiters of a paired span, or the title of a
// heading. Other inner nodes have no content text.
func contentText(kind SyntaxKind, children []SyntaxNode) string {
	switch {
	case kind.IsPaired() && len(children) >= 2:
		return joinText(children[1 : len(children)-1])
	case kind == Heading:
		idx := 0
		for idx < len(children) && children[idx].Kind() == Asterisk {
			idx++
		}
		if idx < len(children) && children[idx].Kind() == Whitespace {
			idx++
		}
		return joinText(children[idx:])
	default:
		return ""
	}
}

func joinText(nodes []SyntaxNode) string {
	var builder strings.Builder
	for _, n := range nodes {
		n.writeText(&builder)
	}
	return builder.String()
}

// Kind returns the type of the node. Error nodes are always Error.
func (n SyntaxNode) Kind() SyntaxKind {
	switch r := n.repr.(type) {
	case leafNode:
		return r.kind
	case *innerNode:
		return r.kind
	case *errorNode:
		return Error
	default:
		return EOF
	}
}

// Span returns the byte range of the node.
func (n SyntaxNode) Span() Span {
	switch r := n.repr.(type) {
	case leafNode:
		return r.span
	case *innerNode:
		return r.span
	case *errorNode:
		return r.err.Span
	default:
		return DetachedSpan()
	}
}

// Text returns the text of a leaf or error node. Inner nodes return their
// content text (see Inner), which is empty for most kinds; use IntoText to
// reconstruct the full source of a subtree.
func (n SyntaxNode) Text() string {
	switch r := n.repr.(type) {
	case leafNode:
		return r.text
	case *innerNode:
		return r.content
	case *errorNode:
		return r.text
	default:
		return ""
	}
}

// IntoText reconstructs the exact source text of the subtree by
// concatenating its leaf and error text in document order.
func (n SyntaxNode) IntoText() string {
	if inner, ok := n.repr.(*innerNode); ok {
		var builder strings.Builder
		builder.Grow(inner.length)
		n.writeText(&builder)
		return builder.String()
	}
	return n.Text()
}

func (n SyntaxNode) writeText(builder *strings.Builder) {
	switch r := n.repr.(type) {
	case leafNode:
		builder.WriteString(r.text)
	case *innerNode:
		for _, child := range r.children {
			child.writeText(builder)
		}
	case *errorNode:
		builder.WriteString(r.text)
	}
}

// Len returns the number of source bytes the subtree reconstructs to.
func (n SyntaxNode) Len() int {
	switch r := n.repr.(type) {
	case leafNode:
		return len(r.text)
	case *innerNode:
		return r.length
	case *errorNode:
		return len(r.text)
	default:
		return 0
	}
}

// IsLeaf reports whether n is a leaf node.
func (n SyntaxNode) IsLeaf() bool {
	switch n.repr.(type) {
	case leafNode, nil:
		return true
	default:
		return false
	}
}

// IsInner reports whether n is an inner node.
func (n SyntaxNode) IsInner() bool {
	_, ok := n.repr.(*innerNode)
	return ok
}

// ChildCount returns the number of direct children.
func (n SyntaxNode) ChildCount() int {
	if inner, ok := n.repr.(*innerNode); ok {
		return len(inner.children)
	}
	return 0
}

// Child returns the child at index i. It panics if i is out of range.
func (n SyntaxNode) Child(i int) SyntaxNode {
	inner, ok := n.repr.(*innerNode)
	if !ok {
		panic(fmt.Sprintf("syntax: Child(%d) on %s node without children", i, n.Kind()))
	}
	return inner.children[i]
}

// Children returns a copy of the direct children. Leaf and error nodes have
// none.
func (n SyntaxNode) Children() []SyntaxNode {
	inner, ok := n.repr.(*innerNode)
	if !ok {
		return nil
	}
	children := make([]SyntaxNode, len(inner.children))
	copy(children, inner.children)
	return children
}

// IsErroneous reports whether the node is, or contains, an error node.
func (n SyntaxNode) IsErroneous() bool {
	switch r := n.repr.(type) {
	case *innerNode:
		return r.erroneous
	case *errorNode:
		return true
	default:
		return false
	}
}

// Errors returns the syntax errors in the subtree in document order.
func (n SyntaxNode) Errors() []SyntaxError {
	if !n.IsErroneous() {
		return nil
	}

	var errs []SyntaxError
	n.collectErrors(&errs)
	return errs
}

func (n SyntaxNode) collectErrors(errs *[]SyntaxError) {
	switch r := n.repr.(type) {
	case *innerNode:
		if !r.erroneous {
			return
		}
		for _, child := range r.children {
			child.collectErrors(errs)
		}
	case *errorNode:
		*errs = append(*errs, r.err.At(r.err.Span))
	}
}

// Hint adds a user-presentable hint if n is an error node; other nodes are
// left alone. The error payload may be shared by other SyntaxNode values,
// so it is copied before the hint is appended and only n observes the
// change.
func (n *SyntaxNode) Hint(hint string) {
	r, ok := n.repr.(*errorNode)
	if !ok {
		return
	}
	n.repr = &errorNode{text: r.text, err: r.err.WithHint(hint)}
}

// SpanlessEq reports whether two subtrees are the same apart from spans.
func (n SyntaxNode) SpanlessEq(other SyntaxNode) bool {
	switch a := n.repr.(type) {
	case leafNode:
		b, ok := other.repr.(leafNode)
		return ok && a.kind == b.kind && a.text == b.text
	case *innerNode:
		b, ok := other.repr.(*innerNode)
		if !ok || a.kind != b.kind || len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !a.children[i].SpanlessEq(b.children[i]) {
				return false
			}
		}
		return true
	case *errorNode:
		b, ok := other.repr.(*errorNode)
		return ok && a.text == b.text && a.err.spanlessEq(b.err)
	default:
		return other.repr == nil
	}
}

// String formats the node for debugging: `KIND: "text"` for leaves,
// `KIND [child, ...]` for inner nodes and `Error: "text" (message)` for
// error nodes.
func (n SyntaxNode) String() string {
	switch r := n.repr.(type) {
	case *innerNode:
		if len(r.children) == 0 {
			return r.kind.String()
		}
		parts := make([]string, len(r.children))
		for i, child := range r.children {
			parts[i] = child.String()
		}
		return r.kind.String() + " [" + strings.Join(parts, ", ") + "]"
	case *errorNode:
		return fmt.Sprintf("Error: %q (%s)", r.text, r.err.Message)
	default:
		return fmt.Sprintf("%s: %q", n.Kind(), n.Text())
	}
}

// HeadingLevel returns the number of asterisks in a heading node, or 0 for
// any other node.
func HeadingLevel(n SyntaxNode) int {
	inner, ok := n.repr.(*innerNode)
	if !ok || inner.kind != Heading {
		return 0
	}

	level := 0
	for _, child := range inner.children {
		if child.Kind() == Asterisk {
			level++
		}
	}
	return level
}
