package syntax

// LinkedNode is a read-only cursor over a syntax tree. It knows the node's
// absolute byte offset and gives access to its parent, siblings and
// children without owning or mutating the tree. Offsets are computed from
// node lengths, so they are correct even for trees whose spans were built
// against a different buffer.
//
// Sibling accessors skip over trivia.
type LinkedNode struct {
	SyntaxNode

	parent *LinkedNode
	index  int
	offset int
}

// NewLinkedNode starts a traversal at root, which is placed at offset 0.
func NewLinkedNode(root SyntaxNode) *LinkedNode {
	return &LinkedNode{SyntaxNode: root}
}

// Get returns the wrapped syntax node.
func (l *LinkedNode) Get() SyntaxNode {
	return l.SyntaxNode
}

// Index returns the position of this node in its parent's children.
func (l *LinkedNode) Index() int {
	return l.index
}

// Offset returns the absolute byte offset of this node.
func (l *LinkedNode) Offset() int {
	return l.offset
}

// Range returns the byte range of this node computed from its offset.
func (l *LinkedNode) Range() Span {
	return Span{Start: l.offset, End: l.offset + l.Len()}
}

// Parent returns this node's parent, or nil at the traversal root.
func (l *LinkedNode) Parent() *LinkedNode {
	return l.parent
}

// ParentKind returns the kind of this node's parent. The second result is
// false at the traversal root.
func (l *LinkedNode) ParentKind() (SyntaxKind, bool) {
	if l.parent == nil {
		return 0, false
	}
	return l.parent.Kind(), true
}

// Children returns cursors for the direct children.
func (l *LinkedNode) Children() []*LinkedNode {
	count := l.ChildCount()
	if count == 0 {
		return nil
	}

	children := make([]*LinkedNode, 0, count)
	offset := l.offset
	for i := range count {
		child := l.Child(i)
		children = append(children, &LinkedNode{
			SyntaxNode: child,
			parent:     l,
			index:      i,
			offset:     offset,
		})
		offset += child.Len()
	}
	return children
}

// PrevSibling returns the closest preceding non-trivia sibling, or nil.
func (l *LinkedNode) PrevSibling() *LinkedNode {
	if l.parent == nil {
		return nil
	}

	offset := l.offset
	for i := l.index - 1; i >= 0; i-- {
		sibling := l.parent.Child(i)
		offset -= sibling.Len()
		if !sibling.Kind().IsTrivia() {
			return &LinkedNode{SyntaxNode: sibling, parent: l.parent, index: i, offset: offset}
		}
	}
	return nil
}

// NextSibling returns the closest following non-trivia sibling, or nil.
func (l *LinkedNode) NextSibling() *LinkedNode {
	if l.parent == nil {
		return nil
	}

	offset := l.offset + l.Len()
	for i := l.index + 1; i < l.parent.ChildCount(); i++ {
		sibling := l.parent.Child(i)
		if !sibling.Kind().IsTrivia() {
			return &LinkedNode{SyntaxNode: sibling, parent: l.parent, index: i, offset: offset}
		}
		offset += sibling.Len()
	}
	return nil
}

// LeafAt returns the deepest node without children that covers offset, or
// nil if offset lies outside this node.
func (l *LinkedNode) LeafAt(offset int) *LinkedNode {
	if !l.Range().Contains(offset) {
		return nil
	}

	for _, child := range l.Children() {
		if child.Range().Contains(offset) {
			return child.LeafAt(offset)
		}
	}

	return l
}
