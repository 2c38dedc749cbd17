// Package syntax provides the lossless syntax representation for norg-style
// markup. It defines:
// - Span, Position and Range: byte ranges and their editor positions
// - SyntaxKind and Token: the lexical vocabulary
// - SyntaxNode: an immutable leaf / inner / error tree that reconstructs
// the source byte for byte and carries diagnostics in place
// - LinkedNode: a read-only cursor with parent and sibling access
// - FileSnapshot: the complete parsed view of one file
package syntax

import "github.com/abhinandh-s/vimwiki-syntax/pkg/rope"

// FileSnapshot is an immutable, lossless view of a parsed file.
// It holds the source text, its token stream, the flat node sequence and a
// document root wrapping those nodes.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Text is the source buffer.
	Text *rope.Rope

	// Tokens is the full token stream, ending with EOF.
	Tokens []Token

	// Nodes is the flat node sequence produced by the parser.
	Nodes []SyntaxNode

	// Root is a Document node whose children are Nodes.
	Root SyntaxNode
}

// NewFileSnapshot assembles a snapshot from parser output.
func NewFileSnapshot(path string, text *rope.Rope, tokens []Token, nodes []SyntaxNode) *FileSnapshot {
	return &FileSnapshot{
		Path:   path,
		Text:   text,
		Tokens: tokens,
		Nodes:  nodes,
		Root:   Inner(Document, nodes),
	}
}

// Content returns the full source text.
func (f *FileSnapshot) Content() string {
	return f.Text.String()
}

// Reconstruct rebuilds the source from the tree. For a well-formed
// snapshot it equals Content.
func (f *FileSnapshot) Reconstruct() string {
	return f.Root.IntoText()
}

// Diagnostics returns every syntax error in document order.
func (f *FileSnapshot) Diagnostics() []SyntaxError {
	return f.Root.Errors()
}

// HasErrors reports whether the file contains any error node.
func (f *FileSnapshot) HasErrors() bool {
	return f.Root.IsErroneous()
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return f.Text.LenLines()
}

// LineContent returns the content of a 1-based line number, excluding the
// line ending. Returns "" if the line number is out of range.
func (f *FileSnapshot) LineContent(line int) string {
	content, ok := f.Text.Line(line - 1)
	if !ok {
		return ""
	}
	return content
}

// Range returns the one-based range of span in this file.
func (f *FileSnapshot) Range(span Span) (Range, error) {
	return span.OneBasedRangeIn(f.Text)
}

// Linked returns a cursor at the document root.
func (f *FileSnapshot) Linked() *LinkedNode {
	return NewLinkedNode(f.Root)
}
