package norg

import (
	"fmt"
	"strings"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

// Parser turns a token stream into a flat sequence of syntax nodes.
// Recognition never fails: input that does not match the grammar becomes an
// error node in place, and the rest of the document parses normally.
type Parser struct {
	tokens  []syntax.Token
	current int

	// atLineStart is true at the start of input, after a newline, and
	// after indentation that follows either.
	atLineStart bool
}

// NewParser creates a parser over tokens, which must end with an EOF token
// as produced by Lexer.Lex. It panics otherwise.
func NewParser(tokens []syntax.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != syntax.EOF {
		panic("norg: token stream must end with EOF")
	}
	return &Parser{tokens: tokens, atLineStart: true}
}

// Parse lexes and parses source into a flat node sequence that covers the
// input exactly once. EOF is not emitted.
func Parse(source string) []syntax.SyntaxNode {
	return NewParser(Lex(source)).Parse()
}

// ParseDocument parses source and wraps the nodes in a Document node.
func ParseDocument(source string) syntax.SyntaxNode {
	return syntax.Inner(syntax.Document, Parse(source))
}

// AtEnd reports whether only the EOF token is left.
func (p *Parser) AtEnd() bool {
	return p.peek().Kind == syntax.EOF
}

// Parse scans nodes until EOF.
func (p *Parser) Parse() []syntax.SyntaxNode {
	var nodes []syntax.SyntaxNode
	for !p.AtEnd() {
		nodes = append(nodes, p.Scan())
	}
	return nodes
}

// Scan consumes at least one token and returns the node built from it. At
// EOF it returns the EOF leaf without consuming anything.
func (p *Parser) Scan() syntax.SyntaxNode {
	tok := p.peek()
	lineStart := p.atLineStart

	var node syntax.SyntaxNode
	switch {
	case tok.Kind == syntax.EOF:
		return leaf(tok)
	case tok.Kind == syntax.Asterisk && lineStart && p.headingAhead():
		node = p.heading()
	case (tok.Kind == syntax.Hyphen || tok.Kind == syntax.Tilde) && lineStart &&
		p.peekAt(1).Kind == syntax.Whitespace:
		node = p.listMarker()
	default:
		if _, ok := tok.Kind.PairedKind(); ok {
			node = p.paired(tok.Kind)
		} else {
			node = leaf(p.advance())
		}
	}

	switch node.Kind() {
	case syntax.Newline:
		p.atLineStart = true
	case syntax.IndentWhitespace:
		p.atLineStart = lineStart
	default:
		p.atLineStart = false
	}

	return node
}

// peek returns the current token. The stream always ends with EOF and
// advance never moves past it, so the index is always valid.
func (p *Parser) peek() syntax.Token {
	return p.tokens[p.current]
}

// peekAt looks n tokens ahead, stopping at EOF.
func (p *Parser) peekAt(n int) syntax.Token {
	idx := min(p.current+n, len(p.tokens)-1)
	return p.tokens[idx]
}

// advance consumes and returns the current token. EOF is never consumed.
func (p *Parser) advance() syntax.Token {
	tok := p.tokens[p.current]
	if tok.Kind != syntax.EOF {
		p.current++
	}
	return tok
}

// headingAhead reports whether the asterisk run at the cursor is followed
// by whitespace, which makes it a heading marker rather than bold text.
func (p *Parser) headingAhead() bool {
	n := 0
	for p.peekAt(n).Kind == syntax.Asterisk {
		n++
	}
	return p.peekAt(n).Kind == syntax.Whitespace
}

// heading accumulates a heading line. Every asterisk raises the level.
// A token other than text, whitespace or an asterisk ends the heading as an
// error node holding what was accumulated; that token is left for the next
// Scan.
func (p *Parser) heading() syntax.SyntaxNode {
	var children []syntax.SyntaxNode

	for {
		tok := p.peek()
		switch tok.Kind {
		case syntax.Newline, syntax.EOF:
			return syntax.Inner(syntax.Heading, children)
		case syntax.Asterisk, syntax.Whitespace, syntax.Text:
			children = append(children, leaf(p.advance()))
		default:
			err := syntax.NewSyntaxError("unexpected "+tok.Kind.Name()+" in heading").
				WithHint(fmt.Sprintf("headings may only contain plain text, found %q", tok.Text))
			return errorFrom(err, children)
		}
	}
}

// listMarker consumes a line-start list bullet and the blank after it.
func (p *Parser) listMarker() syntax.SyntaxNode {
	marker := leaf(p.advance())
	blank := leaf(p.advance())
	return syntax.Inner(syntax.ListMarker, []syntax.SyntaxNode{marker, blank})
}

// paired recognises an inline span enclosed by two delim tokens. The
// content must start with text and may continue with text and whitespace.
// Spans do not nest and never cross a newline.
func (p *Parser) paired(delim syntax.SyntaxKind) syntax.SyntaxNode {
	kind, _ := delim.PairedKind()
	nodes := []syntax.SyntaxNode{leaf(p.advance())}

	if p.peek().Kind != syntax.Text {
		return errorFrom(incompleteError(kind, delim), nodes)
	}

	for p.peek().Kind == syntax.Text || p.peek().Kind == syntax.Whitespace {
		nodes = append(nodes, leaf(p.advance()))
	}

	if p.peek().Kind != delim {
		return errorFrom(incompleteError(kind, delim), nodes)
	}

	last := nodes[len(nodes)-1]
	closing := p.advance()
	nodes = append(nodes, leaf(closing))

	if last.Kind() == syntax.Whitespace {
		err := syntax.NewSyntaxError("trailing whitespace").
			WithHint(fmt.Sprintf("remove the whitespace before the closing %q", closing.Text))
		return errorFrom(err, nodes)
	}

	return syntax.Inner(kind, nodes)
}

func incompleteError(kind, delim syntax.SyntaxKind) syntax.SyntaxError {
	mark := delimiterText(delim)
	return syntax.NewSyntaxError("incomplete " + kind.Name() + " text").
		WithHint(fmt.Sprintf("text must be wrapped in %s pairs like %stext%s", delim.Name(), mark, mark))
}

func delimiterText(delim syntax.SyntaxKind) string {
	switch delim {
	case syntax.Asterisk:
		return "*"
	case syntax.Slash:
		return "/"
	case syntax.Underscore:
		return "_"
	case syntax.Tilde:
		return "~"
	case syntax.Hyphen:
		return "-"
	case syntax.At:
		return "@"
	default:
		return ""
	}
}

// errorFrom turns consumed nodes into a single error node covering them.
func errorFrom(err syntax.SyntaxError, nodes []syntax.SyntaxNode) syntax.SyntaxNode {
	var text strings.Builder
	span := nodes[0].Span()
	for _, n := range nodes {
		text.WriteString(n.IntoText())
		span = span.Join(n.Span())
	}
	return syntax.ErrorNode(err.At(span), text.String())
}

func leaf(tok syntax.Token) syntax.SyntaxNode {
	return syntax.Leaf(tok.Kind, tok.Text, tok.Span)
}
