package pretty

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

// ellipsis marks text cut short by truncation.
const ellipsis = "…"

// minQuotedWidth fits the quotes, one character and the ellipsis.
const minQuotedWidth = 4

// FormatToken formats a token as `KIND "text" [ span: s..e ]`.
func (s *Styles) FormatToken(tok syntax.Token) string {
	return s.Kind.Render(tok.Kind.String()) + " " +
		s.Text.Render(strconv.Quote(tok.Text)) + " " +
		s.Span.Render(tok.Span.String())
}

// FormatTokens formats a token stream, one token per line.
func (s *Styles) FormatTokens(tokens []syntax.Token) string {
	var builder strings.Builder
	for _, tok := range tokens {
		builder.WriteString(s.FormatToken(tok))
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatAST renders parsed nodes as a document of paragraphs. Every
// newline node starts a new paragraph; other nodes are listed with their
// content text and span.
func (s *Styles) FormatAST(nodes []syntax.SyntaxNode) string {
	var builder strings.Builder

	paragraph := "  " + s.Header.Render("PARAGRAPH:") + "\n"

	builder.WriteString(s.Header.Render("DOCUMENT:") + "\n")
	builder.WriteString(paragraph)

	for _, node := range nodes {
		if node.Kind() == syntax.Newline {
			builder.WriteString(paragraph)
			continue
		}
		builder.WriteString("    " + s.Kind.Render(node.Kind().String()+":") + " " +
			s.Text.Render(strconv.Quote(node.Text())) + "  " +
			s.Span.Render(node.Span().String()) + "\n")
	}

	return builder.String()
}

// FormatTree renders the nested structure of root, one node per line,
// indented by depth. Quoted text is truncated so each line fits in width
// display cells; width <= 0 disables truncation.
func (s *Styles) FormatTree(root syntax.SyntaxNode, width int) string {
	var builder strings.Builder
	s.writeTree(&builder, root, 0, width)
	return builder.String()
}

func (s *Styles) writeTree(builder *strings.Builder, node syntax.SyntaxNode, depth, width int) {
	indent := strings.Repeat("  ", depth)
	kind := node.Kind().String()
	span := node.Span().String()

	line := indent + s.Kind.Render(kind)

	switch {
	case node.IsInner():
		builder.WriteString(line + " " + s.Span.Render(span) + "\n")
		for _, child := range node.Children() {
			s.writeTree(builder, child, depth+1, width)
		}
		return

	case node.IsErroneous():
		var message string
		if errs := node.Errors(); len(errs) > 0 {
			message = errs[0].Message
		}
		// indent + kind + quoted text + span + message, separated by spaces.
		used := runewidth.StringWidth(indent+kind+span+message) + 5
		builder.WriteString(line + " " + s.Text.Render(quoteFit(node.Text(), remaining(width, used))) + " " +
			s.Span.Render(span) + "  " + s.Error.Render(message) + "\n")

	default:
		used := runewidth.StringWidth(indent+kind+span) + 2
		builder.WriteString(line + " " + s.Text.Render(quoteFit(node.Text(), remaining(width, used))) + " " +
			s.Span.Render(span) + "\n")
	}
}

// remaining returns the cells left on a line of width after used cells,
// or 0 (no limit) when width is unlimited.
func remaining(width, used int) int {
	if width <= 0 {
		return 0
	}
	return max(width-used, minQuotedWidth)
}

// quoteFit quotes text, truncating the content so the quoted form fits in
// width display cells. width <= 0 never truncates.
func quoteFit(text string, width int) string {
	quoted := strconv.Quote(text)
	if width <= 0 || runewidth.StringWidth(quoted) <= width {
		return quoted
	}

	budget := max(width, minQuotedWidth) - 2
	inner := quoted[1 : len(quoted)-1]
	return `"` + runewidth.Truncate(inner, budget, ellipsis) + `"`
}
