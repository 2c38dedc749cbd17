package syntax

import "fmt"

// Token is one lexical unit: a kind, its literal text and its byte span.
// Tokens are produced by the lexer and consumed by the parser; they are not
// kept in the final tree.
type Token struct {
	Kind SyntaxKind
	Text string
	Span Span
}

// String formats the token as `KIND "text" [ span: s..e ]`.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Text, t.Span)
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.Span.Len()
}

// ValidateTokens checks that a token stream is well formed:
//   - spans are contiguous and non-overlapping and start at 0;
//   - every token's text has the length of its span;
//   - the stream ends with exactly one EOF token at contentLen.
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return false
	}

	last := tokens[len(tokens)-1]
	if last.Kind != EOF || last.Span != (Span{Start: contentLen, End: contentLen}) {
		return false
	}

	offset := 0
	for i, tok := range tokens {
		if tok.Span.Start != offset || len(tok.Text) != tok.Span.Len() {
			return false
		}
		if tok.Kind == EOF && i != len(tokens)-1 {
			return false
		}
		offset = tok.Span.End
	}

	return offset == contentLen
}
