package norg

import (
	"github.com/abhinandh-s/vimwiki-syntax/pkg/rope"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

// Lexer performs a single-pass tokenization of norg markup.
// Every byte of the input ends up in exactly one token; whitespace and
// newlines are kept as tokens of their own.
type Lexer struct {
	text   *rope.Rope
	reader *rope.Reader

	// start is the byte offset of the token being scanned.
	start int

	// atLineStart is true before the first token and right after a
	// newline. It decides whether a run of blanks is indentation.
	atLineStart bool
}

// NewLexer creates a lexer over source.
func NewLexer(source string) *Lexer {
	return NewLexerFromRope(rope.New(source))
}

// NewLexerFromRope creates a lexer over an existing rope.
func NewLexerFromRope(text *rope.Rope) *Lexer {
	return &Lexer{
		text:        text,
		reader:      text.NewReader(),
		atLineStart: true,
	}
}

// Lex tokenizes source, returning every token including the final EOF.
func Lex(source string) []syntax.Token {
	return NewLexer(source).Lex()
}

// Lex scans until EOF and returns the full token sequence, EOF included.
func (l *Lexer) Lex() []syntax.Token {
	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	tokens := make([]syntax.Token, 0, l.text.Len()/initialCapacityDivisor+1)

	for {
		tok := l.Scan()
		tokens = append(tokens, tok)
		if tok.Kind == syntax.EOF {
			return tokens
		}
	}
}

// Scan returns the next token. Once the input is exhausted it returns an
// empty EOF token at the end of the input on every call.
func (l *Lexer) Scan() syntax.Token {
	l.start = l.reader.Offset()
	if l.reader.AtEnd() {
		return l.makeToken(syntax.EOF)
	}

	ch, _ := l.reader.Next()

	if kind, ok := delimiterKind(ch); ok {
		l.atLineStart = false
		return l.makeToken(kind)
	}

	switch ch {
	case '\n':
		l.atLineStart = true
		return l.makeToken(syntax.Newline)
	case ' ', '\t':
		l.consumeBlanks()
		kind := syntax.Whitespace
		if l.atLineStart {
			kind = syntax.IndentWhitespace
		}
		l.atLineStart = false
		return l.makeToken(kind)
	default:
		l.consumeText()
		l.atLineStart = false
		return l.makeToken(syntax.Text)
	}
}

// consumeBlanks consumes a run of spaces and tabs.
func (l *Lexer) consumeBlanks() {
	for !l.reader.AtEnd() {
		ch, _ := l.reader.Peek()
		if ch != ' ' && ch != '\t' {
			return
		}
		l.reader.Next()
	}
}

// consumeText consumes characters up to the next special character.
func (l *Lexer) consumeText() {
	for !l.reader.AtEnd() {
		ch, _ := l.reader.Peek()
		if isSpecial(ch) {
			return
		}
		l.reader.Next()
	}
}

func (l *Lexer) makeToken(kind syntax.SyntaxKind) syntax.Token {
	end := l.reader.Offset()
	return syntax.Token{
		Kind: kind,
		Text: l.text.Slice(l.start, end),
		Span: syntax.NewSpan(l.start, end),
	}
}

// delimiterKind maps a delimiter character to its token kind.
func delimiterKind(ch rune) (syntax.SyntaxKind, bool) {
	switch ch {
	case '*':
		return syntax.Asterisk, true
	case '/':
		return syntax.Slash, true
	case '_':
		return syntax.Underscore, true
	case '~':
		return syntax.Tilde, true
	case '-':
		return syntax.Hyphen, true
	case '@':
		return syntax.At, true
	default:
		return 0, false
	}
}

// isSpecial reports whether ch ends a text run.
func isSpecial(ch rune) bool {
	if _, ok := delimiterKind(ch); ok {
		return true
	}
	return ch == '\n' || ch == ' ' || ch == '\t'
}
