package syntax

// SyntaxKind tags tokens and tree nodes.
//
//nolint:revive // SyntaxKind reads better than Kind at call sites outside the package.
type SyntaxKind uint8

// Token and node kinds. Delimiter and trivia kinds come from the lexer;
// structural kinds are only ever produced by the parser.
const (
	// Delimiters, one character each.
	Asterisk   SyntaxKind = iota // '*'
	Slash                        // '/'
	Underscore                   // '_'
	Tilde                        // '~'
	Hyphen                       // '-'
	At                           // '@'

	// Trivia, preserved verbatim.
	Whitespace       // spaces and tabs between words
	IndentWhitespace // spaces and tabs at the start of a line
	Newline          // '\n'

	// Content and terminals.
	Text
	EOF
	Error

	// Structural kinds.
	Document
	Heading
	ListMarker
	Bold
	Italic
	Underline
	Strikethrough
	ListItem

	kindCount
)

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	kindTags = [kindCount]string{
		Asterisk:         "ASTERISK",
		Slash:            "SLASH",
		Underscore:       "UNDERSCORE",
		Tilde:            "TILDE",
		Hyphen:           "HYPHEN",
		At:               "AT",
		Whitespace:       "WHITESPACE",
		IndentWhitespace: "INDENT_WHITESPACE",
		Newline:          "NEWLINE",
		Text:             "TEXT",
		EOF:              "EOF",
		Error:            "ERROR",
		Document:         "DOCUMENT",
		Heading:          "HEADING",
		ListMarker:       "LIST_MARKER",
		Bold:             "BOLD",
		Italic:           "ITALIC",
		Underline:        "UNDERLINED",
		Strikethrough:    "STRIKETHROUGH",
		ListItem:         "LIST_ITEM",
	}

	kindNames = [kindCount]string{
		Asterisk:         "asterisk",
		Slash:            "slash",
		Underscore:       "underscore",
		Tilde:            "tilde",
		Hyphen:           "hyphen",
		At:               "at sign",
		Whitespace:       "whitespace",
		IndentWhitespace: "indentation",
		Newline:          "newline",
		Text:             "text",
		EOF:              "end of file",
		Error:            "syntax error",
		Document:         "document",
		Heading:          "heading",
		ListMarker:       "list marker",
		Bold:             "bold",
		Italic:           "italic",
		Underline:        "underlined",
		Strikethrough:    "strikethrough",
		ListItem:         "list",
	}
)

// String returns the upper-case tag used in token dumps, e.g. "SLASH".
func (k SyntaxKind) String() string {
	if k >= kindCount {
		return "UNKNOWN"
	}
	return kindTags[k]
}

// Name returns a human-readable name for diagnostics, e.g. "italic".
func (k SyntaxKind) Name() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// IsDelimiter reports whether k is a single-character delimiter kind.
func (k SyntaxKind) IsDelimiter() bool {
	switch k {
	case Asterisk, Slash, Underscore, Tilde, Hyphen, At:
		return true
	default:
		return false
	}
}

// IsTrivia reports whether k is whitespace or a newline.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case Whitespace, IndentWhitespace, Newline:
		return true
	default:
		return false
	}
}

// IsStructural reports whether k only appears on parser-produced nodes.
func (k SyntaxKind) IsStructural() bool {
	switch k {
	case Document, Heading, ListMarker, Bold, Italic, Underline, Strikethrough, ListItem:
		return true
	default:
		return false
	}
}

// IsPaired reports whether k is an inline span enclosed by two identical
// delimiters.
func (k SyntaxKind) IsPaired() bool {
	switch k {
	case Bold, Italic, Underline, Strikethrough, ListItem:
		return true
	default:
		return false
	}
}

// PairedKind returns the structural kind a delimiter opens, e.g. Slash ->
// Italic. The second result is false for kinds that do not pair.
func (k SyntaxKind) PairedKind() (SyntaxKind, bool) {
	switch k {
	case Asterisk:
		return Bold, true
	case Slash:
		return Italic, true
	case Underscore:
		return Underline, true
	case Tilde:
		return ListItem, true
	case Hyphen:
		return Strikethrough, true
	default:
		return k, false
	}
}
