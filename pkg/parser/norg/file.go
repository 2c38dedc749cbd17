// Package norg implements the lexer and parser for norg-style markup.
package norg

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/rope"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

// ErrInvalidTokenStream is returned when the lexer output fails validation.
// It indicates a bug in the lexer, not a problem with the input.
var ErrInvalidTokenStream = errors.New("invalid token stream")

// ParseFile converts raw bytes into a fully populated FileSnapshot.
//
// The function:
//  1. Checks for context cancellation.
//  2. Builds a rope over the content.
//  3. Tokenizes the content and validates the token stream.
//  4. Parses the tokens into nodes.
//  5. Checks for cancellation again and assembles the snapshot.
//
// Returns nil and an error if the context is cancelled.
func ParseFile(ctx context.Context, path string, content []byte) (*syntax.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	text := rope.New(string(content))

	tokens := NewLexerFromRope(text).Lex()
	if !syntax.ValidateTokens(tokens, text.Len()) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidTokenStream)
	}

	nodes := NewParser(tokens).Parse()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	return syntax.NewFileSnapshot(path, text, tokens, nodes), nil
}
