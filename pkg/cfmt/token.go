// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt

import (
	"fmt"

	"github.com/curfmt/curfmt/pkg/filepos"
)

type TokenType int

const (
	// TokenComment is a whole line starting with '#'.
	TokenComment TokenType = iota
	// TokenIdentifier is the part of a "name: value" line before the first ':'.
	TokenIdentifier
	// TokenIndentChange is a non-zero change of the indentation level.
	TokenIndentChange
	// TokenListItem is a "- value" line.
	TokenListItem
	// TokenValue is an inline or multi-line string value.
	TokenValue
)

func (t TokenType) String() string {
	switch t {
	case TokenComment:
		return "COMMENT"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenIndentChange:
		return "INDENT_CHANGE"
	case TokenListItem:
		return "LIST_ITEM"
	case TokenValue:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}

// Token is a tagged variant; only the field matching Type is meaningful.
type Token struct {
	Type TokenType

	Content string // TokenComment
	Name    string // TokenIdentifier
	Delta   int    // TokenIndentChange
	Value   string // TokenListItem, TokenValue

	Position *filepos.Position
}

func NewCommentToken(content string) Token {
	return Token{Type: TokenComment, Content: content, Position: filepos.NewUnknownPosition()}
}

func NewIdentifierToken(name string) Token {
	return Token{Type: TokenIdentifier, Name: name, Position: filepos.NewUnknownPosition()}
}

func NewIndentChangeToken(delta int) Token {
	return Token{Type: TokenIndentChange, Delta: delta, Position: filepos.NewUnknownPosition()}
}

func NewListItemToken(value string) Token {
	return Token{Type: TokenListItem, Value: value, Position: filepos.NewUnknownPosition()}
}

func NewValueToken(value string) Token {
	return Token{Type: TokenValue, Value: value, Position: filepos.NewUnknownPosition()}
}

// String renders the token deterministically (eg `IDENTIFIER{name="Title"}`).
// Positions are not included.
func (t Token) String() string {
	switch t.Type {
	case TokenComment:
		return fmt.Sprintf("%s{content=%q}", t.Type, t.Content)
	case TokenIdentifier:
		return fmt.Sprintf("%s{name=%q}", t.Type, t.Name)
	case TokenIndentChange:
		return fmt.Sprintf("%s{delta=%d}", t.Type, t.Delta)
	case TokenListItem, TokenValue:
		return fmt.Sprintf("%s{value=%q}", t.Type, t.Value)
	default:
		return fmt.Sprintf("%s{}", t.Type)
	}
}
