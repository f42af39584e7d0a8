// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt

import (
	"github.com/curfmt/curfmt/pkg/orderedmap"
)

// ParseState holds the arguments of ParseObject.
type ParseState struct {
	// StartIndex is the index of the first token of the object.
	StartIndex int
}

// ParseResult describes where ParseObject stopped.
type ParseResult struct {
	// LastIndex is the index of the first token that was not consumed.
	LastIndex int
	// IndentOverflow is the number of enclosing objects that the dedent
	// which ended this object also closes.
	IndentOverflow int
}

// ParseBytes tokenizes and parses a document in one go.
func ParseBytes(data []byte, associatedName string) (*orderedmap.Map, error) {
	tokens, err := NewTokenizer(TokenizerOpts{AssociatedName: associatedName}).TokenizeBytes(data)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse builds the object described by the whole token list.
func Parse(tokens []Token) (*orderedmap.Map, error) {
	obj, _, err := ParseObject(tokens, ParseState{StartIndex: 0})
	return obj, err
}

// ParseObject parses a single object starting at state.StartIndex. Not all
// tokens are necessarily consumed: the object ends at the first dedent that
// is not part of a nested object.
func ParseObject(tokens []Token, state ParseState) (*orderedmap.Map, ParseResult, error) {
	if state.StartIndex < 0 {
		return nil, ParseResult{}, &ParseError{Msg: "Expected start index to not be negative", Index: state.StartIndex}
	}

	p := &objectParser{
		tokens:        tokens,
		index:         state.StartIndex,
		maxIterations: 1 + (len(tokens) - state.StartIndex),
		parsed:        orderedmap.NewMap(),
	}
	return p.parse()
}

type objectParser struct {
	tokens []Token
	index  int

	iterations    int
	maxIterations int

	parsed *orderedmap.Map
}

func (p *objectParser) parse() (*orderedmap.Map, ParseResult, error) {
	for p.index < len(p.tokens) {
		p.iterations++
		if p.iterations > p.maxIterations {
			return nil, ParseResult{}, p.newError("Maximum number of iterations was exceeded (parser bug)", nil)
		}

		tok := p.tokens[p.index]

		switch tok.Type {
		case TokenComment:
			p.index++

		case TokenValue, TokenListItem:
			return nil, ParseResult{}, p.newError("Unexpected token", &tok)

		case TokenIndentChange:
			if tok.Delta >= 0 {
				return nil, ParseResult{}, p.newError("Expected indentation change to be negative (only an identifier may start a nested object)", &tok)
			}
			p.index++
			return p.end(-tok.Delta - 1)

		case TokenIdentifier:
			ended, overflow, err := p.parseIdentifier(tok)
			if err != nil {
				return nil, ParseResult{}, err
			}
			if ended {
				return p.end(overflow)
			}

		default:
			return nil, ParseResult{}, p.newError("Unknown token type", &tok)
		}
	}

	return p.end(0)
}

// parseIdentifier assigns a value to the identifier at p.index. It reports
// whether the current object ended as a result, and with what overflow.
func (p *objectParser) parseIdentifier(ident Token) (bool, int, error) {
	nextIdx := p.indexOfNonComment(p.index + 1)
	if nextIdx < 0 {
		p.parsed.Set(ident.Name, "")
		p.index++
		return false, 0, nil
	}

	next := p.tokens[nextIdx]

	switch next.Type {
	case TokenValue:
		p.parsed.Set(ident.Name, next.Value)
		p.index = nextIdx + 1

	case TokenListItem:
		var items []string
		i := nextIdx
		for ; i < len(p.tokens) && p.tokens[i].Type == TokenListItem; i++ {
			items = append(items, p.tokens[i].Value)
		}
		p.parsed.Set(ident.Name, items)
		p.index = i

	case TokenIndentChange:
		switch {
		case next.Delta == 1:
			child, result, err := ParseObject(p.tokens, ParseState{StartIndex: nextIdx + 1})
			if err != nil {
				return false, 0, err
			}
			p.parsed.Set(ident.Name, child)
			p.index = result.LastIndex

			if result.IndentOverflow > 0 {
				return true, result.IndentOverflow - 1, nil
			}

		case next.Delta < 0:
			p.parsed.Set(ident.Name, "")
			p.index = nextIdx + 1
			return true, -next.Delta - 1, nil

		case next.Delta == 0:
			return false, 0, p.newError("Indentation change after identifier has a delta of 0", &next)

		default:
			return false, 0, p.newError("Indentation change after identifier is more than one level", &next)
		}

	default:
		p.parsed.Set(ident.Name, "")
		p.index++
	}

	return false, 0, nil
}

func (p *objectParser) end(overflow int) (*orderedmap.Map, ParseResult, error) {
	return p.parsed, ParseResult{LastIndex: p.index, IndentOverflow: overflow}, nil
}

func (p *objectParser) indexOfNonComment(start int) int {
	for i := start; i < len(p.tokens); i++ {
		if p.tokens[i].Type != TokenComment {
			return i
		}
	}
	return -1
}

func (p *objectParser) newError(msg string, tok *Token) *ParseError {
	return &ParseError{
		Msg:           msg,
		Index:         p.index,
		Iterations:    p.iterations,
		MaxIterations: p.maxIterations,
		Token:         tok,
	}
}
