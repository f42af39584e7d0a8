// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/curfmt/curfmt/pkg/filepos"
)

var utf8BOM = []byte("\xef\xbb\xbf")

type TokenizerOpts struct {
	AssociatedName string
	// Strict makes lines that cannot be classified an error instead of
	// silently dropping them.
	Strict bool
}

type Tokenizer struct {
	opts TokenizerOpts
}

func NewTokenizer(opts TokenizerOpts) *Tokenizer {
	return &Tokenizer{opts}
}

// Tokenize converts text into tokens. It never fails: unclassifiable lines
// produce no token.
func Tokenize(text string) []Token {
	tokens, err := NewTokenizer(TokenizerOpts{}).TokenizeBytes([]byte(text))
	if err != nil {
		panic(fmt.Sprintf("Unexpected error from non-strict tokenizer: %s", err))
	}
	return tokens
}

func (t *Tokenizer) TokenizeBytes(data []byte) ([]Token, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	lines := strings.Split(strings.ReplaceAll(string(data), "\r", ""), "\n")

	var (
		state     tokenizerState
		collector tokenCollector
		newTokens []Token
		dropped   bool
	)

	for i, text := range lines {
		line := t.newSourceLine(i+1, text)

		state, newTokens, dropped = state.step(line)
		collector.push(newTokens...)

		if dropped && t.opts.Strict {
			return nil, &TokenizeError{Msg: "Expected line to be a comment, list item or 'name: value' entry", Position: line.pos}
		}
	}

	collector.push(state.finish()...)

	return collector.tokens, nil
}

func (t *Tokenizer) newSourceLine(lineNum int, text string) sourceLine {
	pos := filepos.NewPositionInFile(lineNum, t.opts.AssociatedName)
	pos.SetLine(text)
	return sourceLine{
		text:    text,
		level:   indentLevel(text),
		content: text[leadingIndentChars(text):],
		pos:     pos,
	}
}

type sourceLine struct {
	text    string
	level   int
	content string // text without leading indentation characters
	pos     *filepos.Position
}

func (l sourceLine) isComment() bool { return strings.HasPrefix(l.text, "#") }

func (l sourceLine) isBlank() bool { return strings.TrimSpace(l.text) == "" }

type tokenizerMode int

const (
	modeNormal tokenizerMode = iota
	modeMultiLine
)

// tokenizerState is carried from one line to the next.
type tokenizerState struct {
	mode tokenizerMode

	// indent is the level of the last line tokenized in modeNormal
	indent int

	multiLineIndent int
	multiLineChunks []string
	multiLinePos    *filepos.Position
}

// step is the transition function of the tokenizer. It reports whether the
// line was dropped because it could not be classified.
func (s tokenizerState) step(line sourceLine) (tokenizerState, []Token, bool) {
	if line.isComment() {
		return s, []Token{{Type: TokenComment, Content: line.text[1:], Position: line.pos}}, false
	}

	if s.mode == modeMultiLine {
		switch {
		case line.isBlank():
			s.multiLineChunks = append(s.multiLineChunks, "")
			return s, nil, false

		case line.level < s.multiLineIndent:
			var valueTokens []Token
			s, valueTokens = s.closeMultiLine()
			next, lineTokens, dropped := s.stepNormal(line)
			return next, append(valueTokens, lineTokens...), dropped

		default:
			chunk := line.text[indentCharsForLevel(line.text, s.multiLineIndent):]
			s.multiLineChunks = append(s.multiLineChunks, strings.TrimRightFunc(chunk, unicode.IsSpace))
			return s, nil, false
		}
	}

	return s.stepNormal(line)
}

func (s tokenizerState) stepNormal(line sourceLine) (tokenizerState, []Token, bool) {
	var tokens []Token

	if line.level != s.indent {
		tokens = append(tokens, Token{Type: TokenIndentChange, Delta: line.level - s.indent, Position: line.pos})
	}
	s.indent = line.level

	switch {
	case strings.HasPrefix(line.content, "- "):
		tokens = append(tokens, Token{Type: TokenListItem, Value: strings.TrimSpace(line.content[1:]), Position: line.pos})

	case strings.Contains(line.content, ":"):
		sepIdx := strings.Index(line.content, ":")
		value := strings.TrimSpace(line.content[sepIdx+1:])

		tokens = append(tokens, Token{Type: TokenIdentifier, Name: line.content[:sepIdx], Position: line.pos})

		switch value {
		case "":
			// dangling identifier; parser treats it as an empty string
		case "|":
			s.mode = modeMultiLine
			s.multiLineIndent = line.level + 1
			s.multiLineChunks = nil
			s.multiLinePos = line.pos
		default:
			tokens = append(tokens, Token{Type: TokenValue, Value: value, Position: line.pos})
		}

	default:
		return s, tokens, !line.isBlank()
	}

	return s, tokens, false
}

// closeMultiLine joins collected chunks into a single value token.
// Trailing blank lines are not part of the value.
func (s tokenizerState) closeMultiLine() (tokenizerState, []Token) {
	if s.mode != modeMultiLine {
		return s, nil
	}

	chunks := s.multiLineChunks
	for len(chunks) > 0 && chunks[len(chunks)-1] == "" {
		chunks = chunks[:len(chunks)-1]
	}

	tok := Token{Type: TokenValue, Value: strings.Join(chunks, "\n"), Position: s.multiLinePos}

	s.mode = modeNormal
	s.multiLineIndent = 0
	s.multiLineChunks = nil
	s.multiLinePos = nil

	return s, []Token{tok}
}

func (s tokenizerState) finish() []Token {
	_, tokens := s.closeMultiLine()
	return tokens
}

// tokenCollector merges consecutive indentation changes into one token
// and drops the token when the merged delta is zero.
type tokenCollector struct {
	tokens []Token
}

func (c *tokenCollector) push(tokens ...Token) {
	for _, tok := range tokens {
		if tok.Type == TokenIndentChange && len(c.tokens) > 0 {
			last := &c.tokens[len(c.tokens)-1]
			if last.Type == TokenIndentChange {
				last.Delta += tok.Delta
				if last.Delta == 0 {
					c.tokens = c.tokens[:len(c.tokens)-1]
				}
				continue
			}
		}
		c.tokens = append(c.tokens, tok)
	}
}
