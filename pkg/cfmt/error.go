// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt

import (
	"fmt"
	"strings"

	"github.com/curfmt/curfmt/pkg/filepos"
)

// ParseError is a structural problem found while parsing tokens.
// Parsing does not recover from it.
type ParseError struct {
	Msg           string
	Index         int
	Iterations    int
	MaxIterations int
	Token         *Token
}

func (e *ParseError) Error() string {
	var sb strings.Builder

	sb.WriteString("Failed to parse object: " + e.Msg + "\n")
	sb.WriteString("State:\n")
	sb.WriteString(fmt.Sprintf("  Token Index: %d\n", e.Index))
	sb.WriteString(fmt.Sprintf("  Iterations: %d / %d", e.Iterations, e.MaxIterations))

	if e.Token != nil {
		sb.WriteString("\nToken:\n")
		sb.WriteString(fmt.Sprintf("  %s (%s)", e.Token, e.Token.Position.AsString()))
		if line := e.Token.Position.GetLine(); len(line) > 0 {
			sb.WriteString(fmt.Sprintf("\n  > %s", line))
		}
	}

	return sb.String()
}

// TokenizeError is only returned by a strict Tokenizer.
type TokenizeError struct {
	Msg      string
	Position *filepos.Position
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%s (%s): '%s'", e.Msg, e.Position.AsString(), e.Position.GetLine())
}
