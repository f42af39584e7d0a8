// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt_test

import (
	"strings"
	"testing"

	"github.com/curfmt/curfmt/pkg/cfmt"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokenizerExamples{
		{Description: "empty document", Data: "", Expected: nil},
		{Description: "scalar",
			Data: "Title: Example Game",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("Title"),
				cfmt.NewValueToken("Example Game"),
			},
		},
		{Description: "value is split at first colon only",
			Data: "Source: http://example.com:8080/",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("Source"),
				cfmt.NewValueToken("http://example.com:8080/"),
			},
		},
		{Description: "dangling identifier produces no value",
			Data:     "Title:",
			Expected: []cfmt.Token{cfmt.NewIdentifierToken("Title")},
		},
		{Description: "list items",
			Data: "Genres:\n- Action\n-   Adventure  ",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("Genres"),
				cfmt.NewListItemToken("Action"),
				cfmt.NewListItemToken("Adventure"),
			},
		},
		{Description: "comments only at the start of a line",
			Data: "# comment\ntest: # not a comment",
			Expected: []cfmt.Token{
				cfmt.NewCommentToken(" comment"),
				cfmt.NewIdentifierToken("test"),
				cfmt.NewValueToken("# not a comment"),
			},
		},
		{Description: "nested objects with multi level dedent",
			Data: "A:\n    B:\n        C: 1\nD: 2",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("A"),
				cfmt.NewIndentChangeToken(1),
				cfmt.NewIdentifierToken("B"),
				cfmt.NewIndentChangeToken(1),
				cfmt.NewIdentifierToken("C"),
				cfmt.NewValueToken("1"),
				cfmt.NewIndentChangeToken(-2),
				cfmt.NewIdentifierToken("D"),
				cfmt.NewValueToken("2"),
			},
		},
		{Description: "indent changes that cancel out are removed",
			Data: "A:\n    B: 1\n\n    C: 2",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("A"),
				cfmt.NewIndentChangeToken(1),
				cfmt.NewIdentifierToken("B"),
				cfmt.NewValueToken("1"),
				cfmt.NewIdentifierToken("C"),
				cfmt.NewValueToken("2"),
			},
		},
		{Description: "comments do not change indentation",
			Data: "A:\n    B: 1\n# comment\n    C: 2",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("A"),
				cfmt.NewIndentChangeToken(1),
				cfmt.NewIdentifierToken("B"),
				cfmt.NewValueToken("1"),
				cfmt.NewCommentToken(" comment"),
				cfmt.NewIdentifierToken("C"),
				cfmt.NewValueToken("2"),
			},
		},
		{Description: "tab is worth four spaces",
			Data: "a:\n\tb:\n\t    c:",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("a"),
				cfmt.NewIndentChangeToken(1),
				cfmt.NewIdentifierToken("b"),
				cfmt.NewIndentChangeToken(1),
				cfmt.NewIdentifierToken("c"),
			},
		},
		{Description: "partial indentation rounds down",
			Data: "a:\n  b: 1\n       c: 2",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("a"),
				cfmt.NewIdentifierToken("b"),
				cfmt.NewValueToken("1"),
				cfmt.NewIndentChangeToken(1),
				cfmt.NewIdentifierToken("c"),
				cfmt.NewValueToken("2"),
			},
		},
		{Description: "unclassifiable lines are dropped",
			Data: "just some text\nTitle: x\n-not a list item",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("Title"),
				cfmt.NewValueToken("x"),
			},
		},
		{Description: "multi-line value",
			Data: "Notes: |\n    Line one.   \n    Line two.\nTitle: x",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("Notes"),
				cfmt.NewValueToken("Line one.\nLine two."),
				cfmt.NewIdentifierToken("Title"),
				cfmt.NewValueToken("x"),
			},
		},
		{Description: "multi-line value keeps deeper indentation",
			Data: "var: |\n    1\n\t\t\t2\n    \t    3\nvar2: abc",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("var"),
				cfmt.NewValueToken("1\n\t\t2\n\t    3"),
				cfmt.NewIdentifierToken("var2"),
				cfmt.NewValueToken("abc"),
			},
		},
		{Description: "multi-line value keeps embedded blank lines and drops trailing ones",
			Data: "Notes: |\n    a\n\n    b\n\n",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("Notes"),
				cfmt.NewValueToken("a\n\nb"),
			},
		},
		{Description: "multi-line value at end of input",
			Data: "Notes: |",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("Notes"),
				cfmt.NewValueToken(""),
			},
		},
		{Description: "multi-line value does not affect indentation",
			Data: "A:\n    N: |\n        x\n            y\nB: 1",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("A"),
				cfmt.NewIndentChangeToken(1),
				cfmt.NewIdentifierToken("N"),
				cfmt.NewValueToken("x\n    y"),
				cfmt.NewIndentChangeToken(-1),
				cfmt.NewIdentifierToken("B"),
				cfmt.NewValueToken("1"),
			},
		},
		{Description: "comment inside multi-line value",
			Data: "N: |\n    a\n# c\n    b",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("N"),
				cfmt.NewCommentToken(" c"),
				cfmt.NewValueToken("a\nb"),
			},
		},
		{Description: "carriage returns and BOM are ignored",
			Data: "\xef\xbb\xbfA: 1\r\nB: 2\r\n",
			Expected: []cfmt.Token{
				cfmt.NewIdentifierToken("A"),
				cfmt.NewValueToken("1"),
				cfmt.NewIdentifierToken("B"),
				cfmt.NewValueToken("2"),
			},
		},
	}.Check(t)
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := cfmt.NewTokenizer(cfmt.TokenizerOpts{AssociatedName: "meta.txt"}).TokenizeBytes([]byte("A:\n    B: |\n        x\nC: 1"))
	require.NoError(t, err)

	expected := `   1: IDENTIFIER{name="A"}
   2: INDENT_CHANGE{delta=1}
   2: IDENTIFIER{name="B"}
   2: VALUE{value="x"}
   4: INDENT_CHANGE{delta=-1}
   4: IDENTIFIER{name="C"}
   4: VALUE{value="1"}
`
	assertEqual(t, cfmt.NewPrinter(nil).PrintStr(tokens), expected)
	require.Equal(t, "line meta.txt:4", tokens[5].Position.AsString())
	require.Equal(t, "C: 1", tokens[5].Position.GetLine())
}

func TestTokenizeStrict(t *testing.T) {
	tokenizer := cfmt.NewTokenizer(cfmt.TokenizerOpts{AssociatedName: "meta.txt", Strict: true})

	_, err := tokenizer.TokenizeBytes([]byte("Title: x\n\n   \n# comment\nDeveloper: y"))
	require.NoError(t, err)

	_, err = tokenizer.TokenizeBytes([]byte("Title: x\nnot an entry"))
	require.EqualError(t, err, "Expected line to be a comment, list item or 'name: value' entry (line meta.txt:2): 'not an entry'")

	var tokErr *cfmt.TokenizeError
	require.ErrorAs(t, err, &tokErr)
	require.Equal(t, 2, tokErr.Position.LineNum())
}

func TestTokenizeNeverEmitsZeroOrAdjacentIndentChanges(t *testing.T) {
	data := "A:\n    B:\n\n        C: 1\n    \n  D: 2\n\t\tE:\n\nF:"

	tokens := cfmt.Tokenize(data)
	for i, tok := range tokens {
		if tok.Type != cfmt.TokenIndentChange {
			continue
		}
		require.NotZero(t, tok.Delta, "token %d", i)
		if i > 0 {
			require.NotEqual(t, cfmt.TokenIndentChange, tokens[i-1].Type, "token %d", i)
		}
	}
}

func TestTokenString(t *testing.T) {
	require.Equal(t, `COMMENT{content=" c"}`, cfmt.NewCommentToken(" c").String())
	require.Equal(t, `IDENTIFIER{name="Title"}`, cfmt.NewIdentifierToken("Title").String())
	require.Equal(t, `INDENT_CHANGE{delta=-2}`, cfmt.NewIndentChangeToken(-2).String())
	require.Equal(t, `LIST_ITEM{value="a"}`, cfmt.NewListItemToken("a").String())
	require.Equal(t, `VALUE{value="a\nb"}`, cfmt.NewValueToken("a\nb").String())
	require.Equal(t, `UNKNOWN{}`, cfmt.Token{Type: cfmt.TokenType(42)}.String())
}

type tokenizerExamples []tokenizerExample

func (exs tokenizerExamples) Check(t *testing.T) {
	for _, ex := range exs {
		t.Run(ex.Description, func(t *testing.T) {
			ex.Check(t)
		})
	}
}

type tokenizerExample struct {
	Description string
	Data        string
	Expected    []cfmt.Token
}

func (ex tokenizerExample) Check(t *testing.T) {
	printer := cfmt.NewPrinterWithOpts(nil, cfmt.PrinterOpts{ExcludePositions: true})

	tokens := cfmt.Tokenize(ex.Data)

	assertEqual(t, printer.PrintStr(tokens), printer.PrintStr(ex.Expected))
}

func assertEqual(t *testing.T, actualStr string, expectedStr string) {
	t.Helper()
	if actualStr != expectedStr {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n", difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(actualStr, "\n")))
	}
}
