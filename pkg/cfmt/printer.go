// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/curfmt/curfmt/pkg/orderedmap"
)

// Printer produces deterministic diagnostic dumps of tokens and objects.
type Printer struct {
	writer io.Writer
	opts   PrinterOpts
}

type PrinterOpts struct {
	ExcludePositions bool
}

func NewPrinter(writer io.Writer) Printer {
	return Printer{writer, PrinterOpts{}}
}

func NewPrinterWithOpts(writer io.Writer, opts PrinterOpts) Printer {
	return Printer{writer, opts}
}

func (p Printer) Print(val interface{}) {
	fmt.Fprintf(p.writer, "%s", p.PrintStr(val))
}

// PrintStr accepts []Token, Token, *orderedmap.Map, []string or string.
func (p Printer) PrintStr(val interface{}) string {
	buf := new(bytes.Buffer)
	p.print(val, "", buf)
	return buf.String()
}

func (p Printer) print(val interface{}, indent string, writer io.Writer) {
	const indentLvl = "    "

	switch typedVal := val.(type) {
	case []Token:
		for _, tok := range typedVal {
			p.print(tok, indent, writer)
		}

	case Token:
		fmt.Fprintf(writer, "%s%s%s\n", indent, p.lineStr(typedVal), typedVal)

	case *orderedmap.Map:
		fmt.Fprintf(writer, "%sobj\n", indent)
		typedVal.Iterate(func(k string, v interface{}) {
			fmt.Fprintf(writer, "%skey=%q\n", indent+indentLvl, k)
			p.print(v, indent+indentLvl+indentLvl, writer)
		})

	case []string:
		fmt.Fprintf(writer, "%slist\n", indent)
		for i, item := range typedVal {
			fmt.Fprintf(writer, "%sidx=%d %q\n", indent+indentLvl, i, item)
		}

	case string:
		fmt.Fprintf(writer, "%s%q\n", indent, typedVal)

	default:
		fmt.Fprintf(writer, "%s%v\n", indent, typedVal)
	}
}

func (p Printer) lineStr(tok Token) string {
	if p.opts.ExcludePositions {
		return ""
	}
	return tok.Position.As4DigitString() + ": "
}
