/*
Package xcompose serializes generated rules into the Compose file
syntax understood by XCompose and WinCompose:

	<Multi_key><d><e> : "∂" # PARTIAL DIFFERENTIAL

Sequence symbols are mapped to named key tokens by a fixed substitution
table (see https://github.com/samhocevar/wincompose for the key names);
symbols without an entry serialize as themselves.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package xcompose

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/compose"
)

// keyNames substitutes sequence symbols by key names at serialization
// time.
var keyNames = map[rune]string{
	'⎄': "Multi_key",
	'←': "Left", '↑': "Up", '→': "Right", '↓': "Down",
	'⇱': "Home", '⇲': "End", '⌫': "Backspace", '⌦': "Delete",
	'↹': "Tab", '↵': "Return",
	' ': "space", ':': "colon", '<': "less", '>': "greater",
}

// A Writer emits Compose file lines.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w for Compose output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader emits a generation comment and the standard include of
// the system Compose file for the given locale.
func (xw *Writer) WriteHeader(locale string) error {
	fmt.Fprintf(xw.w, "# this file was automatically generated (locale %s)\n", locale)
	fmt.Fprintf(xw.w, "include \"%%L\"\n\n")
	return xw.w.Flush()
}

// WriteRule emits one rule line. Every sequence starts with the compose
// key itself; the produced text is quoted, with '"' written in its hex
// form (backslash-quoting is not read back reliably).
func (xw *Writer) WriteRule(keys compose.Keys, text, comment string) error {
	xw.w.WriteString("<Multi_key>")
	for _, symbol := range string(keys) {
		name, ok := keyNames[symbol]
		if !ok {
			name = string(symbol)
		}
		xw.w.WriteByte('<')
		xw.w.WriteString(name)
		xw.w.WriteByte('>')
	}
	quoted := strings.ReplaceAll(text, `"`, `\0x0022`)
	_, err := fmt.Fprintf(xw.w, " : \"%s\" #%s\n", quoted, comment)
	return err
}

// Flush writes any buffered output through to the underlying writer.
func (xw *Writer) Flush() error {
	return xw.w.Flush()
}
