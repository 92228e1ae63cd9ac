/*
Package deffile reads and writes the line-oriented base-definition
format. Each non-blank, non-comment line maps characters to a
key-sequence:

	Ææ::ae      // case pair: Æ::AE plus æ::ae
	′::prime    // single-character definition
	kʟ̝̊::kl     // macro (multi-character output)
	◌̈::u"      // leading ◌ marks a combining character
	…::␣.␣      // ␣ stands for a literal space in the sequence

Comments start with //. A 2-character left side whose second character
is the registered lowercase of the first is a case pair: the author
supplies one sequence and both cased forms are derived from it.

WriteSorted regenerates the same format from loaded tables, ordered by
codepoint, grouped by Unicode block and with symmetric case pairs
compacted back into pair lines.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package deffile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/compose"
	"github.com/npillmayer/compose/ucd"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'compose.deffile'
func tracer() tracing.Trace {
	return tracing.Select("compose.deffile")
}

// Table holds the loaded base definitions and macros. Definitions is the
// seed input for a compose.Deriver.
type Table struct {
	Definitions map[rune][]compose.Keys
	Macros      []compose.Macro
}

// Read parses a definition file. The property index is needed to
// recognize case-pair lines. A malformed line is a fatal parse error.
func Read(r io.Reader, props *ucd.Table) (*Table, error) {
	t := &Table{Definitions: make(map[rune][]compose.Keys)}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "//") {
			continue
		}
		parts := strings.SplitN(line, "::", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("definitions line %d: expected 'chars::sequence', got %q",
				lineno, line)
		}
		chars := []rune(parts[0])
		if len(chars) > 1 && chars[0] == '◌' {
			chars = chars[1:]
		}
		seq := compose.Keys(strings.ReplaceAll(parts[1], "␣", " "))
		switch {
		case len(chars) == 2 && props.Get(chars[0]).Lower == chars[1]:
			t.Definitions[chars[0]] = append(t.Definitions[chars[0]], seq.ToUpper())
			t.Definitions[chars[1]] = append(t.Definitions[chars[1]], seq.ToLower())
		case len(chars) > 1:
			t.Macros = append(t.Macros, compose.Macro{Text: string(chars), Sequence: seq})
		default:
			t.Definitions[chars[0]] = append(t.Definitions[chars[0]], seq)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	tracer().Infof("read %d definitions, %d macros", len(t.Definitions), len(t.Macros))
	return t, nil
}
