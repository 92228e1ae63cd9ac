/*
Package compose derives compose-key sequences from Unicode character data.

Content

Compose-key input methods (XCompose, WinCompose, …) map sequences of
keystrokes to characters: pressing ⎄ " a produces 'ä'. Authoring such
sequence tables by hand does not scale to the size of Unicode. This
package computes candidate sequences for every character of a codepoint
range by combining a small set of hand-authored base definitions with
relations mined from the Unicode Character Database: canonical
decomposition ('ä' = 'a' + combining diaeresis), compatibility
decomposition (superscripts, circled letters, …), custom diacritic
substitution tables and ligature expansion.

The heart of the package is the Deriver, a recursive, memoized resolver
from characters to candidate key-sequences. Sequences are plain strings
of symbols (type Keys); a small escaping scheme lets variable-length
sub-sequences be embedded unambiguously inside larger ones.

Typical Usage

Clients load the character property index and a base definition table,
then resolve characters or project a whole codepoint range:

  props, _ := ucd.Load(r)                     // UnicodeData.txt
  table, _ := deffile.Read(f, props)          // hand-authored definitions
  deriver := compose.NewDeriver(props, table.Definitions, compose.DefaultConfig())
  seqs := deriver.Resolve('ä')                // ⇒ `"a` (and possibly more)

Sub-packages deal with the surrounding plumbing: ucd loads the Unicode
character property and block tables, deffile reads and writes the
definition text format, rules collects the final rule list and checks it
for duplicate and shadowing sequences, and xcompose serializes rules
into Compose file syntax.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package compose

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'compose'
func tracer() tracing.Trace {
	return tracing.Select("compose")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
