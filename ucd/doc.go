/*
Package ucd loads the Unicode Character Database tables the derivation
engine consults: the character property index from UnicodeData.txt and
the block table from Blocks.txt. The file format is defined in
http://www.unicode.org/reports/tr44/; see
http://www.unicode.org/Public/UCD/latest/ucd/ for the files themselves.

Lookups are total: codepoints missing from the index yield a sentinel
record named "UNNAMED" with category Cn, absent from any block.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'compose.ucd'
func tracer() tracing.Trace {
	return tracing.Select("compose.ucd")
}
