package compose

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// A CustomDiacritic entry substitutes for precomposed characters that are
// not reachable through normalization. Chars lists the precomposed
// characters; Bases holds, index-aligned with the runes of Chars, the
// decomposition text the diacritic is applied to.
type CustomDiacritic struct {
	ID    DiacriticID
	Chars string
	Bases []string
}

// Config bundles the authored tables steering derivation.
type Config struct {
	Registry  Registry          // diacritic id → key prefix
	Custom    []CustomDiacritic // substitutions outside the UCD relations
	Ligatures map[rune][]rune   // character → ordered component characters
	Overrides *unicode.RangeTable
}

// asciiLiteral, when registered, makes every printable ASCII symbol
// reachable as prefix + literal, keeping it out of the compose engine's
// own syntax.
var asciiLiteral = Custom("ascii")

// Characters which defeat the automatic derivation steps; for these the
// engine keeps only seed definitions and custom diacritic substitutions.
var defaultOverrides = rangetable.New([]rune(
	"Å" + "©®🄫🄬" + "ºªᵌ" + "άέήίόύώΆΈΉΐΊΰΎΌΏ΅" + "﹉﹊﹋﹌﹍﹎﹏" + "︴🅋",
)...)

// DefaultConfig returns the stock tables: a registry of common combining
// marks and compatibility tags, ring/ordinal substitutions and the Latin
// f-ligatures. Clients typically extend the returned tables before
// constructing a Deriver.
func DefaultConfig() Config {
	return Config{
		Registry: Registry{
			Mark('́').String(): "'",  // acute
			Mark('̀').String(): "`",  // grave
			Mark('̈').String(): "\"", // diaeresis
			Mark('̂').String(): "^",  // circumflex
			Mark('̃').String(): "~",  // tilde
			Mark('̄').String(): "_",  // macron
			Mark('̆').String(): ")",  // breve
			Mark('̇').String(): ".",  // dot above
			Mark('̧').String(): ",",  // cedilla
			Mark('̨').String(): ";",  // ogonek
			Mark('̌').String(): "<",  // caron
			Mark('̸').String(): "/",  // long solidus overlay

			CompatTag("super").String():    "↑",
			CompatTag("sub").String():      "↓",
			CompatTag("circle").String():   "()",
			CompatTag("fraction").String(): "%",
			CompatTag("small").String():    "-",

			Custom("parens").String():  "(",
			Custom("ring").String():    "*",
			Custom("ordinal").String(): ":",
			asciiLiteral.String():      "#",
		},
		Custom: []CustomDiacritic{
			{ID: Custom("ring"), Chars: "Åå", Bases: []string{"A", "a"}},
			{ID: Custom("ordinal"), Chars: "ºª", Bases: []string{"o", "a"}},
		},
		Ligatures: map[rune][]rune{
			'ﬁ': {'f', 'i'},
			'ﬂ': {'f', 'l'},
			'ﬀ': {'f', 'f'},
			'ﬃ': {'f', 'f', 'i'},
			'ﬄ': {'f', 'f', 'l'},
			'Ĳ': {'I', 'J'},
			'ĳ': {'i', 'j'},
		},
		Overrides: defaultOverrides,
	}
}
