package compose

import "github.com/npillmayer/compose/ucd"

// A Macro maps a sequence to a run of text (length ≥ 2) instead of a
// single character. Macros live in their own namespace, independent of
// per-character definitions.
type Macro struct {
	Text     string
	Sequence Keys
}

// Project drives derivation across every codepoint in [0, maxRune] that
// has a name in the property index and streams one (sequence, produced
// text, comment) triple per candidate to emit. Unnamed codepoints never
// enter derivation. The comment is the character name.
//
// Running Project twice over unchanged tables produces the identical
// rule stream.
func (d *Deriver) Project(maxRune rune, emit func(keys Keys, text string, comment string)) {
	for cp := rune(0); cp <= maxRune; cp++ {
		info := d.props.Get(cp)
		if info.Name == ucd.Unnamed {
			continue
		}
		for _, keys := range d.Candidates(cp) {
			emit(keys, string(cp), info.Name)
		}
	}
}

// ProjectMacros streams the macro list to emit, in order.
func ProjectMacros(macros []Macro, emit func(keys Keys, text string, comment string)) {
	for _, m := range macros {
		emit(m.Sequence, m.Text, "macro")
	}
}
