package compose

import (
	"strings"
	"unicode/utf8"
)

// Keys is an ordered sequence of keystroke symbols, stored as a string of
// runes. A symbol is either a core symbol (a letter usable standalone),
// a diacritic prefix symbol, or one of the structural marker symbols
// below. Equality and ordering are plain string (i.e. lexicographic)
// comparison over the symbols.
type Keys string

// Structural marker symbols. They must stay distinct from every core and
// diacritic-prefix symbol, so that a finished sequence can be classified
// as atomic / escaped single / escaped group / ligature group from its
// leading symbol alone.
const (
	escapeMark   = ' ' // fences one multi-symbol argument
	groupOpen    = '↹' // opens a multi-argument group…
	groupClose   = '↵' // …closed by this (also closes ligature groups)
	ligatureMark = '&' // opens a ligature group
)

// Combining is the placeholder base a bare combining mark is typed onto.
const Combining = Keys("?")

// IsCoreSymbol reports whether r is a core symbol, i.e. a key usable
// standalone to produce itself. Core symbols can carry diacritics
// ("a ⇒ ä) but are not emitted as standalone sequences.
func IsCoreSymbol(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Len returns the number of symbols in the sequence.
func (k Keys) Len() int {
	return utf8.RuneCountInString(string(k))
}

func (k Keys) firstSymbol() rune {
	r, _ := utf8.DecodeRuneInString(string(k))
	return r
}

// ToUpper returns the sequence with all symbols uppercased.
func (k Keys) ToUpper() Keys {
	return Keys(strings.ToUpper(string(k)))
}

// ToLower returns the sequence with all symbols lowercased.
func (k Keys) ToLower() Keys {
	return Keys(strings.ToLower(string(k)))
}

// EscapeOne fences a single sequence for embedding inside a larger one.
// A length-1 sequence, or one starting with a non-core symbol, is
// self-delimiting and returned unchanged. Only a multi-symbol sequence
// beginning with a core symbol is ambiguous with "core symbol followed
// by more of the outer sequence" and gets a leading escape marker.
//
// EscapeOne is idempotent: an escaped sequence starts with the escape
// marker, which is not a core symbol.
func EscapeOne(seq Keys) Keys {
	if seq.Len() > 1 && IsCoreSymbol(seq.firstSymbol()) {
		return Keys(string(escapeMark) + string(seq))
	}
	return seq
}

// Escape wraps one or more sequences into a single unambiguous unit.
// A single sequence is fenced with EscapeOne; several sequences are each
// fenced, concatenated and wrapped into a group marker pair.
//
// Calling Escape with no arguments is a contract violation and panics.
func Escape(seqs ...Keys) Keys {
	assert(len(seqs) > 0, "escaping zero sequences")
	if len(seqs) == 1 {
		return EscapeOne(seqs[0])
	}
	var b strings.Builder
	b.WriteRune(groupOpen)
	for _, seq := range seqs {
		b.WriteString(string(EscapeOne(seq)))
	}
	b.WriteRune(groupClose)
	return Keys(b.String())
}

// ligatureGroup wraps the concatenation of already-escaped component
// sequences into a ligature group.
func ligatureGroup(parts []Keys) Keys {
	var b strings.Builder
	b.WriteRune(ligatureMark)
	for _, p := range parts {
		b.WriteString(string(p))
	}
	b.WriteRune(groupClose)
	return Keys(b.String())
}
