package ucd

import (
	"fmt"
	"io"
	"strings"
)

// Unnamed is the name of the sentinel record returned for codepoints
// missing from the property index.
const Unnamed = "UNNAMED"

// CharInfo holds the character properties the derivation engine uses.
// Decomposition is the raw field 5 of UnicodeData.txt, e.g.
// "<super> 0031" or "0055 0308". Upper and Lower are 0 when the
// character has no simple case mapping.
type CharInfo struct {
	Name          string
	Category      string
	Decomposition string
	Upper         rune
	Lower         rune
}

var sentinel = CharInfo{Name: Unnamed, Category: "Cn"}

// Table is the character property index: codepoint → CharInfo.
type Table struct {
	info map[rune]CharInfo
}

// Load reads UnicodeData.txt. Every data line must carry the 15 fields
// of the UnicodeData format; anything else is a fatal load error.
func Load(r io.Reader) (*Table, error) {
	t := &Table{info: make(map[rune]CharInfo, 40000)}
	p := NewParser(r)
	for p.Next() {
		if p.FieldCount() != 15 {
			return nil, fmt.Errorf("UnicodeData line %d: expected 15 fields, got %d",
				p.Line(), p.FieldCount())
		}
		cp := p.Rune(0)
		t.info[cp] = CharInfo{
			Name:          p.Field(1),
			Category:      p.Field(2),
			Decomposition: p.Field(5),
			Upper:         p.Rune(12),
			Lower:         p.Rune(13),
		}
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d character records", len(t.info))
	return t, nil
}

// NewTable builds a property index from an explicit record map. Intended
// for tests and for clients with their own data source.
func NewTable(info map[rune]CharInfo) *Table {
	m := make(map[rune]CharInfo, len(info))
	for r, ci := range info {
		m[r] = ci
	}
	return &Table{info: m}
}

// Get returns the property record of a codepoint. Lookup is total:
// unknown codepoints yield the sentinel record.
func (t *Table) Get(r rune) CharInfo {
	if ci, ok := t.info[r]; ok {
		return ci
	}
	return sentinel
}

// Len returns the number of loaded character records.
func (t *Table) Len() int {
	return len(t.info)
}

// Decomposition splits the raw decomposition mapping of a codepoint into
// its formatting tag and expansion text, turning "<super> 0044 0045"
// into ("super", "DE"). A canonical mapping has an empty tag. A
// codepoint without any mapping yields ("", string(r)).
//
// See https://www.unicode.org/reports/tr44/#Character_Decomposition_Mappings
func (t *Table) Decomposition(r rune) (tag string, expansion string) {
	deco := t.Get(r).Decomposition
	if deco == "" {
		return "", string(r)
	}
	words := strings.Fields(deco)
	if strings.HasPrefix(words[0], "<") {
		tag = strings.TrimSuffix(strings.TrimPrefix(words[0], "<"), ">")
		words = words[1:]
	}
	var b strings.Builder
	for _, w := range words {
		cp, err := parseHexRune(w)
		if err != nil {
			// UnicodeData.txt holds a few oddly shaped mappings; skip them.
			tracer().Debugf("decomposition of %#U: %v", r, err)
			return "", string(r)
		}
		b.WriteRune(cp)
	}
	return tag, b.String()
}
