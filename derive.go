package compose

import (
	"strings"
	"unicode"

	"github.com/npillmayer/compose/ucd"
	"golang.org/x/text/unicode/norm"
)

// A Deriver computes candidate key-sequences for characters. It combines
// a frozen seed table of hand-authored definitions with relations from
// the character property index: custom diacritic substitution, canonical
// and compatibility decomposition, and ligature expansion.
//
// Results are memoized; apart from the memo the Deriver behaves like a
// pure function from characters to candidate lists. The seed table is
// copied at construction and never mutated, the memo is a separate
// layer merged at read time.
//
// Derivers are not safe for concurrent use.
type Deriver struct {
	props    *ucd.Table
	cfg      Config
	seed     map[rune][]Keys
	memo     map[rune][]Keys
	visiting map[rune]bool
}

// NewDeriver creates a Deriver over a character property index, a seed
// definition table and the authored derivation tables. The seed map is
// copied; callers may keep using their map.
func NewDeriver(props *ucd.Table, seed map[rune][]Keys, cfg Config) *Deriver {
	d := &Deriver{
		props:    props,
		cfg:      cfg,
		seed:     make(map[rune][]Keys, len(seed)),
		memo:     make(map[rune][]Keys),
		visiting: make(map[rune]bool),
	}
	for r, seqs := range seed {
		d.seed[r] = append([]Keys(nil), seqs...)
	}
	return d
}

// Resolve returns the candidate key-sequences for a character. It is
// total over all Unicode scalar values and never fails; characters the
// tables cannot reach simply yield an empty list.
//
// Core symbols resolve to themselves. Printable ASCII resolves to the
// literal symbol behind the "ascii" prefix, if one is registered (ASCII
// punctuation would otherwise collide with compose-engine syntax).
// Everything else goes through the memoized derivation.
func (d *Deriver) Resolve(r rune) []Keys {
	if IsCoreSymbol(r) {
		return []Keys{Keys(string(r))}
	}
	if r >= '\x21' && r <= '\x7E' && d.cfg.Registry.Registered(asciiLiteral) {
		return []Keys{d.cfg.Registry.Apply(Keys(string(r)), asciiLiteral)}
	}
	return d.Candidates(r)
}

// Candidates returns the derived candidate list for a character,
// computing and memoizing it on first use. Unlike Resolve it does not
// shortcut core symbols or ASCII literals; the projection over a
// codepoint range uses it directly, so plain letters do not show up as
// rules of their own.
//
// Candidates are accumulated in a fixed order: seed definitions, custom
// diacritic substitutions, bare-combining-mark application, canonical
// decomposition, compatibility decomposition, ligature expansion.
// Duplicates are not removed here.
func (d *Deriver) Candidates(r rune) []Keys {
	if maps, ok := d.memo[r]; ok {
		return maps
	}
	if d.visiting[r] {
		// The decomposition relation is assumed acyclic; report and
		// produce nothing for this branch instead of recursing forever.
		tracer().Errorf("cyclic decomposition involving %#U", r)
		return nil
	}
	d.visiting[r] = true
	defer delete(d.visiting, r)

	maps := append([]Keys(nil), d.seed[r]...)

	for _, cd := range d.cfg.Custom {
		for i, c := range []rune(cd.Chars) {
			if c == r {
				maps = append(maps, d.composeDiacritics([]DiacriticID{cd.ID}, cd.Bases[i])...)
			}
		}
	}

	// Characters known to defeat the automatic steps below keep only
	// what has accumulated so far.
	if d.cfg.Overrides != nil && unicode.Is(d.cfg.Overrides, r) {
		d.memo[r] = maps
		return maps
	}

	// A registered combining mark is typeable atop a placeholder base.
	if d.cfg.Registry.Registered(Mark(r)) {
		maps = append(maps, d.cfg.Registry.Apply(Combining, Mark(r)))
	}

	// Canonical decomposition: base character plus combining marks in
	// canonical storage order (splits ü into u + ◌̈ into "u).
	if nfd := []rune(norm.NFD.String(string(r))); len(nfd) > 1 {
		ids := make([]DiacriticID, len(nfd)-1)
		for i, m := range nfd[1:] {
			ids[i] = Mark(m)
		}
		maps = append(maps, d.composeDiacritics(ids, string(nfd[0]))...)
	}

	// Compatibility decomposition (circled letters, superscripts, …).
	if tag, text := d.props.Decomposition(r); tag != "" {
		if tag == "compat" && strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
			maps = append(maps, d.composeDiacritics(
				[]DiacriticID{Custom("parens")}, strings.TrimSuffix(strings.TrimPrefix(text, "("), ")"))...)
		} else {
			maps = append(maps, d.composeDiacritics([]DiacriticID{CompatTag(tag)}, text)...)
		}
	}

	// Ligatures: one candidate per component, each fenced individually.
	if comps, ok := d.cfg.Ligatures[r]; ok {
		lists := make([][]Keys, len(comps))
		for i, c := range comps {
			cands := d.Resolve(c)
			parts := make([]Keys, len(cands))
			for j, seq := range cands {
				parts[j] = EscapeOne(seq)
			}
			lists[i] = parts
		}
		eachProduct(lists, func(tuple []Keys) {
			maps = append(maps, ligatureGroup(tuple))
		})
	}

	d.memo[r] = maps
	return maps
}

// composeDiacritics resolves a decomposition text character by character,
// walks the cartesian product of the per-character candidate lists,
// fences every tuple as a single unit and applies the diacritic sequence
// to it. If any of the ids is unregistered the whole branch is skipped
// silently and no candidates are produced.
func (d *Deriver) composeDiacritics(ids []DiacriticID, text string) []Keys {
	if !d.cfg.Registry.allRegistered(ids) {
		return nil
	}
	runes := []rune(text)
	lists := make([][]Keys, len(runes))
	for i, c := range runes {
		lists[i] = d.Resolve(c)
	}
	var out []Keys
	eachProduct(lists, func(tuple []Keys) {
		out = append(out, d.cfg.Registry.ApplySequence(Escape(tuple...), ids...))
	})
	return out
}
