package compose

// A DiacriticID identifies an entry of the diacritic registry. Three kinds
// of identifiers share the registry namespace:
//
//   - Mark: a combining-mark character, registered so the mark can be
//     applied to arbitrary bases ('◌̈' ⇒ prefix '"')
//   - CompatTag: a compatibility decomposition tag from UnicodeData.txt
//     ("super", "circle", …)
//   - Custom: a hand-picked name for substitutions outside the UCD
//     relations ("parens", "ascii", "ring", …)
//
// Each kind has a distinct canonical string form, so the three sub-spaces
// cannot collide inside the single registry map.
type DiacriticID struct {
	kind diacriticKind
	mark rune
	name string
}

type diacriticKind int8

const (
	markID diacriticKind = iota
	compatTagID
	customID
)

// Mark returns the identifier under which combining mark r applies as a
// diacritic.
func Mark(r rune) DiacriticID {
	return DiacriticID{kind: markID, mark: r}
}

// CompatTag returns the identifier for a compatibility decomposition tag.
// name is given without the angle brackets of the UCD syntax.
func CompatTag(name string) DiacriticID {
	return DiacriticID{kind: compatTagID, name: name}
}

// Custom returns the identifier for a hand-picked diacritic name.
func Custom(name string) DiacriticID {
	return DiacriticID{kind: customID, name: name}
}

// String returns the canonical registry key: "◌" + mark for combining
// marks, "<name>" for compatibility tags, the plain name otherwise.
func (id DiacriticID) String() string {
	switch id.kind {
	case markID:
		return "◌" + string(id.mark)
	case compatTagID:
		return "<" + id.name + ">"
	}
	return id.name
}

// Registry maps diacritic identifiers (by canonical string form) to the
// key-prefix that applies them.
type Registry map[string]Keys

// Registered reports whether id has a prefix in the registry.
func (reg Registry) Registered(id DiacriticID) bool {
	_, ok := reg[id.String()]
	return ok
}

// allRegistered reports whether every id has a prefix in the registry.
func (reg Registry) allRegistered(ids []DiacriticID) bool {
	for _, id := range ids {
		if !reg.Registered(id) {
			return false
		}
	}
	return true
}

// Apply prepends the registered prefix of id to seq. The prefix ends up
// leftmost, i.e. it is pressed before the base sequence.
//
// id must be registered; callers check membership beforehand (a missing
// registration at the derivation level silently skips the branch, see
// Deriver). Calling Apply with an unregistered id panics.
func (reg Registry) Apply(seq Keys, id DiacriticID) Keys {
	prefix, ok := reg[id.String()]
	assert(ok, "applying unregistered diacritic "+id.String())
	return prefix + seq
}

// ApplySequence folds Apply over ids left to right. The last id ends up
// as the outermost (first-pressed) prefix, the first id innermost. This
// matches the canonical storage order of combining marks, so stacked
// marks compose in conventional reading order.
func (reg Registry) ApplySequence(seq Keys, ids ...DiacriticID) Keys {
	for _, id := range ids {
		seq = reg.Apply(seq, id)
	}
	return seq
}
