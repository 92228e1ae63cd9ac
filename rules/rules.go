/*
Package rules collects the final rule list of a generation run and
checks it for conflicting sequences.

Compose engines commit to a rule as soon as its sequence is typed, so a
rule whose sequence is a strict prefix of another rule's sequence makes
the longer rule unreachable ("shadowing"). Two rules with the identical
sequence are ambiguous ("duplicate"). Both conditions are advisory:
they are reported through the tracer and the rules are kept.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rules

import (
	"github.com/derekparker/trie"
	"github.com/npillmayer/compose"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'compose.rules'
func tracer() tracing.Trace {
	return tracing.Select("compose.rules")
}

// A Rule maps a key-sequence to the text it produces. Comment is the
// character name or "macro" and ends up in the serialized output.
type Rule struct {
	Keys    compose.Keys
	Text    string
	Comment string
}

// A Shadow records that the full sequence Short is a strict prefix of
// the sequence Long, making Long unreachable.
type Shadow struct {
	Short, Long compose.Keys
}

// A Set accumulates rules in insertion order and indexes their
// sequences for duplicate and prefix analysis.
type Set struct {
	rules []Rule
	index *trie.Trie
}

// NewSet creates an empty rule set.
func NewSet() *Set {
	return &Set{index: trie.New()}
}

// Add appends a rule and reports whether its sequence was seen before.
// A repeated sequence is reported as a duplicate (once per repeated
// insertion); the rule is kept regardless.
func (s *Set) Add(keys compose.Keys, text, comment string) (duplicate bool) {
	if _, duplicate = s.index.Find(string(keys)); duplicate {
		tracer().Infof("warning: [%s] found more than once (%s)", keys, comment)
	}
	s.index.Add(string(keys), nil)
	s.rules = append(s.rules, Rule{Keys: keys, Text: text, Comment: comment})
	return duplicate
}

// Len returns the number of rules added, duplicates included.
func (s *Set) Len() int {
	return len(s.rules)
}

// Rules returns the rules in insertion order. The slice is shared; do
// not modify it.
func (s *Set) Rules() []Rule {
	return s.rules
}

// Shadows scans the full rule set and returns every pair of a rule
// whose sequence is a strict prefix of another rule's sequence. Each
// shadow is also reported through the tracer.
func (s *Set) Shadows() []Shadow {
	var shadows []Shadow
	seen := make(map[compose.Keys]bool, len(s.rules))
	for _, r := range s.rules {
		if seen[r.Keys] { // duplicates shadow the same set of rules
			continue
		}
		seen[r.Keys] = true
		for _, longer := range s.index.PrefixSearch(string(r.Keys)) {
			if longer == string(r.Keys) {
				continue
			}
			tracer().Infof("warning: [%s] shadows [%s]", r.Keys, longer)
			shadows = append(shadows, Shadow{Short: r.Keys, Long: compose.Keys(longer)})
		}
	}
	return shadows
}
