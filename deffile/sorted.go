package deffile

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/compose"
	"github.com/npillmayer/compose/ucd"
)

// WriteSorted writes a regenerable, human-editable mirror of the
// definition and macro tables: characters ordered by codepoint, each
// character's sequences in lexicographic order, a block-name separator
// whenever a new Unicode block starts, combining characters prefixed
// with ◌, and spaces written as ␣.
//
// A character and its case counterpart that carry case-symmetric
// sequences are compacted into a single pair line (Ææ::ae instead of
// Æ::AE plus æ::ae); the compacted sequence is suppressed for both
// characters. Matching is by sequence content, not list position.
func WriteSorted(w io.Writer, t *Table, props *ucd.Table, blocks *ucd.Blocks) error {
	bw := bufio.NewWriter(w)
	sorted := treemap.NewWith(utils.RuneComparator)
	for r, seqs := range t.Definitions {
		sorted.Put(r, seqs)
	}
	ignore := hashset.New() // lowercase forms already emitted as pair lines
	lastBlock := ucd.NoBlock
	fmt.Fprintln(bw, "// this file was automatically generated")

	it := sorted.Iterator()
	for it.Next() {
		char := it.Key().(rune)
		seqs := append([]compose.Keys(nil), it.Value().([]compose.Keys)...)
		sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
		data := props.Get(char)
		if block := blocks.Of(char); block != lastBlock {
			lastBlock = block
			fmt.Fprintf(bw, "\n// %s\n", strings.ToUpper(block))
		}
		for _, rule := range seqs {
			if ignore.Contains(string(rule.ToLower())) {
				continue
			}
			if upp, low, ok := casePair(props, char, data); ok {
				lrule := rule.ToLower()
				if caseSymmetric(t.Definitions, low, upp, lrule) {
					ignore.Add(string(lrule))
					fmt.Fprintf(bw, "%c%c::%s\n", upp, low, placeholders(lrule))
					continue
				}
			}
			prefix := ""
			switch data.Category {
			case "Mc", "Me", "Mn", "Lm":
				prefix = "◌"
			}
			fmt.Fprintf(bw, "%s%c::%s\n", prefix, char, placeholders(rule))
		}
	}

	fmt.Fprintf(bw, "\n// MACROS\n\n")
	for _, m := range t.Macros {
		fmt.Fprintf(bw, "%s::%s\n", m.Text, placeholders(m.Sequence))
	}
	return bw.Flush()
}

// casePair reports whether char is one half of a distinct case pair
// whose case mapping round-trips.
func casePair(props *ucd.Table, char rune, data ucd.CharInfo) (upp, low rune, ok bool) {
	low, upp = data.Lower, data.Upper
	if low == 0 {
		low = char
	}
	if upp == 0 {
		upp = char
	}
	if low == upp || (char != low && char != upp) {
		return 0, 0, false
	}
	upperOfLow := props.Get(low).Upper
	if upperOfLow == 0 {
		upperOfLow = 'a'
	}
	return upp, low, props.Get(upperOfLow).Lower == low
}

// caseSymmetric reports whether the lowercase character carries lrule
// and the uppercase character carries a sequence which is lrule's
// uppercase counterpart.
func caseSymmetric(defs map[rune][]compose.Keys, low, upp rune, lrule compose.Keys) bool {
	found := false
	for _, seq := range defs[low] {
		if seq == lrule {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, seq := range defs[upp] {
		if seq.ToLower() == lrule {
			return true
		}
	}
	return false
}

func placeholders(k compose.Keys) string {
	return strings.ReplaceAll(string(k), " ", "␣")
}
