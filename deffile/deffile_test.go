package deffile

import (
	"strings"
	"testing"

	"github.com/npillmayer/compose"
	"github.com/npillmayer/compose/internal/testdata"
	"github.com/npillmayer/compose/ucd"
)

func loadTestProps(t *testing.T) *ucd.Table {
	t.Helper()
	r, err := testdata.Reader("UnicodeData.txt")
	if err != nil {
		t.Fatal(err)
	}
	props, err := ucd.Load(r)
	if err != nil {
		t.Fatal(err)
	}
	return props
}

func TestReadDefinitions(t *testing.T) {
	input := strings.Join([]string{
		"// a comment line",
		"",
		"Ææ::ae",
		"′::prime",
		"kʟ::kl",
		"·::␣.",
	}, "\n")
	table, err := Read(strings.NewReader(input), loadTestProps(t))
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Definitions['Æ']; len(got) != 1 || got[0] != "AE" {
		t.Errorf("definitions for 'Æ' = %v, want [AE]", got)
	}
	if got := table.Definitions['æ']; len(got) != 1 || got[0] != "ae" {
		t.Errorf("definitions for 'æ' = %v, want [ae]", got)
	}
	if got := table.Definitions['′']; len(got) != 1 || got[0] != "prime" {
		t.Errorf("definitions for '′' = %v, want [prime]", got)
	}
	if got := table.Definitions['·']; len(got) != 1 || got[0] != " ." {
		t.Errorf("space placeholder not substituted: %v", got)
	}
	if len(table.Macros) != 1 || table.Macros[0].Text != "kʟ" || table.Macros[0].Sequence != "kl" {
		t.Errorf("macros = %v", table.Macros)
	}
}

func TestReadCombiningPrefix(t *testing.T) {
	table, err := Read(strings.NewReader("◌̈::u\"\n"), loadTestProps(t))
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Definitions['̈']; len(got) != 1 || got[0] != "u\"" {
		t.Errorf("definitions for combining diaeresis = %v", got)
	}
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := Read(strings.NewReader("no separator here\n"), loadTestProps(t))
	if err == nil {
		t.Errorf("expected a parse error")
	}
}

func TestWriteSortedCompactsCasePairs(t *testing.T) {
	props := loadTestProps(t)
	r, err := testdata.Reader("Blocks.txt")
	if err != nil {
		t.Fatal(err)
	}
	blocks, err := ucd.LoadBlocks(r)
	if err != nil {
		t.Fatal(err)
	}
	table := &Table{
		Definitions: map[rune][]compose.Keys{
			'É': {"E'"},
			'é': {"e'"},
			'′': {"prime"},
		},
		Macros: []compose.Macro{{Text: "kʟ", Sequence: "k l"}},
	}
	var b strings.Builder
	if err := WriteSorted(&b, table, props, blocks); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"// this file was automatically generated",
		"",
		"// LATIN-1 SUPPLEMENT",
		"Éé::e'",
		"",
		"// GENERAL PUNCTUATION",
		"′::prime",
		"",
		"// MACROS",
		"",
		"kʟ::k␣l",
		"",
	}, "\n")
	if b.String() != want {
		t.Errorf("sorted dump:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestWriteSortedMarksCombining(t *testing.T) {
	props := loadTestProps(t)
	blocks := ucd.NewBlocks(map[string][2]rune{
		"Combining Diacritical Marks": {0x0300, 0x036F},
	})
	table := &Table{
		Definitions: map[rune][]compose.Keys{'̈': {"u\""}},
	}
	var b strings.Builder
	if err := WriteSorted(&b, table, props, blocks); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "◌̈::u\"") {
		t.Errorf("combining character not prefixed:\n%q", b.String())
	}
}

func TestSortedDumpRoundTrips(t *testing.T) {
	props := loadTestProps(t)
	blocks := ucd.NewBlocks(nil)
	table := &Table{
		Definitions: map[rune][]compose.Keys{
			'É': {"E'"},
			'é': {"e'"},
			'′': {"prime", "pr1"},
		},
		Macros: []compose.Macro{{Text: "kʟ", Sequence: "k l"}},
	}
	var b strings.Builder
	if err := WriteSorted(&b, table, props, blocks); err != nil {
		t.Fatal(err)
	}
	back, err := Read(strings.NewReader(b.String()), props)
	if err != nil {
		t.Fatalf("re-reading sorted dump: %v\n%q", err, b.String())
	}
	for char, seqs := range table.Definitions {
		got := back.Definitions[char]
		if len(got) != len(seqs) {
			t.Errorf("round trip of %q: %v vs %v", char, got, seqs)
			continue
		}
		for _, seq := range seqs {
			found := false
			for _, g := range got {
				if g == seq {
					found = true
				}
			}
			if !found {
				t.Errorf("round trip of %q lost %q (got %v)", char, seq, got)
			}
		}
	}
	if len(back.Macros) != 1 || back.Macros[0].Sequence != "k l" {
		t.Errorf("round trip of macros: %v", back.Macros)
	}
}
