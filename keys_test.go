package compose

import (
	"testing"
)

func TestEscapeOne(t *testing.T) {
	cases := []struct {
		in, out Keys
	}{
		{"a", "a"},      // single symbol is self-delimiting
		{"ab", " ab"},   // multi-symbol starting with a core symbol
		{"\"a", "\"a"},  // starts with a prefix symbol, self-delimiting
		{" ab", " ab"},  // already escaped
		{"&fi↵", "&fi↵"}, // ligature group, self-delimiting
	}
	for _, c := range cases {
		if got := EscapeOne(c.in); got != c.out {
			t.Errorf("EscapeOne(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestEscapeOneIdempotent(t *testing.T) {
	for _, seq := range []Keys{"a", "ab", "\"a", "?", "↹ abc↵"} {
		once := EscapeOne(seq)
		if twice := EscapeOne(once); twice != once {
			t.Errorf("EscapeOne not idempotent on %q: %q != %q", seq, twice, once)
		}
	}
}

func TestEscapeGroup(t *testing.T) {
	if got := Escape(Keys("ab")); got != " ab" {
		t.Errorf("Escape of one sequence = %q, want %q", got, " ab")
	}
	if got := Escape(Keys("ab"), Keys("c")); got != "↹ abc↵" {
		t.Errorf("Escape of two sequences = %q, want %q", got, "↹ abc↵")
	}
}

func TestEscapeZeroSequencesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Escape() should panic on zero sequences")
		}
	}()
	Escape()
}

func TestApplyDiacritic(t *testing.T) {
	reg := Registry{
		Mark('̈').String(): "\"",
		Mark('́').String(): "'",
	}
	if got := reg.Apply("a", Mark('̈')); got != "\"a" {
		t.Errorf("Apply = %q, want %q", got, "\"a")
	}
}

func TestApplyUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Apply should panic on an unregistered diacritic")
		}
	}()
	Registry{}.Apply("a", Custom("missing"))
}

func TestApplySequenceOrder(t *testing.T) {
	reg := Registry{
		Mark('̈').String(): "\"",
		Mark('́').String(): "'",
	}
	d1, d2 := Mark('̈'), Mark('́')
	// the last diacritic ends up as the outermost prefix
	if got := reg.ApplySequence("a", d1, d2); got != "'\"a" {
		t.Errorf("ApplySequence = %q, want %q", got, "'\"a")
	}
	// sequential application equals one-by-one application
	step := reg.ApplySequence(reg.ApplySequence("a", d1), d2)
	if got := reg.ApplySequence("a", d1, d2); got != step {
		t.Errorf("ApplySequence not associative: %q != %q", got, step)
	}
}

func TestDiacriticIDNamespaces(t *testing.T) {
	ids := []DiacriticID{Mark('̈'), CompatTag("super"), Custom("super")}
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id.String()] {
			t.Errorf("canonical form %q not unique", id.String())
		}
		seen[id.String()] = true
	}
	if CompatTag("super").String() != "<super>" {
		t.Errorf("CompatTag canonical form = %q", CompatTag("super").String())
	}
	if Mark('̈').String() != "◌̈" {
		t.Errorf("Mark canonical form = %q", Mark('̈').String())
	}
}
