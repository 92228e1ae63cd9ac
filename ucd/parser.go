package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Parser walks the data lines of a UCD file. UCD files are
// line-oriented; each data line holds semicolon-separated fields,
// optionally followed by a '#' comment. Blank lines and comment-only
// lines are skipped.
//
// Usage follows the bufio.Scanner pattern:
//
//	p := NewParser(r)
//	for p.Next() {
//	    … p.Field(1), p.Rune(0) …
//	}
//	if err := p.Err(); err != nil { … }
type Parser struct {
	scanner *bufio.Scanner
	fields  []string
	comment string
	lineno  int
	err     error
}

// NewParser creates a parser reading UCD data lines from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next advances to the next data line. It returns false at end of input
// or on a read error.
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		p.lineno++
		line := p.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			p.comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		} else {
			p.comment = ""
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.fields = strings.Split(line, ";")
		for i := range p.fields {
			p.fields[i] = strings.TrimSpace(p.fields[i])
		}
		return true
	}
	p.err = p.scanner.Err()
	return false
}

// FieldCount returns the number of fields of the current data line.
func (p *Parser) FieldCount() int {
	return len(p.fields)
}

// Field returns field i (0…n-1) of the current data line, or "" if the
// line has fewer fields.
func (p *Parser) Field(i int) string {
	if i < 0 || i >= len(p.fields) {
		return ""
	}
	return p.fields[i]
}

// Comment returns the rest-of-line comment of the current data line.
func (p *Parser) Comment() string {
	return p.comment
}

// Line returns the line number of the current data line.
func (p *Parser) Line() int {
	return p.lineno
}

// Rune interprets field i as a hexadecimal codepoint. An empty field
// yields 0; a malformed field sets the parser error.
func (p *Parser) Rune(i int) rune {
	f := p.Field(i)
	if f == "" {
		return 0
	}
	n, err := strconv.ParseInt(f, 16, 32)
	if err != nil {
		p.err = fmt.Errorf("line %d: hex decoding error: %w", p.lineno, err)
		return 0
	}
	return rune(n)
}

// Range interprets field i as either a single codepoint or a range of
// the form XXXX..YYYY.
func (p *Parser) Range(i int) (from, to rune) {
	f := p.Field(i)
	if j := strings.Index(f, ".."); j >= 0 {
		from = p.parseHex(f[:j])
		to = p.parseHex(f[j+2:])
		return from, to
	}
	from = p.parseHex(f)
	return from, from
}

func (p *Parser) parseHex(s string) rune {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 16, 32)
	if err != nil {
		p.err = fmt.Errorf("line %d: hex decoding error: %w", p.lineno, err)
		return 0
	}
	return rune(n)
}

// Err returns the first error encountered while scanning or decoding.
func (p *Parser) Err() error {
	return p.err
}

func parseHexRune(s string) (rune, error) {
	n, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(n), nil
}
