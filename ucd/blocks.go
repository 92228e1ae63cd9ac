package ucd

import (
	"fmt"
	"io"
)

// NoBlock is returned by Blocks.Of for codepoints outside every block.
const NoBlock = "not assigned"

type blockSpan struct {
	from, to rune
	name     string
}

// Blocks is the ordered table of named codepoint ranges from Blocks.txt.
// It is used for grouping generated output, not for derivation.
type Blocks struct {
	spans []blockSpan
}

// LoadBlocks reads Blocks.txt, e.g.
//
//	0000..007F; Basic Latin
//	0080..00FF; Latin-1 Supplement
func LoadBlocks(r io.Reader) (*Blocks, error) {
	b := &Blocks{}
	p := NewParser(r)
	for p.Next() {
		if p.FieldCount() != 2 {
			return nil, fmt.Errorf("Blocks line %d: expected 2 fields, got %d",
				p.Line(), p.FieldCount())
		}
		from, to := p.Range(0)
		b.spans = append(b.spans, blockSpan{from: from, to: to, name: p.Field(1)})
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d block ranges", len(b.spans))
	return b, nil
}

// NewBlocks builds a block table from explicit ranges; for tests.
func NewBlocks(ranges map[string][2]rune) *Blocks {
	b := &Blocks{}
	for name, fromTo := range ranges {
		b.spans = append(b.spans, blockSpan{from: fromTo[0], to: fromTo[1], name: name})
	}
	return b
}

// Of returns the name of the block containing r, or NoBlock.
func (b *Blocks) Of(r rune) string {
	for _, span := range b.spans {
		if span.from <= r && r <= span.to {
			return span.name
		}
	}
	return NoBlock
}
