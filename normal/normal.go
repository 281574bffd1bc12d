// Package normal provides string normalization pipelines, mostly for author
// strings that arrive with composed and decomposed unicode, typographic
// quotes and assorted hyphen codepoints mixed together.
package normal

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms a string.
type Normalizer interface {
	Normalize(string) string
}

// Pipeline applies normalizers in order.
type Pipeline struct {
	Normalizer []Normalizer
}

func (p *Pipeline) Normalize(s string) string {
	for _, n := range p.Normalizer {
		s = n.Normalize(s)
	}
	return s
}

// NFCNormalizer applies unicode normalization form C.
type NFCNormalizer struct{}

func (n *NFCNormalizer) Normalize(v string) string {
	return norm.NFC.String(v)
}

// FoldNormalizer replaces typographic variants with their plain ASCII
// counterparts, e.g. the unicode hyphen and the right single quotation mark.
type FoldNormalizer struct{}

var foldReplacer = strings.NewReplacer(
	"‐", "-", // hyphen
	"’", "'", // right single quotation mark
)

func (n *FoldNormalizer) Normalize(v string) string {
	return foldReplacer.Replace(v)
}

// CollapseWSNormalizer trims and collapses runs of whitespace into a single
// space.
type CollapseWSNormalizer struct{}

func (n *CollapseWSNormalizer) Normalize(v string) string {
	var (
		b    strings.Builder
		prev bool
	)
	for _, c := range strings.TrimSpace(v) {
		if unicode.IsSpace(c) {
			prev = true
			continue
		}
		if prev && b.Len() > 0 {
			b.WriteRune(' ')
		}
		prev = false
		b.WriteRune(c)
	}
	return b.String()
}

// AuthorPipeline returns the normalization applied to raw author strings
// before structured name matching.
func AuthorPipeline() *Pipeline {
	return &Pipeline{Normalizer: []Normalizer{
		&NFCNormalizer{},
		&FoldNormalizer{},
	}}
}
