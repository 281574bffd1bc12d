// Package convert maps source specific metadata dialects into the canonical
// HEP record. There is one parser per dialect (JATS XML, OSTI report
// metadata, Crossref JSON) plus the tohep stage for records in the legacy
// crawler format. Parsers are stateless per invocation: a single Parse call
// populates a fresh Builder field by field and returns the finished record.
package convert

import (
	"errors"
	"regexp"
	"strings"
)

// Skip marks input that is deliberately not converted, as opposed to input
// that failed.
type Skip struct {
	err error
}

func (s Skip) Error() string {
	return s.err.Error()
}

var (
	ErrSkipNoTitle = Skip{err: errors.New("no title")}

	// ErrUnknownRecordFormat signals converter input whose shape matches
	// neither the crawler format nor the HEP format.
	ErrUnknownRecordFormat = errors.New("unknown record format")
)

// Format names for the closed set of source dialects.
const (
	FormatJats     = "jats"
	FormatOSTI     = "osti"
	FormatCrossref = "crossref"
	FormatCrawler  = "hepcrawl"
	FormatHep      = "hep"
)

var wsRe = regexp.MustCompile(`\s+`)

// collapseWhitespace trims and folds runs of whitespace, the usual cleanup
// for text pulled out of XML nodes.
func collapseWhitespace(s string) string {
	return wsRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// maybeInt parses an integer, reporting failure instead of defaulting to
// zero, since zero is a valid-looking value for counts and years.
func maybeInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// arxivIDRe matches both identifier styles, with an optional "arXiv:"
// prefix: 1604.05602(v1) and hep-ph/9907233(v2). The old style is anchored
// to the known archive names, so that report numbers which merely look like
// word/digits are not mistaken for eprints.
var arxivIDRe = regexp.MustCompile(`(?i)^(arxiv:)?(\d{4}\.\d{4,5}|` + arxivArchives + `(\.[a-z-]+)?/\d{7})(v\d+)?$`)

// Archive names of the pre-2007 arXiv identifier scheme, including the
// subsumed ones.
const arxivArchives = `(acc-phys|adap-org|alg-geom|ao-sci|astro-ph|atom-ph|bayes-an|chao-dyn|chem-ph|cmp-lg|comp-gas|cond-mat|cs|dg-ga|funct-an|gr-qc|hep-ex|hep-lat|hep-ph|hep-th|math|math-ph|mtrl-th|nlin|nucl-ex|nucl-th|patt-sol|physics|plasm-ph|q-alg|q-bio|quant-ph|solv-int|supr-con)`

// isArxiv reports whether a token is an arXiv identifier.
func isArxiv(s string) bool {
	return arxivIDRe.MatchString(strings.TrimSpace(s))
}
