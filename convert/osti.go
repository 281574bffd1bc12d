package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/inspirehep/hepkit/normal"
	"github.com/inspirehep/hepkit/schema/hep"
	"github.com/inspirehep/hepkit/schema/osti"
)

// ostiDocTypes maps the OSTI product type vocabulary onto document types.
// Absent keys (Dataset, Patent) deliberately map to nothing.
var ostiDocTypes = map[string]string{
	"Conference":                "proceedings",
	"Journal Article":           "article",
	"Program Document":          "report",
	"S&T Accomplishment Report": "activity report",
	"Technical Report":          "report",
	"Thesis/Dissertation":       "thesis",
}

// ostiAuthorRe matches the structured author strings OSTI produces:
// "Surname, Given Names [affiliation; affiliation] (ORCID:...)", with every
// part after the surname optional.
var ostiAuthorRe = regexp.MustCompile(`(?s)^(?P<surname>[\p{L}\p{N}_.']+(?:\s*[\p{L}\p{N}_.'-]+)*)(?:\s*,\s*(?P<given_names>[\p{L}\p{N}_]+(?:\s*[\p{L}\p{N}_.'-]+)*))?\s*(?:\[(?P<affil>.*)\])?\s*(?:\(ORCID:(?P<orcid>\d{15}[\dX])\)\s*)?$`)

var ostiDisallowedCharsRe = regexp.MustCompile(`[^-\p{L}\p{N}_\s.,':()\[\]]`)

var orcidGroupRe = regexp.MustCompile(`[\dX]{4}`)

// ostiPageinfoRe splits the OSTI format field, e.g.
// "Medium: X; Size: p. 3207-3210" or "Medium: ED; Size: Article No. 043512".
var ostiPageinfoRe = regexp.MustCompile(`(?is)^Medium:\s*(?P<mediatype>ED|X);\s*Size:\s*(?:Article\s*No\.\s*(?P<artid>\w?\d+)|p(?:\.|ages)\s*(?P<page_start>\w?\d+)(?:\s*(?:-|to)\s*(?P<page_end>\w?\d+))?|(?P<numpages>\d+)\s*p(?:\.|ages)|(?P<freeform>.*))(?P<remainder>.*)$`)

// OSTIParser extracts a canonical record from a single entry of an OSTI API
// response. Unparseable author strings are dropped and reported through
// Warnings after Parse returned.
type OSTIParser struct {
	record   *osti.Record
	source   string
	warnings []string
}

// NewOSTIParser wraps a decoded OSTI record; source defaults to "OSTI".
func NewOSTIParser(record *osti.Record, source string) *OSTIParser {
	if source == "" {
		source = "OSTI"
	}
	return &OSTIParser{record: record, source: source}
}

// Warnings reports author strings that could not be parsed during the last
// Parse call.
func (p *OSTIParser) Warnings() []string {
	return p.warnings
}

// Parse extracts the record.
func (p *OSTIParser) Parse() (hep.Record, error) {
	b := NewBuilder(p.source)
	p.warnings = nil

	b.AddAbstract(p.record.Description, "")
	for _, author := range p.parseAuthors(b) {
		b.AddAuthor(author)
	}
	if eprint := p.arxivEprint(); eprint != "" {
		b.AddArxivEprint(eprint, nil)
	}
	b.AddDocumentType(ostiDocTypes[p.record.ProductType])
	for _, collab := range strings.Split(p.record.ContributingOrg, ";") {
		b.AddCollaboration(collab)
	}
	for _, doi := range strings.Fields(p.record.DOI) {
		b.AddDOI(doi, "publication", "")
	}
	b.AddExternalSystemIdentifier(p.record.OstiID.String(), p.source)
	b.AddImprintDate(p.datePublished())
	b.AddPublicationInfo(p.publicationInfo())
	for _, rn := range p.reportNumbers() {
		b.AddReportNumber(rn, "")
	}
	b.AddTitle(p.record.Title, "", "")

	rec := b.Record()
	if len(rec.Titles) == 0 {
		return rec, ErrSkipNoTitle
	}
	return rec, nil
}

// datePublished takes the date part of the datetime the API reports.
func (p *OSTIParser) datePublished() string {
	date, _, _ := strings.Cut(p.record.PublicationDate, "T")
	return date
}

// arxivEprint finds an arXiv identifier hiding in the report number field.
func (p *OSTIParser) arxivEprint() string {
	for _, rn := range strings.Split(p.record.ReportNumber, ";") {
		if rn = strings.TrimSpace(rn); isArxiv(rn) {
			return rn
		}
	}
	return ""
}

// reportNumbers returns the report numbers that are not arXiv identifiers.
func (p *OSTIParser) reportNumbers() (rns []string) {
	raw := strings.ReplaceAll(p.record.ReportNumber, "&amp;", "&")
	for _, rn := range strings.Split(raw, ";") {
		if rn = strings.TrimSpace(rn); rn != "" && !isArxiv(rn) {
			rns = append(rns, rn)
		}
	}
	return rns
}

func (p *OSTIParser) publicationInfo() hep.PublicationInfo {
	info := hep.PublicationInfo{
		JournalTitle:  p.record.JournalName,
		JournalIssue:  p.record.JournalIssue,
		JournalVolume: p.record.JournalVolume,
	}
	if date := p.datePublished(); len(date) >= 4 {
		if year, ok := maybeInt(date[:4]); ok {
			info.Year = year
		}
	}
	if m := matchGroups(ostiPageinfoRe, p.record.Format); m != nil {
		info.Artid = m["artid"]
		info.PageStart = m["page_start"]
		info.PageEnd = m["page_end"]
		info.PubinfoFreetext = strings.TrimSpace(m["freeform"])
	}
	return info
}

func (p *OSTIParser) parseAuthors(b *Builder) []hep.Author {
	var authors []hep.Author
	for _, raw := range p.record.Authors {
		raw = normal.AuthorPipeline().Normalize(raw)
		// The name pattern would happily treat "et al." as a surname.
		if strings.EqualFold(strings.TrimSpace(raw), "et al.") {
			continue
		}
		if len([]rune(raw)) > 30 && ostiDisallowedCharsRe.MatchString(raw) {
			p.warnings = append(p.warnings, fmt.Sprintf("disallowed chars in author: %s", raw))
			continue
		}
		m := matchGroups(ostiAuthorRe, raw)
		if m == nil {
			// Last resort: split off a bracketed affiliation by hand.
			if name, rest, ok := strings.Cut(raw, "["); ok {
				affil := rest
				if i := strings.LastIndex(rest, "]"); i >= 0 {
					affil = rest[:i]
				}
				authors = append(authors, b.MakeAuthor(name, []string{affil}, nil, nil))
			}
			continue
		}
		fullName := m["surname"]
		if m["given_names"] != "" {
			fullName = m["surname"] + ", " + m["given_names"]
		}
		var affiliations []string
		if m["affil"] != "" {
			affiliations = strings.Split(m["affil"], ";")
		}
		var ids []hep.ID
		if orcid := m["orcid"]; orcid != "" {
			// Rejoin the plain 16 character form as the usual hyphenated one.
			orcid = strings.Join(orcidGroupRe.FindAllString(orcid, -1), "-")
			ids = append(ids, hep.ID{Schema: "ORCID", Value: orcid})
		}
		authors = append(authors, b.MakeAuthor(fullName, affiliations, nil, ids))
	}
	return authors
}

// matchGroups returns the named submatches of re on s, or nil on no match.
func matchGroups(re *regexp.Regexp, s string) map[string]string {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}
	return groups
}
