package convert

import (
	"fmt"
	"strings"

	"github.com/inspirehep/hepkit/dateutil"
	"github.com/inspirehep/hepkit/schema/crossref"
	"github.com/inspirehep/hepkit/schema/hep"
)

// crossrefDocTypes maps the work types of the Crossref API, cf.
// https://api.crossref.org/v1/types, onto document types.
var crossrefDocTypes = map[string]string{
	"book":                "book",
	"book-part":           "book chapter",
	"book-section":        "book chapter",
	"book-series":         "book",
	"book-set":            "book",
	"book-track":          "book chapter",
	"book-chapter":        "book chapter",
	"dissertation":        "thesis",
	"edited-book":         "book",
	"journal-article":     "article",
	"journal-volume":      "article",
	"journal":             "article",
	"monograph":           "book",
	"proceedings":         "proceedings",
	"proceedings-article": "conference paper",
	"other":               "note",
	"reference-book":      "book",
	"report":              "report",
	"report-series":       "report",
}

// CrossrefParser extracts a canonical record from a single work response of
// the Crossref REST API.
type CrossrefParser struct {
	record *crossref.Work
	source string
}

// NewCrossrefParser wraps a decoded works response. If source is empty, the
// source field of the work itself is used as provenance.
func NewCrossrefParser(resp *crossref.Response, source string) *CrossrefParser {
	record := &resp.Message
	if source == "" {
		source = record.Source
	}
	return &CrossrefParser{record: record, source: source}
}

// Parse extracts the record. Works with a type outside the known vocabulary
// are an error, not a silent "article".
func (p *CrossrefParser) Parse() (hep.Record, error) {
	docType, ok := crossrefDocTypes[p.record.Type]
	if !ok {
		return hep.Record{}, fmt.Errorf("unknown crossref work type: %q", p.record.Type)
	}
	material := p.material()

	b := NewBuilder(p.source)
	b.AddAbstract(p.record.Abstract, "")
	b.AddDOI(p.record.DOI, material, "")
	for _, ref := range p.record.Reference {
		b.AddReference(parseCrossrefReference(ref))
	}
	if date := p.issued(); !date.IsZero() {
		b.AddImprintDate(date.Dumps())
	}
	for _, author := range p.record.Author {
		b.AddAuthor(p.parseAuthor(b, author))
	}
	for _, license := range p.record.License {
		b.AddLicense(license.URL, "", p.record.Publisher, material)
	}
	b.AddPublicationInfo(p.publicationInfo(docType, material))
	b.AddTitle(first(p.record.Title), first(p.record.Subtitle), "")
	b.AddDocumentType(docType)

	rec := b.Record()
	if len(rec.Titles) == 0 {
		return rec, ErrSkipNoTitle
	}
	return rec, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// material classifies the work relative to the original publication, based
// on conventional title prefixes.
func (p *CrossrefParser) material() string {
	title := first(p.record.Title)
	subtitle := first(p.record.Subtitle)
	hasPrefix := func(prefix string) bool {
		return strings.HasPrefix(title, prefix) || strings.HasPrefix(subtitle, prefix)
	}
	switch {
	case hasPrefix("Erratum"):
		return "erratum"
	case hasPrefix("Addendum"):
		return "addendum"
	case hasPrefix("Publisher's Note"):
		return "editorial note"
	default:
		return "publication"
	}
}

// issued is the earliest of print and online publication, which is what the
// API reports in the issued field.
func (p *CrossrefParser) issued() dateutil.PartialDate {
	if len(p.record.Issued.DateParts) == 0 {
		return dateutil.PartialDate{}
	}
	var buf [3]int
	copy(buf[:], p.record.Issued.DateParts[0])
	d, err := dateutil.FromInts(buf[0], buf[1], buf[2])
	if err != nil {
		return dateutil.PartialDate{}
	}
	return d
}

func (p *CrossrefParser) publicationInfo(docType, material string) hep.PublicationInfo {
	info := hep.PublicationInfo{
		Artid:         p.record.ArticleNumber,
		JournalIssue:  p.record.Issue,
		JournalVolume: p.record.Volume,
		Year:          p.issued().Year,
		Material:      material,
		ParentISBN:    first(p.record.ISBN),
	}
	// For book chapters the container is the book, not a journal.
	if docType != "book chapter" {
		info.JournalTitle = first(p.record.ContainerTitle)
	}
	pageStart, pageEnd, _ := strings.Cut(p.record.Page, "-")
	info.PageStart = pageStart
	info.PageEnd = pageEnd
	return info
}

func (p *CrossrefParser) parseAuthor(b *Builder, author crossref.Author) hep.Author {
	var parts []string
	for _, part := range []string{author.Family, author.Given} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	var affiliations []string
	for _, aff := range author.Affiliation {
		affiliations = append(affiliations, aff.Name)
	}
	var ids []hep.ID
	if orcid := cleanORCID(author.ORCID); orcid != "" {
		ids = append(ids, hep.ID{Schema: "ORCID", Value: orcid})
	}
	return b.MakeAuthor(strings.Join(parts, ", "), affiliations, nil, ids)
}

func parseCrossrefReference(ref crossref.Reference) hep.Reference {
	rb := NewReferenceBuilder()
	rb.SetJournalTitle(ref.JournalTitle)
	rb.SetJournalVolume(ref.Volume)
	rb.SetJournalIssue(ref.Issue)
	rb.SetPageStart(ref.FirstPage)
	rb.SetYear(ref.Year)
	rb.AddTitle(ref.ArticleTitle)
	rb.AddUID(ref.ISBN)
	rb.AddUID(ref.DOI)
	rb.AddAuthor(ref.Author)
	rb.AddRawReference(ref.Unstructured)
	return rb.Reference()
}
