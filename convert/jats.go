package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/inspirehep/hepkit/dateutil"
	"github.com/inspirehep/hepkit/schema/hep"
)

// JatsParser extracts a canonical record from a JATS article. The document is
// loaded once at construction time, Parse then walks the front matter with
// CSS selections. Element and attribute names are matched lowercase, which is
// how JATS writes them anyway.
type JatsParser struct {
	doc    *goquery.Document
	root   *goquery.Selection
	source string
}

// NewJatsParser reads a JATS document. If source is empty, the publisher name
// from the journal metadata is used as provenance.
func NewJatsParser(r io.Reader, source string) (*JatsParser, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	root := doc.Find("article").First()
	if root.Length() == 0 {
		return nil, fmt.Errorf("no article element found")
	}
	p := &JatsParser{doc: doc, root: root, source: source}
	if p.source == "" {
		p.source = collapseWhitespace(root.Find("front publisher-name").First().Text())
	}
	return p, nil
}

// Parse extracts the record.
func (p *JatsParser) Parse() (hep.Record, error) {
	b := NewBuilder(p.source)
	material := p.material()

	b.AddAbstract(p.abstract(), "")
	b.AddTitle(p.title(), p.subtitle(), "")
	holder, year, statement := p.copyright()
	b.AddCopyright(holder, year, statement, material)
	b.AddDocumentType(p.documentType())
	b.AddLicense(p.licenseURL(), p.licenseStatement(), "", material)
	for _, author := range p.authors(b) {
		b.AddAuthor(author)
	}
	if n, ok := maybeInt(p.root.Find("front page-count").First().AttrOr("count", "")); ok {
		b.SetNumberOfPages(n)
	}
	b.AddPublicationInfo(p.publicationInfo(material))
	for _, collab := range p.collaborations() {
		b.AddCollaboration(collab)
	}
	for _, value := range p.root.Find(`front article-id[pub-id-type="doi"]`).Map(selectionText) {
		b.AddDOI(value, material, "")
	}
	if material != "publication" {
		p.root.Find(`front related-article[ext-link-type="doi"]`).Each(func(i int, s *goquery.Selection) {
			b.AddDOI(hrefAttr(s), "", "")
		})
	}
	p.root.Find("front kwd-group").Each(func(i int, group *goquery.Selection) {
		schema := ""
		if strings.Contains(strings.ToLower(group.AttrOr("kwd-group-type", "")), "pacs") {
			schema = "PACS"
		}
		group.Find("kwd").Each(func(i int, kwd *goquery.Selection) {
			b.AddKeyword(collapseWhitespace(kwd.Text()), schema, "")
		})
	})
	if date := p.publicationDate(); !date.IsZero() {
		b.AddImprintDate(date.Dumps())
	}

	rec := b.Record()
	if len(rec.Titles) == 0 {
		return rec, ErrSkipNoTitle
	}
	return rec, nil
}

func selectionText(i int, s *goquery.Selection) string {
	return collapseWhitespace(s.Text())
}

// hrefAttr reads an href, whether bare or in the xlink namespace. The HTML
// parser keeps namespaced attribute names verbatim.
func hrefAttr(s *goquery.Selection) string {
	if href, ok := s.Attr("href"); ok {
		return href
	}
	return s.AttrOr("xlink:href", "")
}

func (p *JatsParser) abstract() string {
	return collapseWhitespace(p.root.Find("front abstract").First().Text())
}

func (p *JatsParser) title() string {
	return p.root.Find("front article-title").First().Text()
}

func (p *JatsParser) subtitle() string {
	return p.root.Find("front subtitle").First().Text()
}

func (p *JatsParser) articleType() string {
	return p.root.AttrOr("article-type", "")
}

// material classifies what the record is about, relative to the original
// publication. Correction variants all map to erratum.
func (p *JatsParser) material() string {
	articleType := p.articleType()
	switch {
	case strings.HasPrefix(articleType, "correc"):
		return "erratum"
	case articleType == "erratum", articleType == "translation",
		articleType == "addendum", articleType == "reprint":
		return articleType
	default:
		return "publication"
	}
}

func (p *JatsParser) documentType() string {
	if p.root.Find("front conference").Length() > 0 {
		return "conference paper"
	}
	return "article"
}

func (p *JatsParser) copyright() (holder string, year int, statement string) {
	holder = collapseWhitespace(p.root.Find("front copyright-holder").First().Text())
	statement = collapseWhitespace(p.root.Find("front copyright-statement").First().Text())
	year, _ = maybeInt(p.root.Find("front copyright-year").First().Text())
	return holder, year, statement
}

func (p *JatsParser) licenseStatement() string {
	return collapseWhitespace(p.root.Find("front license").First().Text())
}

func (p *JatsParser) licenseURL() string {
	if ref := p.root.Find("front license_ref").First(); ref.Length() > 0 {
		return collapseWhitespace(ref.Text())
	}
	license := p.root.Find("front license").First()
	if license.Length() == 0 {
		return ""
	}
	if url := hrefAttr(license); url != "" {
		return url
	}
	return hrefAttr(license.Find("ext-link").First())
}

func (p *JatsParser) authors(b *Builder) []hep.Author {
	var authors []hep.Author
	p.root.Find(`front contrib[contrib-type="author"]`).Each(func(i int, contrib *goquery.Selection) {
		name := p.authorName(contrib)
		if name == "" {
			return
		}
		var affiliations []string
		contrib.Find(`xref[ref-type="aff"]`).Each(func(i int, xref *goquery.Selection) {
			if aff := p.affiliation(xref.AttrOr("rid", "")); aff != "" {
				affiliations = append(affiliations, aff)
			}
		})
		emails := contrib.Find("email").Map(selectionText)
		authors = append(authors, b.MakeAuthor(name, affiliations, emails, nil))
	})
	return authors
}

func (p *JatsParser) authorName(contrib *goquery.Selection) string {
	var parts []string
	for _, sel := range []string{"surname", "given-names", "suffix"} {
		if part := collapseWhitespace(contrib.Find(sel).First().Text()); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		// Unstructured name, take it as is.
		return collapseWhitespace(contrib.Find("string-name").First().Text())
	}
	return strings.Join(parts, ", ")
}

// affiliation resolves an aff element by id, dropping the label marker that
// links it back to the author list.
func (p *JatsParser) affiliation(id string) string {
	if id == "" {
		return ""
	}
	aff := p.doc.Find(fmt.Sprintf("aff[id=%q]", id)).First()
	if aff.Length() == 0 {
		return ""
	}
	clone := aff.Clone()
	clone.Find("label").Remove()
	return collapseWhitespace(clone.Text())
}

func (p *JatsParser) collaborations() []string {
	sel := p.root.Find(`front collab, front contrib[contrib-type="collaboration"], front on-behalf-of`)
	return sel.Map(selectionText)
}

func (p *JatsParser) publicationInfo(material string) hep.PublicationInfo {
	journalTitle := p.root.Find("front journal-meta abbrev-journal-title").First().Text()
	if journalTitle == "" {
		journalTitle = p.root.Find("front journal-meta journal-title").First().Text()
	}
	return hep.PublicationInfo{
		Artid:         collapseWhitespace(p.root.Find("front article-meta elocation-id").First().Text()),
		JournalTitle:  collapseWhitespace(journalTitle),
		JournalIssue:  collapseWhitespace(p.root.Find("front article-meta issue").First().Text()),
		JournalVolume: collapseWhitespace(p.root.Find("front article-meta volume").First().Text()),
		PageStart:     collapseWhitespace(p.root.Find("front article-meta fpage").First().Text()),
		PageEnd:       collapseWhitespace(p.root.Find("front article-meta lpage").First().Text()),
		Year:          p.year(),
		Material:      material,
	}
}

// nodeDate extracts a date from a pub-date or date element: the iso-8601-date
// attribute wins, then the year/month/day children, then a free form
// string-date.
func nodeDate(s *goquery.Selection) dateutil.PartialDate {
	if iso := s.AttrOr("iso-8601-date", ""); iso != "" {
		if d, err := dateutil.Loads(iso); err == nil {
			return d
		}
	}
	year := collapseWhitespace(s.Find("year").First().Text())
	if year != "" {
		d, err := dateutil.FromParts(year,
			collapseWhitespace(s.Find("month").First().Text()),
			collapseWhitespace(s.Find("day").First().Text()))
		if err == nil {
			return d
		}
	}
	if raw := collapseWhitespace(s.Find("string-date").First().Text()); raw != "" {
		if d, err := dateutil.Parse(raw); err == nil {
			return d
		}
	}
	return dateutil.PartialDate{}
}

func isPubDateType(s *goquery.Selection) bool {
	return strings.HasPrefix(s.AttrOr("date-type", ""), "pub")
}

func isOnlineFormat(s *goquery.Selection) bool {
	format := s.AttrOr("publication-format", "")
	return strings.HasPrefix(format, "elec") || strings.HasPrefix(format, "online")
}

// publicationDate is the earliest publication date found in the front matter,
// print or electronic.
func (p *JatsParser) publicationDate() dateutil.PartialDate {
	var dates []dateutil.PartialDate
	p.root.Find("front pub-date, front date").Each(func(i int, s *goquery.Selection) {
		pubType := s.AttrOr("pub-type", "")
		if pubType != "ppub" && pubType != "epub" && !isPubDateType(s) {
			return
		}
		dates = append(dates, nodeDate(s))
	})
	return dateutil.Min(dates)
}

// year is the print publication year. Electronic-only dates do not count, a
// paper may circulate online well before the issue exists.
func (p *JatsParser) year() int {
	var dates []dateutil.PartialDate
	p.root.Find("front pub-date, front date").Each(func(i int, s *goquery.Selection) {
		if s.AttrOr("pub-type", "") == "ppub" {
			dates = append(dates, nodeDate(s))
			return
		}
		if isPubDateType(s) && !isOnlineFormat(s) {
			dates = append(dates, nodeDate(s))
		}
	})
	return dateutil.Min(dates).Year
}
