package convert

import (
	"fmt"
	"path"
	"strings"

	"github.com/inspirehep/hepkit/schema/hep"
)

// Builder accumulates canonical substructures and finishes them into a HEP
// record. Add and Set calls are additive and order independent, with one
// exception: the document type default is only resolved in Record, after all
// classification tags have been seen. A Builder belongs to exactly one
// in-flight parse and must not be shared.
type Builder struct {
	source string
	rec    hep.Record
}

// NewBuilder returns a builder that stamps the given source onto every
// substructure that carries provenance, unless overridden per call.
func NewBuilder(source string) *Builder {
	return &Builder{source: source}
}

// Source returns the default provenance tag of this builder.
func (b *Builder) Source() string {
	return b.source
}

func (b *Builder) sourceOr(source string) string {
	if source != "" {
		return source
	}
	return b.source
}

// AddTitle appends a title; nothing is added when both title and subtitle
// are empty.
func (b *Builder) AddTitle(title, subtitle, source string) {
	title = collapseWhitespace(title)
	subtitle = collapseWhitespace(subtitle)
	if title == "" && subtitle == "" {
		return
	}
	b.rec.Titles = append(b.rec.Titles, hep.Title{
		Title:    title,
		Subtitle: subtitle,
		Source:   b.sourceOr(source),
	})
}

// AddAbstract appends an abstract.
func (b *Builder) AddAbstract(abstract, source string) {
	abstract = strings.TrimSpace(abstract)
	if abstract == "" {
		return
	}
	b.rec.Abstracts = append(b.rec.Abstracts, hep.SourcedValue{
		Value:  abstract,
		Source: b.sourceOr(source),
	})
}

// MakeAuthor assembles an author substructure. Empty affiliations, emails
// and ids are dropped; the full name is used as is, the caller decides
// whether it is the structured "surname, given names" form or an
// unstructured fallback.
func (b *Builder) MakeAuthor(fullName string, rawAffiliations []string, emails []string, ids []hep.ID) hep.Author {
	author := hep.Author{FullName: collapseWhitespace(fullName)}
	for _, aff := range rawAffiliations {
		aff = collapseWhitespace(aff)
		if aff == "" {
			continue
		}
		author.RawAffiliations = append(author.RawAffiliations, hep.Affiliation{
			Value:  aff,
			Source: b.source,
		})
	}
	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		author.Emails = append(author.Emails, email)
	}
	for _, id := range ids {
		if id.Value == "" {
			continue
		}
		author.IDs = append(author.IDs, id)
	}
	return author
}

// AddAuthor appends an author, preserving source document order.
func (b *Builder) AddAuthor(author hep.Author) {
	if author.FullName == "" {
		return
	}
	b.rec.Authors = append(b.rec.Authors, author)
}

// AddArxivEprint appends an arXiv identifier.
func (b *Builder) AddArxivEprint(value string, categories []string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.rec.ArxivEprints = append(b.rec.ArxivEprints, hep.ArxivEprint{
		Value:      value,
		Categories: categories,
	})
}

// AddDOI appends a DOI; material defaults to "publication".
func (b *Builder) AddDOI(doi, material, source string) {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return
	}
	if material == "" {
		material = "publication"
	}
	b.rec.DOIs = append(b.rec.DOIs, hep.DOI{
		Value:    doi,
		Material: material,
		Source:   b.sourceOr(source),
	})
}

// AddDocumentType appends a document type tag. Empty values are ignored so
// that unmapped source vocabularies fall through to the default.
func (b *Builder) AddDocumentType(documentType string) {
	if documentType == "" {
		return
	}
	b.rec.DocumentType = append(b.rec.DocumentType, documentType)
}

// AddPublicationType appends a publication type tag.
func (b *Builder) AddPublicationType(publicationType string) {
	if publicationType == "" {
		return
	}
	b.rec.PublicationType = append(b.rec.PublicationType, publicationType)
}

// AddCollaboration appends a collaboration.
func (b *Builder) AddCollaboration(collaboration string) {
	collaboration = strings.TrimSpace(collaboration)
	if collaboration == "" {
		return
	}
	b.rec.Collaborations = append(b.rec.Collaborations, hep.Collaboration{Value: collaboration})
}

// AddImprintDate appends an imprint; the date may be partial.
func (b *Builder) AddImprintDate(date string) {
	date = strings.TrimSpace(date)
	if date == "" {
		return
	}
	b.rec.Imprints = append(b.rec.Imprints, hep.Imprint{Date: date})
}

// AddCopyright appends a copyright statement.
func (b *Builder) AddCopyright(holder string, year int, statement, material string) {
	if holder == "" && year == 0 && statement == "" {
		return
	}
	b.rec.Copyright = append(b.rec.Copyright, hep.Copyright{
		Holder:    holder,
		Year:      year,
		Statement: statement,
		Material:  material,
	})
}

// AddLicense appends a license; nothing is added when neither a URL nor a
// statement is known.
func (b *Builder) AddLicense(url, license, imposing, material string) {
	if url == "" && license == "" {
		return
	}
	b.rec.License = append(b.rec.License, hep.License{
		URL:      url,
		License:  license,
		Imposing: imposing,
		Material: material,
	})
}

// AddPublicNote appends a public note.
func (b *Builder) AddPublicNote(value, source string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.rec.PublicNotes = append(b.rec.PublicNotes, hep.SourcedValue{
		Value:  value,
		Source: b.sourceOr(source),
	})
}

// AddPrivateNote appends a private note.
func (b *Builder) AddPrivateNote(value, source string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.rec.PrivateNotes = append(b.rec.PrivateNotes, hep.SourcedValue{
		Value:  value,
		Source: b.sourceOr(source),
	})
}

// AddPublicationInfo sets the publication info. Absence of any
// journal-identifying subfield means the record carries no publication_info
// key at all, never an empty entry.
func (b *Builder) AddPublicationInfo(info hep.PublicationInfo) {
	if info.Empty() {
		return
	}
	b.rec.PublicationInfo = append(b.rec.PublicationInfo, info)
}

// AddReportNumber appends a report number.
func (b *Builder) AddReportNumber(value, source string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.rec.ReportNumbers = append(b.rec.ReportNumbers, hep.ReportNumber{
		Value:  value,
		Source: b.sourceOr(source),
	})
}

// AddExternalSystemIdentifier appends an identifier of the record in an
// external system.
func (b *Builder) AddExternalSystemIdentifier(value, schema string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.rec.ExternalSystemIdentifiers = append(b.rec.ExternalSystemIdentifiers, hep.ExternalID{
		Value:  value,
		Schema: schema,
	})
}

// AddKeyword appends a keyword.
func (b *Builder) AddKeyword(value, schema, source string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.rec.Keywords = append(b.rec.Keywords, hep.Keyword{
		Value:  value,
		Schema: schema,
		Source: b.sourceOr(source),
	})
}

// AddReference appends a reference list entry.
func (b *Builder) AddReference(ref hep.Reference) {
	b.rec.References = append(b.rec.References, ref)
}

// AddURL appends a URL.
func (b *Builder) AddURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}
	b.rec.URLs = append(b.rec.URLs, hep.URL{Value: url})
}

// AddDocument appends an attached file. The key must be unique within the
// record; when missing it is derived from the URL basename, and clashing
// keys get a numeric prefix.
func (b *Builder) AddDocument(doc hep.Document) {
	if doc.URL == "" && doc.Key == "" {
		return
	}
	if doc.Key == "" {
		doc.Key = path.Base(doc.URL)
	}
	taken := make(map[string]bool, len(b.rec.Documents))
	for _, d := range b.rec.Documents {
		taken[d.Key] = true
	}
	for i := 2; taken[doc.Key]; i++ {
		doc.Key = fmt.Sprintf("%d_%s", i, doc.Key)
	}
	b.rec.Documents = append(b.rec.Documents, doc)
}

// SetCiteable marks the record as citeable or not.
func (b *Builder) SetCiteable(v bool) { b.rec.Citeable = &v }

// SetCore marks the record as belonging to the core collection or not.
func (b *Builder) SetCore(v bool) { b.rec.Core = &v }

// SetRefereed marks the record as refereed or not.
func (b *Builder) SetRefereed(v bool) { b.rec.Refereed = &v }

// SetWithdrawn marks the record as withdrawn or not.
func (b *Builder) SetWithdrawn(v bool) { b.rec.Withdrawn = &v }

// SetNumberOfPages sets the page count; non-positive values are dropped.
func (b *Builder) SetNumberOfPages(n int) {
	if n <= 0 {
		return
	}
	b.rec.NumberOfPages = n
}

// SetPreprintDate sets the preprint date.
func (b *Builder) SetPreprintDate(date string) {
	date = strings.TrimSpace(date)
	if date == "" {
		return
	}
	b.rec.PreprintDate = date
}

// SetAcquisitionSource sets the harvest provenance.
func (b *Builder) SetAcquisitionSource(as hep.AcquisitionSource) {
	b.rec.AcquisitionSource = &as
}

// Record finishes the accumulated fields into a canonical record, applying
// the derivation rules: a record without any document type classification
// becomes an "article".
func (b *Builder) Record() hep.Record {
	rec := b.rec
	if len(rec.DocumentType) == 0 {
		rec.DocumentType = []string{"article"}
	}
	return rec
}
