// Package hep contains the canonical bibliographic record all parsers
// converge to. The shape follows the HEP literature schema: repeatable
// substructures are always lists of uniformly shaped structs, and provenance
// ("source") is attached at the most granular level.
package hep

// Title of a record. The first title in a record is the primary one.
type Title struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Affiliation is a raw, unresolved affiliation string.
type Affiliation struct {
	Value  string `json:"value,omitempty"`
	Source string `json:"source,omitempty"`
}

// ID is an identifier of a person in an external scheme, e.g. ORCID.
type ID struct {
	Schema string `json:"schema,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Author of a record. FullName is "surname, given names[, suffix]" when a
// structured split is available, otherwise the unstructured name string.
type Author struct {
	FullName        string        `json:"full_name,omitempty"`
	RawAffiliations []Affiliation `json:"raw_affiliations,omitempty"`
	Emails          []string      `json:"emails,omitempty"`
	IDs             []ID          `json:"ids,omitempty"`
}

// SourcedValue is a plain value with provenance, used for abstracts and
// notes.
type SourcedValue struct {
	Value  string `json:"value,omitempty"`
	Source string `json:"source,omitempty"`
}

// ArxivEprint is an arXiv identifier with its category terms.
type ArxivEprint struct {
	Value      string   `json:"value,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// DOI with the material it refers to, "publication" if not stated otherwise.
type DOI struct {
	Value    string `json:"value,omitempty"`
	Material string `json:"material,omitempty"`
	Source   string `json:"source,omitempty"`
}

// License information, either a URL or a license statement or both.
type License struct {
	URL      string `json:"url,omitempty"`
	License  string `json:"license,omitempty"`
	Imposing string `json:"imposing,omitempty"`
	Material string `json:"material,omitempty"`
}

// Collaboration, e.g. "ATLAS".
type Collaboration struct {
	Value string `json:"value,omitempty"`
}

// Imprint holds the publication date, possibly partial (year or year-month).
type Imprint struct {
	Date string `json:"date,omitempty"`
}

// Copyright statement attached to the record.
type Copyright struct {
	Holder    string `json:"holder,omitempty"`
	Year      int    `json:"year,omitempty"`
	Statement string `json:"statement,omitempty"`
	Material  string `json:"material,omitempty"`
}

// PublicationInfo describes where a record was published. A record carries at
// most one entry, and only if at least one journal-identifying field is set.
type PublicationInfo struct {
	JournalTitle    string `json:"journal_title,omitempty"`
	JournalVolume   string `json:"journal_volume,omitempty"`
	JournalIssue    string `json:"journal_issue,omitempty"`
	Artid           string `json:"artid,omitempty"`
	PageStart       string `json:"page_start,omitempty"`
	PageEnd         string `json:"page_end,omitempty"`
	PubinfoFreetext string `json:"pubinfo_freetext,omitempty"`
	Year            int    `json:"year,omitempty"`
	Material        string `json:"material,omitempty"`
	ParentISBN      string `json:"parent_isbn,omitempty"`
	Note            string `json:"note,omitempty"`
}

// Empty returns true if no journal-identifying subfield is set. An empty
// PublicationInfo must not appear on a record at all.
func (p PublicationInfo) Empty() bool {
	return p.JournalTitle == "" &&
		p.JournalVolume == "" &&
		p.JournalIssue == "" &&
		p.Artid == "" &&
		p.PageStart == "" &&
		p.PageEnd == "" &&
		p.PubinfoFreetext == "" &&
		p.Note == "" &&
		p.Year == 0
}

// ReportNumber, e.g. "FERMILAB-PUB-17-088".
type ReportNumber struct {
	Value  string `json:"value,omitempty"`
	Source string `json:"source,omitempty"`
}

// Keyword with an optional classification schema, e.g. "PACS".
type Keyword struct {
	Value  string `json:"value,omitempty"`
	Schema string `json:"schema,omitempty"`
	Source string `json:"source,omitempty"`
}

// Reference is a single entry of the reference list of a record. Unparseable
// references keep their raw string only.
type Reference struct {
	Title         string   `json:"title,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	JournalTitle  string   `json:"journal_title,omitempty"`
	JournalVolume string   `json:"journal_volume,omitempty"`
	JournalIssue  string   `json:"journal_issue,omitempty"`
	PageStart     string   `json:"page_start,omitempty"`
	Year          int      `json:"year,omitempty"`
	DOI           string   `json:"doi,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	RawRef        string   `json:"raw_ref,omitempty"`
}

// Document is a file attached to a record. Key is unique within a record and
// derived from the URL basename when not set explicitly. After the download
// stage reconciled a document with a local file, URL points to the local path
// and OldURL preserves the original remote location.
type Document struct {
	Key         string `json:"key,omitempty"`
	URL         string `json:"url,omitempty"`
	OriginalURL string `json:"original_url,omitempty"`
	OldURL      string `json:"old_url,omitempty"`
	Description string `json:"description,omitempty"`
	Fulltext    bool   `json:"fulltext,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	Material    string `json:"material,omitempty"`
}

// URL attached to a record.
type URL struct {
	Value string `json:"value,omitempty"`
}

// ExternalID identifies the record in an external system, e.g. the OSTI id.
type ExternalID struct {
	Value  string `json:"value,omitempty"`
	Schema string `json:"schema,omitempty"`
}

// AcquisitionSource records the provenance of a harvest. It is mandatory on
// every finished record.
type AcquisitionSource struct {
	Method           string `json:"method,omitempty" validate:"required"`
	Date             string `json:"date,omitempty" validate:"required"`
	Source           string `json:"source,omitempty" validate:"required"`
	SubmissionNumber string `json:"submission_number,omitempty" validate:"required"`
}

// Record is the canonical record produced by the parsers and the crawler
// format converter. Downstream validation treats this shape as a contract.
type Record struct {
	Titles                    []Title            `json:"titles,omitempty" validate:"min=1,dive"`
	Authors                   []Author           `json:"authors,omitempty"`
	Abstracts                 []SourcedValue     `json:"abstracts,omitempty"`
	PublicNotes               []SourcedValue     `json:"public_notes,omitempty"`
	PrivateNotes              []SourcedValue     `json:"private_notes,omitempty"`
	ArxivEprints              []ArxivEprint      `json:"arxiv_eprints,omitempty"`
	DOIs                      []DOI              `json:"dois,omitempty"`
	License                   []License          `json:"license,omitempty"`
	Collaborations            []Collaboration    `json:"collaborations,omitempty"`
	Imprints                  []Imprint          `json:"imprints,omitempty"`
	Copyright                 []Copyright        `json:"copyright,omitempty"`
	PublicationInfo           []PublicationInfo  `json:"publication_info,omitempty" validate:"max=1"`
	ReportNumbers             []ReportNumber     `json:"report_numbers,omitempty"`
	DocumentType              []string           `json:"document_type,omitempty" validate:"min=1"`
	PublicationType           []string           `json:"publication_type,omitempty"`
	Keywords                  []Keyword          `json:"keywords,omitempty"`
	References                []Reference        `json:"references,omitempty"`
	Documents                 []Document         `json:"documents,omitempty"`
	URLs                      []URL              `json:"urls,omitempty"`
	ExternalSystemIdentifiers []ExternalID       `json:"external_system_identifiers,omitempty"`
	NumberOfPages             int                `json:"number_of_pages,omitempty"`
	PreprintDate              string             `json:"preprint_date,omitempty"`
	Citeable                  *bool              `json:"citeable,omitempty"`
	Core                      *bool              `json:"core,omitempty"`
	Refereed                  *bool              `json:"refereed,omitempty"`
	Withdrawn                 *bool              `json:"withdrawn,omitempty"`
	AcquisitionSource         *AcquisitionSource `json:"acquisition_source,omitempty" validate:"required"`
}
