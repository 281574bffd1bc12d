// Package crawler contains the intermediate record shape produced by the
// tag-based spiders. It is flatter than the HEP schema: journal info, title,
// abstract and copyright live in top level fields until Normalize moves them
// into the nested lists the converter consumes.
package crawler

// Affiliation as captured by a spider, a raw string.
type Affiliation struct {
	Value  string `json:"value,omitempty"`
	Source string `json:"source,omitempty"`
}

// Author in crawler format.
type Author struct {
	FullName     string        `json:"full_name,omitempty"`
	Affiliations []Affiliation `json:"affiliations,omitempty"`
	Emails       []string      `json:"emails,omitempty"`
}

// DOI in crawler format.
type DOI struct {
	Value    string `json:"value,omitempty"`
	Material string `json:"material,omitempty"`
	Source   string `json:"source,omitempty"`
}

// SourcedValue is a value with provenance.
type SourcedValue struct {
	Value  string `json:"value,omitempty"`
	Source string `json:"source,omitempty"`
}

// ArxivEprint in crawler format.
type ArxivEprint struct {
	Value      string   `json:"value,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// License in crawler format.
type License struct {
	URL      string `json:"url,omitempty"`
	License  string `json:"license,omitempty"`
	Material string `json:"material,omitempty"`
}

// Collaboration in crawler format.
type Collaboration struct {
	Value string `json:"value,omitempty"`
}

// Collection is a free-text classification tag. Recognized tags are turned
// into document types, publication types and the citeable, core, refereed and
// withdrawn flags during conversion.
type Collection struct {
	Primary string `json:"primary,omitempty"`
}

// Title in crawler format, produced by Normalize.
type Title struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Imprint in crawler format, produced by Normalize.
type Imprint struct {
	Date string `json:"date,omitempty"`
}

// Copyright in crawler format, produced by Normalize.
type Copyright struct {
	Holder    string `json:"holder,omitempty"`
	Year      int    `json:"year,omitempty"`
	Statement string `json:"statement,omitempty"`
	Material  string `json:"material,omitempty"`
}

// PublicationInfo in crawler format, produced by Normalize.
type PublicationInfo struct {
	JournalTitle    string `json:"journal_title,omitempty"`
	JournalVolume   string `json:"journal_volume,omitempty"`
	JournalIssue    string `json:"journal_issue,omitempty"`
	Artid           string `json:"artid,omitempty"`
	PageStart       string `json:"page_start,omitempty"`
	PageEnd         string `json:"page_end,omitempty"`
	Note            string `json:"note,omitempty"`
	PubinfoFreetext string `json:"pubinfo_freetext,omitempty"`
	Material        string `json:"pubinfo_material,omitempty"`
	Year            int    `json:"year,omitempty"`
}

// Document attached to a crawler record. Same shape as the documents in the
// HEP schema; URLs still point at the remote location at this stage.
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

// AcquisitionSource is the harvest provenance attached by the spider.
type AcquisitionSource struct {
	Method           string `json:"method,omitempty"`
	Date             string `json:"date,omitempty"`
	Source           string `json:"source,omitempty"`
	SubmissionNumber string `json:"submission_number,omitempty"`
}

// Record is a single crawler format record, either fresh from a spider (flat
// fields set) or normalized (nested lists set).
type Record struct {
	// Flat fields, as populated by the spiders.
	Title              string   `json:"title,omitempty"`
	Subtitle           string   `json:"subtitle,omitempty"`
	Abstract           string   `json:"abstract,omitempty"`
	Source             string   `json:"source,omitempty"`
	DatePublished      string   `json:"date_published,omitempty"`
	PreprintDate       string   `json:"preprint_date,omitempty"`
	CopyrightHolder    string   `json:"copyright_holder,omitempty"`
	CopyrightYear      int      `json:"copyright_year,omitempty"`
	CopyrightStatement string   `json:"copyright_statement,omitempty"`
	CopyrightMaterial  string   `json:"copyright_material,omitempty"`
	JournalTitle       string   `json:"journal_title,omitempty"`
	JournalVolume      string   `json:"journal_volume,omitempty"`
	JournalYear        string   `json:"journal_year,omitempty"`
	JournalIssue       string   `json:"journal_issue,omitempty"`
	JournalFPage       string   `json:"journal_fpage,omitempty"`
	JournalLPage       string   `json:"journal_lpage,omitempty"`
	JournalArtid       string   `json:"journal_artid,omitempty"`
	JournalDoctype     string   `json:"journal_doctype,omitempty"`
	PubinfoFreetext    string   `json:"pubinfo_freetext,omitempty"`
	PubinfoMaterial    string   `json:"pubinfo_material,omitempty"`
	PageNr             []string `json:"page_nr,omitempty"`

	Authors           []Author          `json:"authors,omitempty"`
	DOIs              []DOI             `json:"dois,omitempty"`
	RelatedArticleDOI []DOI             `json:"related_article_doi,omitempty"`
	ArxivEprints      []ArxivEprint     `json:"arxiv_eprints,omitempty"`
	License           []License         `json:"license,omitempty"`
	Collaborations    []Collaboration   `json:"collaborations,omitempty"`
	PublicNotes       []SourcedValue    `json:"public_notes,omitempty"`
	PrivateNotes      []SourcedValue    `json:"private_notes,omitempty"`
	ReportNumbers     []SourcedValue    `json:"report_numbers,omitempty"`
	Collections       []Collection      `json:"collections,omitempty"`
	URLs              []SourcedValue    `json:"urls,omitempty"`
	Documents         []Document        `json:"documents,omitempty"`
	AcquisitionSource AcquisitionSource `json:"acquisition_source,omitempty"`

	// Nested fields, populated by Normalize.
	Titles          []Title           `json:"titles,omitempty"`
	Abstracts       []SourcedValue    `json:"abstracts,omitempty"`
	Imprints        []Imprint         `json:"imprints,omitempty"`
	Copyright       []Copyright       `json:"copyright,omitempty"`
	PublicationInfo []PublicationInfo `json:"publication_info,omitempty"`
}
