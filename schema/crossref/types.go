// Package crossref contains the parts of a Crossref REST API works document
// that the parser consumes, cf.
// https://www.crossref.org/documentation/retrieve-metadata/rest-api/.
package crossref

// DatePart is a [year, month, day] prefix, shorter when less is known.
type DatePart []int

// Affiliation of an author, name only.
type Affiliation struct {
	Name string `json:"name,omitempty"`
}

// Author is a crossref author or editor.
type Author struct {
	Given       string        `json:"given,omitempty"`
	Family      string        `json:"family,omitempty"`
	Sequence    string        `json:"sequence,omitempty"`
	ORCID       string        `json:"ORCID,omitempty"`
	Affiliation []Affiliation `json:"affiliation,omitempty"`
}

// License entry of a work.
type License struct {
	URL            string `json:"URL,omitempty"`
	ContentVersion string `json:"content-version,omitempty"`
	DelayInDays    int    `json:"delay-in-days,omitempty"`
}

// Reference is one entry of the reference list of a work.
type Reference struct {
	Key          string `json:"key,omitempty"`
	JournalTitle string `json:"journal-title,omitempty"`
	Volume       string `json:"volume,omitempty"`
	Issue        string `json:"issue,omitempty"`
	FirstPage    string `json:"first-page,omitempty"`
	Year         string `json:"year,omitempty"`
	ArticleTitle string `json:"article-title,omitempty"`
	ISBN         string `json:"ISBN,omitempty"`
	DOI          string `json:"DOI,omitempty"`
	Author       string `json:"author,omitempty"`
	Unstructured string `json:"unstructured,omitempty"`
}

// Work is the message part of a works API document.
type Work struct {
	Abstract       string      `json:"abstract,omitempty"`
	ArticleNumber  string      `json:"article-number,omitempty"`
	Author         []Author    `json:"author,omitempty"`
	ContainerTitle []string    `json:"container-title,omitempty"`
	DOI            string      `json:"DOI,omitempty"`
	ISBN           []string    `json:"ISBN,omitempty"`
	ISSN           []string    `json:"ISSN,omitempty"`
	Issue          string      `json:"issue,omitempty"`
	Issued         DateField   `json:"issued,omitempty"`
	License        []License   `json:"license,omitempty"`
	Page           string      `json:"page,omitempty"`
	Publisher      string      `json:"publisher,omitempty"`
	Reference      []Reference `json:"reference,omitempty"`
	Source         string      `json:"source,omitempty"`
	Subtitle       []string    `json:"subtitle,omitempty"`
	Title          []string    `json:"title,omitempty"`
	Type           string      `json:"type,omitempty"`
	Volume         string      `json:"volume,omitempty"`
}

// DateField groups crossref date parts.
type DateField struct {
	DateParts []DatePart `json:"date-parts,omitempty"`
}

// Response is a single work response from the REST API, the record shape the
// crossref harvester hands to the parser.
type Response struct {
	Status         string `json:"status,omitempty"`
	MessageType    string `json:"message-type,omitempty"`
	MessageVersion string `json:"message-version,omitempty"`
	Message        Work   `json:"message,omitempty"`
}
