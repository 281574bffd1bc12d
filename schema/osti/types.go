// Package osti contains the report metadata shape returned by the OSTI API.
// Most fields are loosely structured strings: authors come as single strings
// with bracketed affiliations, report numbers as a semicolon separated list
// and page info packed into a free-text "format" field.
package osti

import "encoding/json"

// Record is one document from an OSTI API JSON response.
type Record struct {
	OstiID          json.Number `json:"osti_id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Authors         []string    `json:"authors"`
	ReportNumber    string      `json:"report_number"`
	ProductType     string      `json:"product_type"`
	Format          string      `json:"format"`
	JournalName     string      `json:"journal_name"`
	JournalIssue    string      `json:"journal_issue"`
	JournalVolume   string      `json:"journal_volume"`
	JournalISSN     string      `json:"journal_issn"`
	PublicationDate string      `json:"publication_date"`
	ContributingOrg string      `json:"contributing_org"`
	DOI             string      `json:"doi"`
	Language        string      `json:"language"`
}
