package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inspirehep/hepkit/schema/crossref"
	"github.com/inspirehep/hepkit/schema/hep"
)

func crossrefResponse(work crossref.Work) *crossref.Response {
	return &crossref.Response{
		Status:      "ok",
		MessageType: "work",
		Message:     work,
	}
}

func TestCrossrefParse(t *testing.T) {
	resp := crossrefResponse(crossref.Work{
		Type:           "journal-article",
		DOI:            "10.1103/physrevd.97.112006",
		Source:         "Crossref",
		Title:          []string{"Measurement of the CKM angle"},
		ContainerTitle: []string{"Physical Review D"},
		Volume:         "97",
		Issue:          "11",
		Page:           "112006-112016",
		Publisher:      "American Physical Society",
		Issued:         crossref.DateField{DateParts: []crossref.DatePart{{2018, 6, 14}}},
		Author: []crossref.Author{
			{
				Family:      "Aaij",
				Given:       "R.",
				ORCID:       "http://orcid.org/0000-0002-1825-0097",
				Affiliation: []crossref.Affiliation{{Name: "CERN"}},
			},
		},
		License: []crossref.License{{URL: "https://creativecommons.org/licenses/by/4.0/"}},
	})
	record, err := NewCrossrefParser(resp, "").Parse()
	if err != nil {
		t.Fatal(err)
	}
	wantAuthors := []hep.Author{{
		FullName:        "Aaij, R.",
		RawAffiliations: []hep.Affiliation{{Value: "CERN", Source: "Crossref"}},
		IDs:             []hep.ID{{Schema: "ORCID", Value: "0000-0002-1825-0097"}},
	}}
	if diff := cmp.Diff(wantAuthors, record.Authors); diff != "" {
		t.Errorf("authors mismatch (-want +got):\n%s", diff)
	}
	wantInfo := []hep.PublicationInfo{{
		JournalTitle:  "Physical Review D",
		JournalVolume: "97",
		JournalIssue:  "11",
		PageStart:     "112006",
		PageEnd:       "112016",
		Year:          2018,
		Material:      "publication",
	}}
	if diff := cmp.Diff(wantInfo, record.PublicationInfo); diff != "" {
		t.Errorf("publication_info mismatch (-want +got):\n%s", diff)
	}
	wantImprints := []hep.Imprint{{Date: "2018-06-14"}}
	if diff := cmp.Diff(wantImprints, record.Imprints); diff != "" {
		t.Errorf("imprints mismatch (-want +got):\n%s", diff)
	}
	wantLicense := []hep.License{{
		URL:      "https://creativecommons.org/licenses/by/4.0/",
		Imposing: "American Physical Society",
		Material: "publication",
	}}
	if diff := cmp.Diff(wantLicense, record.License); diff != "" {
		t.Errorf("license mismatch (-want +got):\n%s", diff)
	}
	if !cmp.Equal(record.DocumentType, []string{"article"}) {
		t.Errorf("document_type: got %v", record.DocumentType)
	}
}

func TestCrossrefMaterial(t *testing.T) {
	testCases := []struct {
		title string
		want  string
	}{
		{"Erratum to: Search for dark matter", "erratum"},
		{"Addendum: Measurement of the top mass", "addendum"},
		{"Publisher's Note: Charm production", "editorial note"},
		{"Measurement of the top mass", "publication"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			resp := crossrefResponse(crossref.Work{
				Type:  "journal-article",
				DOI:   "10.1000/test",
				Title: []string{tc.title},
			})
			record, err := NewCrossrefParser(resp, "Crossref").Parse()
			if err != nil {
				t.Fatal(err)
			}
			if got := record.DOIs[0].Material; got != tc.want {
				t.Errorf("material: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCrossrefBookChapter(t *testing.T) {
	resp := crossrefResponse(crossref.Work{
		Type:           "book-chapter",
		DOI:            "10.1007/978-3-319-22617-0_2",
		Title:          []string{"Inflationary cosmology"},
		ContainerTitle: []string{"Lecture Notes in Physics"},
		ISBN:           []string{"9783319226163"},
		Page:           "31-59",
	})
	record, err := NewCrossrefParser(resp, "Springer").Parse()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(record.DocumentType, []string{"book chapter"}) {
		t.Errorf("document_type: got %v", record.DocumentType)
	}
	info := record.PublicationInfo[0]
	// The container of a book chapter is the book, not a journal.
	if info.JournalTitle != "" {
		t.Errorf("journal_title should be empty, got %q", info.JournalTitle)
	}
	if info.ParentISBN != "9783319226163" {
		t.Errorf("parent_isbn: got %q", info.ParentISBN)
	}
}

func TestCrossrefUnknownType(t *testing.T) {
	resp := crossrefResponse(crossref.Work{Type: "peer-review"})
	if _, err := NewCrossrefParser(resp, "Crossref").Parse(); err == nil {
		t.Error("expected an error for unknown work type")
	}
}

func TestCrossrefNoTitle(t *testing.T) {
	resp := crossrefResponse(crossref.Work{Type: "journal-article", DOI: "10.1000/test"})
	if _, err := NewCrossrefParser(resp, "Crossref").Parse(); err != ErrSkipNoTitle {
		t.Errorf("got %v, want ErrSkipNoTitle", err)
	}
}

func TestCrossrefReferences(t *testing.T) {
	resp := crossrefResponse(crossref.Work{
		Type:  "journal-article",
		DOI:   "10.1000/test",
		Title: []string{"Multi-messenger observations of a binary neutron star merger"},
		Reference: []crossref.Reference{
			{
				JournalTitle: "Phys. Rev. Lett.",
				Volume:       "119",
				FirstPage:    "161101",
				Year:         "2017",
				ArticleTitle: "Observation of gravitational waves",
				DOI:          "10.1103/PhysRevLett.119.161101",
				Author:       "Abbott, B. P.",
			},
			{
				Unstructured: "M. Tanabashi et al. (Particle Data Group), Phys. Rev. D 98, 030001 (2018).",
			},
		},
	})
	record, err := NewCrossrefParser(resp, "Crossref").Parse()
	if err != nil {
		t.Fatal(err)
	}
	want := []hep.Reference{
		{
			Title:         "Observation of gravitational waves",
			Authors:       []string{"Abbott, B. P."},
			JournalTitle:  "Phys. Rev. Lett.",
			JournalVolume: "119",
			PageStart:     "161101",
			Year:          2017,
			DOI:           "10.1103/physrevlett.119.161101",
		},
		{
			RawRef: "M. Tanabashi et al. (Particle Data Group), Phys. Rev. D 98, 030001 (2018).",
		},
	}
	if diff := cmp.Diff(want, record.References); diff != "" {
		t.Errorf("references mismatch (-want +got):\n%s", diff)
	}
}
