package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inspirehep/hepkit/schema/hep"
	"github.com/inspirehep/hepkit/schema/osti"
)

func TestOSTIParseAuthors(t *testing.T) {
	testCases := []struct {
		about   string
		authors []string
		want    []hep.Author
	}{
		{
			about:   "surname and given names",
			authors: []string{"Smith, John"},
			want:    []hep.Author{{FullName: "Smith, John"}},
		},
		{
			about:   "surname only",
			authors: []string{"Smith"},
			want:    []hep.Author{{FullName: "Smith"}},
		},
		{
			about:   "orcid is normalized to hyphenated form",
			authors: []string{"Tanner, David (ORCID:000000021825009X)"},
			want: []hep.Author{{
				FullName: "Tanner, David",
				IDs:      []hep.ID{{Schema: "ORCID", Value: "0000-0002-1825-009X"}},
			}},
		},
		{
			about:   "bracketed affiliations split on semicolon",
			authors: []string{"Aaij, R. [CERN; Nikhef, Amsterdam]"},
			want: []hep.Author{{
				FullName: "Aaij, R.",
				RawAffiliations: []hep.Affiliation{
					{Value: "CERN", Source: "OSTI"},
					{Value: "Nikhef, Amsterdam", Source: "OSTI"},
				},
			}},
		},
		{
			about:   "et al. is dropped",
			authors: []string{"Smith, John", "et al."},
			want:    []hep.Author{{FullName: "Smith, John"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.about, func(t *testing.T) {
			record, err := NewOSTIParser(&osti.Record{
				Title:   "Axion couplings in heterotic string theory",
				Authors: tc.authors,
			}, "").Parse()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, record.Authors); diff != "" {
				t.Errorf("authors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOSTIAuthorWarnings(t *testing.T) {
	parser := NewOSTIParser(&osti.Record{
		Title:   "Search for dark photons in beam dump data",
		Authors: []string{"Smith, John", "Not really an author string at all {#%@} with extra garbage"},
	}, "")
	record, err := parser.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(record.Authors) != 1 {
		t.Errorf("got %d authors, want 1", len(record.Authors))
	}
	if len(parser.Warnings()) != 1 {
		t.Errorf("got %d warnings, want 1", len(parser.Warnings()))
	}
}

func TestOSTIPageinfo(t *testing.T) {
	testCases := []struct {
		format string
		want   hep.PublicationInfo
	}{
		{
			format: "Medium: ED; Size: p. 3207-3210",
			want:   hep.PublicationInfo{PageStart: "3207", PageEnd: "3210"},
		},
		{
			format: "Medium: X; Size: Article No. 043512",
			want:   hep.PublicationInfo{Artid: "043512"},
		},
		{
			format: "Medium: ED; Size: numerous",
			want:   hep.PublicationInfo{PubinfoFreetext: "numerous"},
		},
		{
			format: "Medium: ED; Size: 12 pages",
			want:   hep.PublicationInfo{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			record, err := NewOSTIParser(&osti.Record{
				Title:       "Axion dark matter from inflation",
				JournalName: "Physical Review D",
				Format:      tc.format,
			}, "").Parse()
			if err != nil {
				t.Fatal(err)
			}
			tc.want.JournalTitle = "Physical Review D"
			if len(record.PublicationInfo) != 1 {
				t.Fatalf("expected one publication_info, got %+v", record.PublicationInfo)
			}
			if diff := cmp.Diff(tc.want, record.PublicationInfo[0]); diff != "" {
				t.Errorf("publication_info mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOSTIReportNumbers(t *testing.T) {
	record, err := NewOSTIParser(&osti.Record{
		Title:        "Parton shower uncertainties in jet substructure",
		ReportNumber: "arXiv:1905.09046; FERMILAB-PUB-19-224-T; MCnet-19-02; A&amp;B-1",
	}, "").Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(record.ArxivEprints) != 1 || record.ArxivEprints[0].Value != "arXiv:1905.09046" {
		t.Errorf("arxiv eprints: got %+v", record.ArxivEprints)
	}
	var values []string
	for _, rn := range record.ReportNumbers {
		values = append(values, rn.Value)
	}
	want := []string{"FERMILAB-PUB-19-224-T", "MCnet-19-02", "A&B-1"}
	if !cmp.Equal(values, want) {
		t.Errorf("report numbers: got %v, want %v", values, want)
	}
	if got := record.ReportNumbers[0].Source; got != "OSTI" {
		t.Errorf("report number source: got %q, want OSTI", got)
	}
}

func TestOSTIDocumentTypes(t *testing.T) {
	testCases := []struct {
		productType string
		want        []string
	}{
		{"Journal Article", []string{"article"}},
		{"Conference", []string{"proceedings"}},
		{"Technical Report", []string{"report"}},
		{"Thesis/Dissertation", []string{"thesis"}},
		{"Dataset", []string{"article"}}, // unmapped types fall back
	}
	for _, tc := range testCases {
		t.Run(tc.productType, func(t *testing.T) {
			record, err := NewOSTIParser(&osti.Record{
				Title:       "Beam dynamics in the main injector",
				ProductType: tc.productType,
			}, "").Parse()
			if err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(record.DocumentType, tc.want) {
				t.Errorf("document_type: got %v, want %v", record.DocumentType, tc.want)
			}
		})
	}
}

func TestOSTINoTitle(t *testing.T) {
	_, err := NewOSTIParser(&osti.Record{OstiID: "1469753"}, "").Parse()
	if err != ErrSkipNoTitle {
		t.Errorf("got %v, want ErrSkipNoTitle", err)
	}
}

func TestOSTIDateAndExternalID(t *testing.T) {
	record, err := NewOSTIParser(&osti.Record{
		OstiID:          "1469753",
		Title:           "Measurement of the inclusive jet cross section",
		PublicationDate: "2018-06-01T00:00:00Z",
		DOI:             "10.1103/physrevd.97.112006",
	}, "").Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(record.Imprints) != 1 || record.Imprints[0].Date != "2018-06-01" {
		t.Errorf("imprints: got %+v", record.Imprints)
	}
	want := []hep.ExternalID{{Value: "1469753", Schema: "OSTI"}}
	if !cmp.Equal(record.ExternalSystemIdentifiers, want) {
		t.Errorf("external ids: got %+v", record.ExternalSystemIdentifiers)
	}
	if len(record.PublicationInfo) != 1 || record.PublicationInfo[0].Year != 2018 {
		t.Errorf("publication year: got %+v", record.PublicationInfo)
	}
	if len(record.DOIs) != 1 || record.DOIs[0].Value != "10.1103/physrevd.97.112006" {
		t.Errorf("dois: got %+v", record.DOIs)
	}
}
