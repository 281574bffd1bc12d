package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspirehep/hepkit/convert"
	"github.com/inspirehep/hepkit/schema/crawler"
	"github.com/inspirehep/hepkit/schema/hep"
)

func TestItemToHepPassthrough(t *testing.T) {
	item := &Item{
		RecordFormat: convert.FormatHep,
		HepRecord: &hep.Record{
			Titles:       []hep.Title{{Title: "A title", Source: "desy"}},
			DocumentType: []string{"article"},
			Documents: []hep.Document{
				{URL: "http://example.com/fulltext.pdf"},
			},
		},
	}
	files := []convert.DownloadedFile{
		{URL: "http://example.com/fulltext.pdf", Path: "/data/fulltext.pdf"},
	}
	rec, err := item.ToHep(files)
	require.NoError(t, err)
	require.Len(t, rec.Documents, 1)
	assert.Equal(t, "/data/fulltext.pdf", rec.Documents[0].URL)
	assert.Equal(t, "http://example.com/fulltext.pdf", rec.Documents[0].OldURL)
	assert.Equal(t, "fulltext.pdf", rec.Documents[0].Key)
}

func TestItemToHepLeavesInputAlone(t *testing.T) {
	in := &hep.Record{
		Titles:       []hep.Title{{Title: "A title", Source: "desy"}},
		DocumentType: []string{"article"},
		Documents: []hep.Document{
			{URL: "http://example.com/fulltext.pdf"},
		},
	}
	item := &Item{RecordFormat: convert.FormatHep, HepRecord: in}
	files := []convert.DownloadedFile{
		{URL: "http://example.com/fulltext.pdf", Path: "/data/fulltext.pdf"},
	}
	rec, err := item.ToHep(files)
	require.NoError(t, err)
	assert.Equal(t, "/data/fulltext.pdf", rec.Documents[0].URL)
	// The input record keeps its original document list.
	assert.Equal(t, "http://example.com/fulltext.pdf", in.Documents[0].URL)
	assert.Empty(t, in.Documents[0].OldURL)
	assert.Empty(t, in.Documents[0].Key)
}

func TestItemToHepCrawlerFormat(t *testing.T) {
	item := &Item{
		RecordFormat: convert.FormatCrawler,
		Source:       "WSP",
		CrawlerRecord: &crawler.Record{
			Title:        "Dual systems of algebraic iterated function systems",
			JournalTitle: "Advances in Mathematics",
			JournalYear:  "2017",
			AcquisitionSource: crawler.AcquisitionSource{
				Method:           "hepcrawl",
				Date:             "2017-04-03T10:26:40.365216",
				Source:           "WSP",
				SubmissionNumber: "5652c7f6190f11e79e8000224dabeaad",
			},
		},
	}
	rec, err := item.ToHep(nil)
	require.NoError(t, err)
	require.Len(t, rec.Titles, 1)
	assert.Equal(t, "Dual systems of algebraic iterated function systems", rec.Titles[0].Title)
	require.Len(t, rec.PublicationInfo, 1)
	assert.Equal(t, 2017, rec.PublicationInfo[0].Year)
	assert.Equal(t, []string{"article"}, rec.DocumentType)
	require.NotNil(t, rec.AcquisitionSource)
	assert.Equal(t, "WSP", rec.AcquisitionSource.Source)
}

func TestItemToHepUnknownFormat(t *testing.T) {
	item := &Item{RecordFormat: "marcxml"}
	_, err := item.ToHep(nil)
	assert.ErrorIs(t, err, convert.ErrUnknownRecordFormat)
}

func TestReportAdd(t *testing.T) {
	var report Report
	report.Add(hep.Record{DocumentType: []string{"article"}}, nil)
	report.Add(hep.Record{}, errors.New("boom"))
	report.Add(hep.Record{}, convert.ErrSkipNoTitle)
	assert.Len(t, report.Records, 1)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "boom", report.Errors[0].Exception)
	assert.NotEmpty(t, report.Errors[0].Traceback)
}

func TestValidate(t *testing.T) {
	valid := &hep.Record{
		Titles:       []hep.Title{{Title: "A title", Source: "desy"}},
		DocumentType: []string{"article"},
		AcquisitionSource: &hep.AcquisitionSource{
			Method:           "hepcrawl",
			Date:             "2017-04-03",
			Source:           "desy",
			SubmissionNumber: "1",
		},
	}
	assert.NoError(t, Validate(valid))

	missing := &hep.Record{
		Titles:       []hep.Title{{Title: "A title"}},
		DocumentType: []string{"article"},
	}
	assert.Error(t, Validate(missing))
}
