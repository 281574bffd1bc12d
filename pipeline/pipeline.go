// Package pipeline takes parsed or crawled items the rest of the way to
// validated canonical records: format dispatch, document reconciliation,
// validation and error reporting.
package pipeline

import (
	"fmt"
	"runtime/debug"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/inspirehep/hepkit/convert"
	"github.com/inspirehep/hepkit/schema/crawler"
	"github.com/inspirehep/hepkit/schema/hep"
)

// Item is one record on its way through the pipeline, in one of two formats:
// already canonical ("hep") or in the intermediate crawler format
// ("hepcrawl").
type Item struct {
	RecordFormat  string          `json:"record_format,omitempty"`
	HepRecord     *hep.Record     `json:"record,omitempty"`
	CrawlerRecord *crawler.Record `json:"crawler_record,omitempty"`
	Source        string          `json:"source,omitempty"`
}

// ToHep converts the item into a canonical record, reconciling attached
// documents with downloaded files along the way. Items in an unknown format
// come back as convert.ErrUnknownRecordFormat.
func (it *Item) ToHep(files []convert.DownloadedFile) (hep.Record, error) {
	switch it.RecordFormat {
	case convert.FormatHep:
		if it.HepRecord == nil {
			return hep.Record{}, fmt.Errorf("item in hep format without a record")
		}
		rec := *it.HepRecord
		// The shallow copy would still share the documents backing array
		// with the caller's record.
		rec.Documents = append([]hep.Document(nil), rec.Documents...)
		convert.AttachDocuments(&rec, files)
		return rec, nil
	case convert.FormatCrawler:
		if it.CrawlerRecord == nil {
			return hep.Record{}, fmt.Errorf("item in crawler format without a record")
		}
		if err := convert.NormalizeCrawlerRecord(it.CrawlerRecord, it.Source); err != nil {
			return hep.Record{}, err
		}
		rec, err := convert.CrawlerToHep(it.CrawlerRecord)
		if err != nil {
			return hep.Record{}, err
		}
		convert.AttachDocuments(&rec, files)
		return rec, nil
	default:
		return hep.Record{}, convert.ErrUnknownRecordFormat
	}
}

// Failure describes one record that could not be converted. The trace is
// captured where the failure is recorded, which is close enough to the
// failing conversion to be useful.
type Failure struct {
	Exception string `json:"exception"`
	Traceback string `json:"traceback"`
}

// NewFailure records an error together with a stack trace.
func NewFailure(err error) Failure {
	return Failure{
		Exception: err.Error(),
		Traceback: string(debug.Stack()),
	}
}

// Report accumulates the outcome of one conversion run.
type Report struct {
	Records []hep.Record `json:"records"`
	Errors  []Failure    `json:"errors"`
}

// Add files a conversion result into the report. Skipped records, signalled
// with convert.Skip, count as neither output nor failure.
func (r *Report) Add(rec hep.Record, err error) {
	if err != nil {
		if _, ok := err.(convert.Skip); ok {
			log.Debugf("skipping record: %v", err)
			return
		}
		r.Errors = append(r.Errors, NewFailure(err))
		return
	}
	r.Records = append(r.Records, rec)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a canonical record against the schema constraints.
// Violations are advisory: the record is still emitted, the caller decides
// what to do with the error.
func Validate(rec *hep.Record) error {
	if err := validate.Struct(rec); err != nil {
		log.Warnf("record failed validation: %v", err)
		return err
	}
	return nil
}
