// CLI to convert harvested bibliographic metadata into HEP literature
// records, one JSON record per line.
//
// $ zstdcat wsp.xml.zst | hk-convert -f jats -source WSP > out.jsonl
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"

	"github.com/inspirehep/hepkit"
	"github.com/inspirehep/hepkit/config"
	"github.com/inspirehep/hepkit/convert"
	"github.com/inspirehep/hepkit/dateutil"
	"github.com/inspirehep/hepkit/pipeline"
	"github.com/inspirehep/hepkit/pproc/record"
	"github.com/inspirehep/hepkit/schema/crawler"
	"github.com/inspirehep/hepkit/schema/crossref"
	"github.com/inspirehep/hepkit/schema/hep"
	"github.com/inspirehep/hepkit/schema/osti"
)

var (
	fromFormat = flag.String("f", "", fmt.Sprintf("source format (one of: %s)",
		strings.Join(availableSourceFormats, ", ")))
	source         = flag.String("source", "", "provenance tag, falls back to source metadata")
	method         = flag.String("method", "hepcrawl", "acquisition method to stamp on records")
	filesManifest  = flag.String("files", "", "path to a JSON manifest of downloaded files")
	dayOnly        = flag.Bool("day", false, "truncate the acquisition date to the day")
	reportFile     = flag.String("report", "", "write the error report to this file")
	numWorkers     = flag.Int("w", 0, "number of workers, zero means all cores")
	maxBytesApprox = flag.Int("x", 1<<24, "max bytes per batch for XML processing")
	novalidate     = flag.Bool("novalidate", false, "skip schema validation")
	showVersion    = flag.Bool("version", false, "show version")
)

var availableSourceFormats = []string{
	convert.FormatJats,
	convert.FormatOSTI,
	convert.FormatCrossref,
	convert.FormatCrawler,
	convert.FormatHep,
}

var help = `hk-convert reshapes harvested metadata into HEP literature records

Input is read from a file argument or stdin, ".gz" and ".zst" files are
decompressed transparently. JATS input is split on article elements, all
other formats are line delimited JSON.

Examples:

    $ hk-convert -f jats -source WSP wsp-2017-04.xml.gz
    $ cat osti.jsonl | hk-convert -f osti -files downloads.json

Usage:

`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println(hepkit.Version)
		os.Exit(0)
	}
	cfg := config.Default()
	cfg.Source = *source
	cfg.Method = *method
	cfg.FilesManifest = *filesManifest
	cfg.DateDayOnly = *dayOnly

	files, err := loadManifest(cfg.FilesManifest)
	if err != nil {
		log.Fatal(err)
	}
	r, err := openInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	conv := &converter{
		cfg:   cfg,
		files: files,
	}
	var fn record.ProcessFunc
	switch *fromFormat {
	case convert.FormatJats:
		fn = conv.jats
	case convert.FormatOSTI:
		fn = conv.jsonLine(func(p []byte) (hep.Record, error) {
			var doc osti.Record
			if err := json.Unmarshal(p, &doc); err != nil {
				return hep.Record{}, err
			}
			parser := convert.NewOSTIParser(&doc, cfg.Source)
			rec, err := parser.Parse()
			for _, w := range parser.Warnings() {
				log.Warn(w)
			}
			return rec, err
		})
	case convert.FormatCrossref:
		fn = conv.jsonLine(func(p []byte) (hep.Record, error) {
			var resp crossref.Response
			if err := json.Unmarshal(p, &resp); err != nil {
				return hep.Record{}, err
			}
			return convert.NewCrossrefParser(&resp, cfg.Source).Parse()
		})
	case convert.FormatCrawler:
		fn = conv.jsonLine(func(p []byte) (hep.Record, error) {
			var doc crawler.Record
			if err := json.Unmarshal(p, &doc); err != nil {
				return hep.Record{}, err
			}
			item := &pipeline.Item{
				RecordFormat:  convert.FormatCrawler,
				CrawlerRecord: &doc,
				Source:        cfg.Source,
			}
			return item.ToHep(files)
		})
	case convert.FormatHep:
		fn = conv.jsonLine(func(p []byte) (hep.Record, error) {
			var doc hep.Record
			if err := json.Unmarshal(p, &doc); err != nil {
				return hep.Record{}, err
			}
			item := &pipeline.Item{
				RecordFormat: convert.FormatHep,
				HepRecord:    &doc,
			}
			return item.ToHep(files)
		})
	case "":
		log.Fatal("missing input format")
	default:
		log.Fatalf("unknown format: %s", *fromFormat)
	}

	opts := []record.ProcessorOption{record.WithWorkers(*numWorkers)}
	if *fromFormat == convert.FormatJats {
		opts = append(opts,
			record.WithSplitFunc(record.ArticleSplitter(*maxBytesApprox, 4*(*maxBytesApprox))))
	}
	proc := record.NewProcessor(fn, opts...)
	if err := proc.Process(context.Background(), r, os.Stdout); err != nil {
		log.Fatal(err)
	}
	log.Printf("success: %d, skipped: %d, failed: %d",
		conv.success.Load(), conv.skipped.Load(), len(conv.report.Errors))
	if *reportFile != "" {
		if err := writeReport(*reportFile, &conv.report); err != nil {
			log.Fatal(err)
		}
	}
	if len(conv.report.Errors) > 0 {
		os.Exit(1)
	}
}

// converter holds the state shared by all workers of a run.
type converter struct {
	cfg     *config.Config
	files   []convert.DownloadedFile
	success atomic.Int64
	skipped atomic.Int64

	mu     sync.Mutex
	report pipeline.Report
}

// stamp fills in the acquisition source on records coming from parsers. The
// crawler and hep formats carry their own provenance already.
func (c *converter) stamp(rec *hep.Record) {
	if rec.AcquisitionSource != nil {
		return
	}
	source := c.cfg.Source
	if source == "" && len(rec.Titles) > 0 {
		source = rec.Titles[0].Source
	}
	rec.AcquisitionSource = &hep.AcquisitionSource{
		Method:           c.cfg.Method,
		Date:             dateutil.ProvenanceDate(c.cfg.Timestamp, c.cfg.DateDayOnly),
		Source:           source,
		SubmissionNumber: strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
}

func (c *converter) fail(err error) {
	c.mu.Lock()
	c.report.Errors = append(c.report.Errors, pipeline.NewFailure(err))
	c.mu.Unlock()
}

// finish post-processes one converted record and renders the output line.
func (c *converter) finish(rec hep.Record, err error) ([]byte, error) {
	if err != nil {
		if _, ok := err.(convert.Skip); ok {
			c.skipped.Add(1)
			return nil, nil
		}
		c.fail(err)
		return nil, nil
	}
	c.stamp(&rec)
	convert.AttachDocuments(&rec, c.files)
	if !*novalidate {
		// Validation failures are reported but do not drop the record.
		pipeline.Validate(&rec)
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	c.success.Add(1)
	return append(b, '\n'), nil
}

// jsonLine wraps a single line parser into a ProcessFunc.
func (c *converter) jsonLine(parse func([]byte) (hep.Record, error)) record.ProcessFunc {
	return func(p []byte) ([]byte, error) {
		if len(bytes.TrimSpace(p)) == 0 {
			return nil, nil
		}
		rec, err := parse(p)
		return c.finish(rec, err)
	}
}

// jats converts one article element.
func (c *converter) jats(p []byte) ([]byte, error) {
	parser, err := convert.NewJatsParser(bytes.NewReader(p), c.cfg.Source)
	if err != nil {
		c.fail(err)
		return nil, nil
	}
	rec, err := parser.Parse()
	return c.finish(rec, err)
}

// openInput opens the given file, transparently decompressing gzip and
// zstd; the empty name means stdin.
func openInput(filename string) (io.ReadCloser, error) {
	if filename == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(filename, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return zr, nil
	case strings.HasSuffix(filename, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return io.NopCloser(zr), nil
	default:
		return f, nil
	}
}

// loadManifest reads the downloaded files manifest, a JSON array of url and
// path pairs.
func loadManifest(filename string) ([]convert.DownloadedFile, error) {
	if filename == "" {
		return nil, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var files []convert.DownloadedFile
	if err := json.Unmarshal(b, &files); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", filename, err)
	}
	return files, nil
}

func writeReport(filename string, report *pipeline.Report) error {
	b, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
